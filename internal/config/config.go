package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DNSResolver is a named group of DNS servers queried as one provider.
type DNSResolver struct {
	Name    string   `yaml:"name"`
	Servers []string `yaml:"servers"`
}

// Config represents the application configuration. Values are read from a YAML
// file and can be overridden by environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP configures the operational server (metrics, pprof, health)
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// HealthTimeout bounds the dependency checks of a health check request
		HealthTimeout time.Duration `env:"HTTP_HEALTH_TIMEOUT" env-default:"5s" yaml:"healthTimeout"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username           string        `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		Host               string        `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME" env-default:"pkidiscovery" yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Worker configures the River job runner
	Worker struct {
		// MaxWorkers is the number of discovery scans a single process runs concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is how many times a failed scan job is retried
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// JobTimeout bounds a single scan job, zero disables the timeout
		JobTimeout time.Duration `env:"WORKER_JOB_TIMEOUT" env-default:"2h" yaml:"jobTimeout"`
		// SweepInterval is how often due auto-scans are enqueued
		SweepInterval time.Duration `env:"WORKER_SWEEP_INTERVAL" env-default:"24h" yaml:"sweepInterval"`
		// SweepBatchSize caps the number of due discoveries enqueued per sweep
		SweepBatchSize uint `env:"WORKER_SWEEP_BATCH_SIZE" env-default:"500" yaml:"sweepBatchSize"`
	} `yaml:"worker"`

	// Discovery configures target resolution and endpoint probing
	Discovery struct {
		// ScanConcurrency is the number of endpoints scanned in parallel in direct mode
		ScanConcurrency int `env:"DISCOVERY_SCAN_CONCURRENCY" env-default:"20" yaml:"scanConcurrency"`
		// ScanTimeout bounds a single TLS dial and handshake
		ScanTimeout time.Duration `env:"DISCOVERY_SCAN_TIMEOUT" env-default:"10s" yaml:"scanTimeout"`
		// DNSTimeout bounds a single DNS query
		DNSTimeout time.Duration `env:"DISCOVERY_DNS_TIMEOUT" env-default:"5s" yaml:"dnsTimeout"`
		// CNAMEMaxDepth is the maximum number of CNAME hops followed per provider
		CNAMEMaxDepth int `env:"DISCOVERY_CNAME_MAX_DEPTH" env-default:"10" yaml:"cnameMaxDepth"`
		// GatewayFailureThreshold is the number of consecutive gateway failures that aborts a scan
		GatewayFailureThreshold int `env:"DISCOVERY_GATEWAY_FAILURE_THRESHOLD" env-default:"10" yaml:"gatewayFailureThreshold"` //nolint: lll
		// AllowInternalConnections disables private address blocking for direct scans
		AllowInternalConnections bool `env:"DISCOVERY_ALLOW_INTERNAL_CONNECTIONS" env-default:"false" yaml:"allowInternalConnections"` //nolint: lll
		// MaxPorts is the maximum number of ports per discovery
		MaxPorts int `env:"DISCOVERY_MAX_PORTS" env-default:"5" yaml:"maxPorts"`
		// MaxIPs is the maximum number of addresses per discovery
		MaxIPs int `env:"DISCOVERY_MAX_IPS" env-default:"256" yaml:"maxIPs"`
		// MaxDomains is the maximum number of domains per discovery
		MaxDomains int `env:"DISCOVERY_MAX_DOMAINS" env-default:"5" yaml:"maxDomains"`
		// MinCIDRPrefix is the smallest accepted IPv4 prefix length
		MinCIDRPrefix int `env:"DISCOVERY_MIN_CIDR_PREFIX" env-default:"24" yaml:"minCidrPrefix"`
		// DNSResolvers replaces the built-in public resolver list when non-empty
		DNSResolvers []DNSResolver `yaml:"dnsResolvers"`
	} `yaml:"discovery"`

	// KMS configures certificate body encryption
	KMS struct {
		// RootKey is a hex encoded 32 byte key from which per-project keys are derived
		RootKey string `env:"KMS_ROOT_KEY" yaml:"rootKey"`
	} `yaml:"kms"`

	// Gateway configures the relay used by discoveries bound to a gateway
	Gateway struct {
		// URL is the base URL of the gateway relay control API, gateway scans are unavailable when empty
		URL string `env:"GATEWAY_URL" yaml:"url"`
		// Token authenticates against the relay
		Token string `env:"GATEWAY_TOKEN" yaml:"token"`
		// RequestTimeout bounds every control API call
		RequestTimeout time.Duration `env:"GATEWAY_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
	} `yaml:"gateway"`

	// GracefulShutdownTimeout is the maximum duration to wait for running jobs and requests during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"30s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
