package scanner

import (
	"context"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/gateway"
	"pkidiscovery/pkg/logger"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	modeDirect  = "direct"
	modeGateway = "gateway"

	breakerMessage = "Gateway connection failed to reach target network. " +
		"Check that the gateway is online and can reach the target network."
	noProxyConnectionMessage = "Gateway failed to establish proxy connection to target"
	proxyErrorPrefix         = "Gateway proxy error: "
)

// scanDirect scans every target from this process with a bounded pool.
func (s *scanner) scanDirect(ctx context.Context, targets []domain.ScanTarget) []domain.ScanEndpointResult {
	ctx, span := tracer.Start(ctx, "scanner.scanDirect",
		trace.WithAttributes(attribute.Int("targets", len(targets))))
	defer span.End()

	p := pool.NewWithResults[domain.ScanEndpointResult]().WithMaxGoroutines(s.options.ScanConcurrency)
	for _, target := range targets {
		p.Go(func() domain.ScanEndpointResult {
			started := time.Now()
			result := s.endpoints.ScanEndpoint(ctx, target.Host, target.Port, target.SNIHostname)
			result.Host, result.Port = target.Host, target.Port
			result.SNIHostname = target.SNIHostname
			s.metrics.EndpointScanned(ctx, modeDirect, result, time.Since(started))

			return result
		})
	}

	return p.Wait()
}

// scanViaGateway scans targets one by one through a gateway tunnel. It
// reports true when the scan was aborted after GatewayFailureThreshold
// consecutive connection failures, in which case the results gathered so far
// are returned.
func (s *scanner) scanViaGateway(ctx context.Context,
	gatewayID domain.GatewayID,
	targets []domain.ScanTarget) ([]domain.ScanEndpointResult, bool) {
	ctx, span := tracer.Start(ctx, "scanner.scanViaGateway",
		trace.WithAttributes(
			attribute.Int("targets", len(targets)),
			attribute.String("gateway.id", gatewayID.String())))
	defer span.End()

	results := make([]domain.ScanEndpointResult, 0, len(targets))
	failures := 0
	for _, target := range targets {
		if ctx.Err() != nil {
			break
		}

		started := time.Now()
		result, err := s.scanThroughGateway(ctx, gatewayID, target)
		if err != nil {
			logger.Debug(ctx, "gateway proxy error", zap.String("target", target.Address()), zap.Error(err))
			result = connectionFailure(target, proxyErrorPrefix+err.Error())
		}
		if result.FailureReason == domain.FailureConnectionFailed {
			failures++
		} else {
			failures = 0
		}
		s.metrics.EndpointScanned(ctx, modeGateway, result, time.Since(started))
		results = append(results, result)

		if s.options.GatewayFailureThreshold > 0 && failures >= s.options.GatewayFailureThreshold {
			logger.Warn(ctx, "gateway circuit breaker tripped, aborting scan",
				zap.Int("consecutiveFailures", failures),
				zap.Int("scanned", len(results)),
				zap.Int("targets", len(targets)))
			s.metrics.GatewayBreakerTripped(ctx)
			span.SetAttributes(attribute.Bool("breaker.tripped", true))

			return results, true
		}
	}

	return results, false
}

// scanThroughGateway opens a tunnel to target and scans it on the local end.
// The result carries the target's address, not the loopback one.
func (s *scanner) scanThroughGateway(ctx context.Context,
	gatewayID domain.GatewayID,
	target domain.ScanTarget) (domain.ScanEndpointResult, error) {
	details, err := s.gateways.ConnectionDetails(ctx, gatewayID, target.Host, target.Port)
	if err != nil {
		return domain.ScanEndpointResult{}, err
	}
	if details == nil {
		return connectionFailure(target, noProxyConnectionMessage), nil
	}

	sni := target.SNIHostname
	if sni == "" {
		sni = target.Host
	}

	var result domain.ScanEndpointResult
	if err := s.gateways.WithTunnel(ctx, *details, gateway.ProtocolTCP, func(ctx context.Context, localPort int) error {
		result = s.endpoints.ScanEndpoint(ctx, "localhost", localPort, sni)

		return nil
	}); err != nil {
		return domain.ScanEndpointResult{}, err
	}
	result.Host, result.Port = target.Host, target.Port
	result.SNIHostname = target.SNIHostname

	return result, nil
}

func connectionFailure(target domain.ScanTarget, message string) domain.ScanEndpointResult {
	return domain.ScanEndpointResult{
		Host:          target.Host,
		Port:          target.Port,
		SNIHostname:   target.SNIHostname,
		Certificates:  []domain.ScanCertificateResult{},
		FailureReason: domain.FailureConnectionFailed,
		Error:         message,
	}
}
