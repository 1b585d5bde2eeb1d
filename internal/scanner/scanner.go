package scanner

import (
	"context"
	"errors"
	"fmt"
	"pkidiscovery/internal/config"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/gateway"
	"pkidiscovery/pkg/kms"
	"pkidiscovery/pkg/logger"
	"pkidiscovery/pkg/metrics"
	"pkidiscovery/pkg/serrors"
	"pkidiscovery/pkg/storage"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("pkidiscovery/internal/scanner") //nolint: gochecknoglobals

// Options configure how scans are enqueued and executed.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a scan job before marking it failed.
	MaxAttempts int
	// ScanConcurrency is the number of endpoints scanned in parallel in direct mode.
	ScanConcurrency int
	// GatewayFailureThreshold is the number of consecutive gateway connection
	// failures after which a gateway scan is aborted. Zero disables the breaker.
	GatewayFailureThreshold int
	// SweepBatchSize caps the number of due discoveries triggered by one EnqueueDue.
	SweepBatchSize uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:             cfg.Worker.MaxAttempts,
		ScanConcurrency:         cfg.Discovery.ScanConcurrency,
		GatewayFailureThreshold: cfg.Discovery.GatewayFailureThreshold,
		SweepBatchSize:          cfg.Worker.SweepBatchSize,
	}
}

// Deps are the collaborators of a Scanner.
type Deps struct {
	Storage   storage.Storage
	Resolver  TargetResolver
	Endpoints EndpointScanner
	Encryptor kms.Encryptor
	// Gateways may be nil, scans of discoveries bound to a gateway then fail.
	Gateways gateway.Service
	// Metrics may be nil.
	Metrics *metrics.Recorder
}

// scanner is the concrete implementation of the Scanner interface.
type scanner struct {
	options   Options
	storage   storage.Storage
	resolver  TargetResolver
	endpoints EndpointScanner
	encryptor kms.Encryptor
	gateways  gateway.Service
	metrics   *metrics.Recorder
	now       func() time.Time
}

// New constructs a Scanner.
func New(deps Deps, options Options) Scanner {
	if options.ScanConcurrency <= 0 {
		options.ScanConcurrency = 20
	}

	return &scanner{
		options:   options,
		storage:   deps.Storage,
		resolver:  deps.Resolver,
		endpoints: deps.Endpoints,
		encryptor: deps.Encryptor,
		gateways:  deps.Gateways,
		metrics:   deps.Metrics,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Trigger claims the project scan slot for the discovery and enqueues a scan
// job in the same transaction, so a claimed slot always has a job behind it.
func (s *scanner) Trigger(ctx context.Context, discoveryID domain.DiscoveryID) (*domain.DiscoveryConfig, error) {
	var config *domain.DiscoveryConfig
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.DiscoveryConfigByID(ctx, discoveryID)
		if err != nil {
			return fmt.Errorf("could not get discovery config: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "discovery %s not found", discoveryID)
		}
		if !res.IsActive {
			return serrors.With(serrors.ErrBadRequest, "discovery %s is not active", discoveryID)
		}

		claimed, err := tx.ClaimScanSlot(ctx, discoveryID)
		if err != nil {
			return fmt.Errorf("could not claim scan slot: %w", err)
		}
		if !claimed {
			return serrors.With(serrors.ErrConflict, "a scan is already pending or running for this project")
		}

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			DiscoveryID: discoveryID.String(),
			maxAttempts: s.options.MaxAttempts,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}
		// an unfinished job of this discovery already exists and will pick
		// up the claimed slot.
		if !jobAdded {
			logger.Debug(ctx, "scan job already queued", zap.Stringer("discoveryID", discoveryID))
		}

		res.LastScanStatus = domain.ScanStatusPending
		config = res

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not trigger scan: %w", err)
	}

	return config, nil
}

// EnqueueDue triggers the discoveries whose automatic scan is due. Discoveries
// that cannot be triggered because their project is busy are left for the
// next sweep.
func (s *scanner) EnqueueDue(ctx context.Context) (int, error) {
	due, err := s.storage.DueDiscoveryConfigs(ctx, s.now(), s.options.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("could not get due discoveries: %w", err)
	}

	var (
		enqueued int
		errs     []error
	)
	for _, config := range due {
		if _, err := s.Trigger(ctx, config.ID); err != nil {
			switch serrors.KindOf(err) {
			case serrors.ErrConflict, serrors.ErrNotFound, serrors.ErrBadRequest:
				logger.Debug(ctx, "skipping due discovery",
					zap.Stringer("discoveryID", config.ID),
					zap.Error(err))
			default:
				logger.Error(ctx, "could not trigger due discovery",
					zap.Stringer("discoveryID", config.ID),
					zap.Error(err))
				errs = append(errs, err)
			}

			continue
		}
		enqueued++
	}

	if enqueued > 0 {
		logger.Info(ctx, "enqueued due discovery scans", zap.Int("count", enqueued))
	}

	return enqueued, errors.Join(errs...)
}

// Execute runs a scan of the discovery: it moves the discovery to RUNNING
// with a new scan history row, scans every resolved target, persists what
// was found and records the final status. A failure is recorded on both the
// history and the discovery before it is returned.
func (s *scanner) Execute(ctx context.Context, discoveryID domain.DiscoveryID) (err error) {
	ctx, span := tracer.Start(ctx, "scanner.Execute",
		trace.WithAttributes(attribute.String("discovery.id", discoveryID.String())))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	startedAt := s.now()
	config, err := s.storage.DiscoveryConfigByID(ctx, discoveryID)
	if err != nil {
		return fmt.Errorf("could not get discovery config: %w", err)
	}
	if config == nil {
		return serrors.With(serrors.ErrNotFound, "discovery %s not found", discoveryID)
	}
	ctx = logger.WithFields(ctx,
		zap.Stringer("discoveryID", config.ID),
		zap.Stringer("projectID", config.ProjectID))

	history, err := s.start(ctx, config, startedAt)
	if err != nil {
		switch serrors.KindOf(err) {
		case serrors.ErrConflict, serrors.ErrNotFound:
		default:
			logger.Error(ctx, "could not start discovery scan", zap.Error(err))
			s.release(ctx, config.ID, err)
		}

		return err
	}
	ctx = logger.WithFields(ctx, zap.Stringer("scanHistoryID", history.ID))
	span.SetAttributes(attribute.String("scan_history.id", history.ID.String()))
	logger.Info(ctx, "starting discovery scan", zap.Bool("gateway", config.HasGateway()))

	status, err := s.run(ctx, config, history.ID)
	if err != nil {
		logger.Error(ctx, "discovery scan failed", zap.Error(err))
		s.fail(ctx, config.ID, history.ID, err)
		s.metrics.ScanFinished(ctx, domain.ScanStatusFailed, time.Since(startedAt))

		return fmt.Errorf("could not scan discovery: %w", err)
	}
	if status != "" {
		s.metrics.ScanFinished(ctx, status, time.Since(startedAt))
	}

	return nil
}

// start creates the RUNNING history row and points the discovery at it.
func (s *scanner) start(ctx context.Context,
	config *domain.DiscoveryConfig,
	startedAt time.Time) (*domain.ScanHistory, error) {
	var history *domain.ScanHistory
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreScanHistory(ctx, domain.ScanHistory{
			DiscoveryConfigID: config.ID,
			Status:            domain.ScanStatusRunning,
			StartedAt:         startedAt,
		})
		if err != nil {
			if errors.Is(err, storage.ErrForeignKeyViolation) {
				return serrors.With(serrors.ErrNotFound, "discovery %s not found", config.ID)
			}

			return fmt.Errorf("could not store scan history: %w", err)
		}

		updated, err := tx.UpdateDiscoveryConfig(ctx, config.ID, storage.DiscoveryConfigUpdates{
			LastScanStatus: domain.ScanStatusRunning,
			LastScanJobID:  &res.ID,
		})
		if err != nil {
			if errors.Is(err, storage.ErrUniqueViolation) {
				return serrors.Wrap(serrors.ErrConflict, err, "another scan is running for this project")
			}

			return fmt.Errorf("could not update discovery config: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "discovery %s not found", config.ID)
		}
		history = res

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not start scan: %w", err)
	}

	return history, nil
}

// run scans and processes a discovery. It returns the final status, or an
// empty status when the discovery was deleted while it was being scanned.
func (s *scanner) run(ctx context.Context,
	config *domain.DiscoveryConfig,
	historyID domain.ScanHistoryID) (domain.ScanStatus, error) {
	var gatewayName string
	if config.HasGateway() {
		if s.gateways == nil {
			return "", serrors.With(serrors.ErrUnavailable, "gateway scans are not configured")
		}

		name, err := s.gateways.GatewayName(ctx, *config.GatewayID)
		if err != nil {
			logger.Warn(ctx, "could not get gateway name", zap.Error(err))
		}
		gatewayName = name
	}

	resolution, err := s.resolver.ResolveTargets(ctx, config.TargetConfig, config.HasGateway())
	if err != nil {
		return "", fmt.Errorf("could not resolve targets: %w", err)
	}
	logger.Info(ctx, "targets resolved",
		zap.Int("targets", len(resolution.Targets)),
		zap.Int("filteredPrivate", resolution.FilteredPrivate),
		zap.Strings("unresolved", resolution.Unresolved))

	var results []domain.ScanEndpointResult
	if config.HasGateway() {
		var tripped bool
		results, tripped = s.scanViaGateway(ctx, *config.GatewayID, resolution.Targets)
		if tripped {
			if err := s.trip(ctx, config.ID, historyID, results); err != nil {
				return "", err
			}

			return domain.ScanStatusFailed, nil
		}
	} else {
		results = s.scanDirect(ctx, resolution.Targets)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("scan interrupted: %w", err)
	}

	current, err := s.storage.DiscoveryConfigByID(ctx, config.ID)
	if err != nil {
		return "", fmt.Errorf("could not get discovery config: %w", err)
	}
	if current == nil {
		logger.Warn(ctx, "discovery deleted during scan, discarding results")
		if err := s.storage.DeleteScanHistory(ctx, historyID); err != nil {
			logger.Warn(ctx, "could not delete scan history", zap.Error(err))
		}

		return "", nil
	}

	summary, err := s.processResults(ctx, current, results, gatewayName)
	if err != nil {
		return "", err
	}

	if err := s.complete(ctx, current.ID, historyID, len(resolution.Targets), summary, resolution.FilteredPrivate); err != nil {
		return "", err
	}

	return domain.ScanStatusCompleted, nil
}

// complete records a successful scan.
func (s *scanner) complete(ctx context.Context,
	discoveryID domain.DiscoveryID,
	historyID domain.ScanHistoryID,
	targets int,
	summary *runSummary,
	filteredPrivate int) error {
	if len(summary.parseErrors) > 0 {
		logger.Warn(ctx, "certificates could not be parsed", zap.Strings("endpoints", summary.parseErrors))
	}

	message := completionMessage(summary.parseErrors, filteredPrivate)
	var historyMessage *string
	if message != "" {
		historyMessage = &message
	}
	configMessage := truncate(message, shortVarcharLimit)
	completedAt := s.now()
	certificates := len(summary.certificates)
	installations := len(summary.installations)

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.UpdateScanHistory(ctx, historyID, storage.ScanHistoryUpdates{
			Status:                  domain.ScanStatusCompleted,
			CompletedAt:             &completedAt,
			TargetsScannedCount:     &targets,
			CertificatesFoundCount:  &certificates,
			InstallationsFoundCount: &installations,
			ErrorMessage:            historyMessage,
		}); err != nil {
			return fmt.Errorf("could not update scan history: %w", err)
		}

		if _, err := tx.UpdateDiscoveryConfig(ctx, discoveryID, storage.DiscoveryConfigUpdates{
			LastScanStatus:  domain.ScanStatusCompleted,
			LastScannedAt:   &completedAt,
			LastScanMessage: &configMessage,
		}); err != nil {
			return fmt.Errorf("could not update discovery config: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not complete scan: %w", err)
	}

	logger.Info(ctx, "discovery scan completed",
		zap.Int("targets", targets),
		zap.Int("certificates", certificates),
		zap.Int("installations", installations))

	return nil
}

// fail records a failed scan. The write is detached from ctx cancellation so
// a shutdown in the middle of a scan still releases the project scan slot.
func (s *scanner) fail(ctx context.Context,
	discoveryID domain.DiscoveryID,
	historyID domain.ScanHistoryID,
	cause error) {
	ctx = context.WithoutCancel(ctx)
	message := truncate(cause.Error(), shortVarcharLimit)
	completedAt := s.now()

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.UpdateScanHistory(ctx, historyID, storage.ScanHistoryUpdates{
			Status:       domain.ScanStatusFailed,
			CompletedAt:  &completedAt,
			ErrorMessage: &message,
		}); err != nil {
			return fmt.Errorf("could not update scan history: %w", err)
		}

		if _, err := tx.UpdateDiscoveryConfig(ctx, discoveryID, storage.DiscoveryConfigUpdates{
			LastScanStatus:  domain.ScanStatusFailed,
			LastScanMessage: &message,
		}); err != nil {
			return fmt.Errorf("could not update discovery config: %w", err)
		}

		return nil
	}); err != nil {
		logger.Error(ctx, "could not record scan failure", zap.Error(err))
	}
}

// release moves a discovery whose scan could not be started from PENDING to
// FAILED, so that neither the discovery nor its project stays blocked when
// every retry of the job fails. A retry that does start takes the slot again.
func (s *scanner) release(ctx context.Context, discoveryID domain.DiscoveryID, cause error) {
	ctx = context.WithoutCancel(ctx)
	message := truncate(cause.Error(), shortVarcharLimit)

	if _, err := s.storage.UpdateDiscoveryConfig(ctx, discoveryID, storage.DiscoveryConfigUpdates{
		LastScanStatus:  domain.ScanStatusFailed,
		LastScanMessage: &message,
	}); err != nil {
		logger.Error(ctx, "could not release scan slot", zap.Error(err))
	}
}

// trip records a gateway scan aborted by the circuit breaker.
func (s *scanner) trip(ctx context.Context,
	discoveryID domain.DiscoveryID,
	historyID domain.ScanHistoryID,
	results []domain.ScanEndpointResult) error {
	message := breakerMessage
	if len(results) > 0 && results[len(results)-1].Error != "" {
		message += " Last error: " + results[len(results)-1].Error
	}
	configMessage := truncate(message, shortVarcharLimit)
	completedAt := s.now()
	scanned, zero := len(results), 0

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.UpdateScanHistory(ctx, historyID, storage.ScanHistoryUpdates{
			Status:                  domain.ScanStatusFailed,
			CompletedAt:             &completedAt,
			TargetsScannedCount:     &scanned,
			CertificatesFoundCount:  &zero,
			InstallationsFoundCount: &zero,
			ErrorMessage:            &message,
		}); err != nil {
			return fmt.Errorf("could not update scan history: %w", err)
		}

		if _, err := tx.UpdateDiscoveryConfig(ctx, discoveryID, storage.DiscoveryConfigUpdates{
			LastScanStatus:  domain.ScanStatusFailed,
			LastScannedAt:   &completedAt,
			LastScanMessage: &configMessage,
		}); err != nil {
			return fmt.Errorf("could not update discovery config: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not record aborted scan: %w", err)
	}

	return nil
}
