package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"vidsync/internal/catalog"
	"vidsync/internal/config"
	"vidsync/internal/ingest"
	"vidsync/internal/library"
	"vidsync/internal/logging"
	"vidsync/internal/media/ffprobe"
	"vidsync/internal/reconciler"
	"vidsync/internal/resolver"
	"vidsync/internal/services"
	"vidsync/internal/services/ytdlp"
	"vidsync/internal/syncer"
)

// lockFileName lives under the log directory so concurrent passes on the
// same installation exclude each other.
const lockFileName = "vidsync.lock"

// Options configures optional Runner behavior.
type Options struct {
	// DryRun stops the pass after the read-only phases: exact matches are
	// analyzed but not applied, resolutions are computed but never synced.
	DryRun bool
}

// PassReport summarizes one reconciliation pass.
type PassReport struct {
	PassID    string
	StartedAt time.Time
	Duration  time.Duration
	DryRun    bool

	ChannelsScanned int
	FilesScanned    int

	Reconcile   reconciler.Stats
	Unknown     []reconciler.UnknownFile
	Resolutions []resolver.Resolution
	Sync        syncer.Stats
}

// Resolved counts resolutions that matched a remote video.
func (r *PassReport) Resolved() int {
	n := 0
	for _, res := range r.Resolutions {
		if res.Resolved() {
			n++
		}
	}
	return n
}

// Runner wires the pipeline stages together and runs complete passes.
type Runner struct {
	cfg        *config.Config
	store      *catalog.Store
	scanner    *library.Scanner
	reconciler *reconciler.Reconciler
	resolver   *resolver.Resolver
	syncer     *syncer.Syncer
	logger     *slog.Logger
	lock       *flock.Flock
	opts       Options
}

// New constructs a Runner with the real external tools from configuration.
func New(cfg *config.Config, store *catalog.Store, logger *slog.Logger, opts Options) (*Runner, error) {
	ytclient, err := ytdlp.New(cfg.Tools.YtdlpBinary, 2*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("configure yt-dlp client: %w", err)
	}
	probe := ffprobe.New(cfg.Tools.FFprobeBinary, time.Duration(cfg.Tools.ProbeTimeoutSeconds)*time.Second)
	return NewWithDependencies(cfg, store, logger, probe, ytclient, ytclient, opts), nil
}

// NewWithDependencies constructs a Runner with explicit collaborators
// (used in tests).
func NewWithDependencies(
	cfg *config.Config,
	store *catalog.Store,
	logger *slog.Logger,
	probe library.DurationProber,
	lister ytdlp.Lister,
	fetcher ytdlp.MetadataFetcher,
	opts Options,
) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:        cfg,
		store:      store,
		scanner:    library.NewScanner(probe, logger),
		reconciler: reconciler.New(store, logger),
		resolver:   resolver.New(lister, cfg.Matching.TitleThreshold, cfg.Matching.DurationThresholdSeconds, logger),
		syncer:     syncer.New(store, ingest.New(store, fetcher, logger), logger),
		logger:     logging.NewComponentLogger(logger, "workflow"),
		lock:       flock.New(filepath.Join(cfg.Paths.LogDir, lockFileName)),
		opts:       opts,
	}
}

// Run executes one reconciliation pass. At most one pass runs at a time per
// installation; a second caller gets an immediate error instead of queuing.
func (r *Runner) Run(ctx context.Context) (*PassReport, error) {
	if err := os.MkdirAll(r.cfg.Paths.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	ok, err := r.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire pass lock: %w", err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrConfiguration, "workflow", "run",
			"another reconciliation pass is already running", nil)
	}
	defer func() {
		if err := r.lock.Unlock(); err != nil {
			r.logger.Warn("failed to release pass lock", logging.Error(err))
		}
	}()

	passID := uuid.NewString()
	ctx = services.WithPassID(ctx, passID)
	logger := logging.WithContext(ctx, r.logger)

	report := &PassReport{
		PassID:    passID,
		StartedAt: time.Now(),
		DryRun:    r.opts.DryRun,
	}
	logger.Info("reconciliation pass started",
		logging.String("library_dir", r.cfg.Paths.LibraryDir),
		logging.Bool("dry_run", r.opts.DryRun))

	libraries, err := r.scanner.Scan(ctx, r.cfg.Paths.LibraryDir)
	if err != nil {
		return nil, fmt.Errorf("scan library: %w", err)
	}
	report.ChannelsScanned = len(libraries)
	report.FilesScanned = library.TotalFiles(libraries)

	if r.opts.DryRun {
		analysis, err := r.reconciler.Analyze(ctx, libraries)
		if err != nil {
			return nil, fmt.Errorf("analyze exact matches: %w", err)
		}
		report.Reconcile = reconciler.Stats{
			TotalFiles:   analysis.TotalFiles,
			ExactMatches: len(analysis.ExactMatches),
			UnknownFiles: len(analysis.UnknownFiles),
		}
		report.Unknown = analysis.UnknownFiles
		report.Resolutions = r.resolver.Resolve(ctx, analysis.UnknownFiles)
		report.Duration = time.Since(report.StartedAt)
		logger.Info("dry-run pass complete",
			logging.Int("files", report.FilesScanned),
			logging.Int("exact_matches", report.Reconcile.ExactMatches),
			logging.Int("resolved", report.Resolved()),
			logging.Duration("elapsed", report.Duration))
		return report, nil
	}

	outcome, err := r.reconciler.Reconcile(ctx, libraries)
	if err != nil {
		return nil, fmt.Errorf("reconcile exact matches: %w", err)
	}
	report.Reconcile = outcome.Stats
	report.Unknown = outcome.UnknownFiles

	report.Resolutions = r.resolver.Resolve(ctx, outcome.UnknownFiles)
	report.Sync = r.syncer.Sync(ctx, report.Resolutions)

	report.Duration = time.Since(report.StartedAt)
	logger.Info("reconciliation pass complete",
		logging.Int("files", report.FilesScanned),
		logging.Int("exact_matches", report.Reconcile.ExactMatches),
		logging.Int("records_updated", report.Reconcile.RecordsUpdated),
		logging.Int("resolved", report.Resolved()),
		logging.Int("created", report.Sync.Created),
		logging.Int("updated", report.Sync.Updated),
		logging.Int("skipped", report.Sync.Skipped),
		logging.Int("failed", report.Sync.Failed),
		logging.Duration("elapsed", report.Duration))
	return report, nil
}
