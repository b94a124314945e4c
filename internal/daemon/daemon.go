package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"textsim/internal/api"
	"textsim/internal/config"
	"textsim/internal/logging"
)

// Daemon owns the HTTP API server and enforces single-instance execution.
type Daemon struct {
	cfg        *config.Config
	logger     *slog.Logger
	similarity *api.SimilarityService

	lockPath string
	lock     *flock.Flock

	mu        sync.Mutex
	server    *apiServer
	startedAt time.Time
	serveErr  chan error

	running atomic.Bool
	cancel  context.CancelFunc
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, similarity *api.SimilarityService, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || similarity == nil {
		return nil, errors.New("daemon requires config and similarity service")
	}
	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "daemon"),
		similarity: similarity,
		lockPath:   lockPath,
		lock:       flock.New(lockPath),
	}, nil
}

// Start acquires the daemon lock and starts serving HTTP requests.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}
	if err := d.cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("prepare directories: %w", err)
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another textsim daemon instance is already running")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	serveErr := make(chan error, 1)
	server := newAPIServer(d.cfg, d, d.logger)
	runCtx, cancel := context.WithCancel(ctx)
	if err := server.start(runCtx, serveErr); err != nil {
		cancel()
		_ = d.lock.Unlock()
		return err
	}

	d.server = server
	d.serveErr = serveErr
	d.cancel = cancel
	d.startedAt = time.Now()
	d.running.Store(true)
	d.logger.Info("textsim daemon started",
		logging.String("address", server.addr()),
		logging.String("lock", d.lockPath),
		logging.Int("pid", os.Getpid()),
	)
	return nil
}

// Wait blocks until ctx is done or the HTTP server fails.
func (d *Daemon) Wait(ctx context.Context) error {
	d.mu.Lock()
	serveErr := d.serveErr
	d.mu.Unlock()
	if serveErr == nil {
		return errors.New("daemon not started")
	}
	select {
	case <-ctx.Done():
		return nil
	case err := <-serveErr:
		return err
	}
}

// Stop shuts down the HTTP server and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.server.stop()
	d.server = nil
	if err := d.lock.Unlock(); err != nil {
		logging.WarnWithContext(d.logger, "failed to release daemon lock", "lock_release_failed",
			logging.String("lock", d.lockPath),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove the lock file if no daemon is running"),
			logging.Alert("stale_lock"),
		)
	}
	d.running.Store(false)
	d.logger.Info("textsim daemon stopped", logging.Duration("uptime", time.Since(d.startedAt).Round(time.Second)))
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	return nil
}

// Addr returns the address the HTTP server is listening on, or "" when stopped.
func (d *Daemon) Addr() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.server == nil {
		return ""
	}
	return d.server.addr()
}

// Status returns the current daemon status.
func (d *Daemon) Status(_ context.Context) api.StatusResponse {
	running := d.running.Load()
	d.mu.Lock()
	startedAt := d.startedAt
	bind := d.cfg.Server.Bind
	if d.server != nil {
		bind = d.server.addr()
	}
	d.mu.Unlock()

	status := api.StatusResponse{
		Running:      running,
		PID:          os.Getpid(),
		Bind:         bind,
		LockFilePath: d.lockPath,
		Cache:        d.similarity.CacheStats(),
		Scores:       d.similarity.ScoreStats(),
	}
	if running {
		status.StartedAt = api.FormatTime(startedAt)
		status.UptimeSeconds = int64(time.Since(startedAt) / time.Second)
	}
	return status
}
