package sweeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/mythicforge/hero-forge/internal/adapter"
	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/logger"
	"github.com/mythicforge/hero-forge/internal/store"
	"github.com/mythicforge/hero-forge/internal/store/schema"
)

// SnapshotSweeperConfig holds configuration for the metadata snapshot sweeper
type SnapshotSweeperConfig struct {
	Interval     time.Duration // Time to sleep between sweep cycles
	PoolSize     int           // Concurrent metadata fetches
	SnapshotPath string        // Destination of the snapshot file
}

// SnapshotEntry is one token's row in the snapshot file
type SnapshotEntry struct {
	TokenAddress string          `json:"tokenAddress"`
	Tome         domain.Tome     `json:"tome"`
	TokenNumber  int64           `json:"tokenNumber"`
	HeroTier     domain.Tier     `json:"heroTier"`
	Stage        domain.Stage    `json:"stage,omitempty"`
	MetadataURL  string          `json:"metadataUrl,omitempty"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
}

// metadataSnapshotSweeper implements the Sweeper interface. Each cycle it
// rebuilds the full snapshot of every revealed token's latest metadata
// document and atomically replaces the snapshot file.
type metadataSnapshotSweeper struct {
	config     *SnapshotSweeperConfig
	store      store.Store
	httpClient adapter.HTTPClient
	fs         adapter.FileSystem
	json       adapter.JSON
	clock      adapter.Clock
	sweepMu    sync.Mutex
	running    atomic.Bool
	stopChan   chan struct{}
	stoppedCh  chan struct{}
}

// NewSnapshotSweeper creates a new metadata snapshot sweeper
func NewSnapshotSweeper(
	config *SnapshotSweeperConfig,
	st store.Store,
	httpClient adapter.HTTPClient,
	fs adapter.FileSystem,
	js adapter.JSON,
	clock adapter.Clock,
) Sweeper {
	return &metadataSnapshotSweeper{
		config:     config,
		store:      st,
		httpClient: httpClient,
		fs:         fs,
		json:       js,
		clock:      clock,
		stopChan:   make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *metadataSnapshotSweeper) Name() string {
	return "metadata-snapshot-sweeper"
}

// Start begins the sweeper's main loop - one sweep cycle per interval
func (s *metadataSnapshotSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting metadata snapshot sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("pool_size", s.config.PoolSize),
		zap.String("snapshot_path", s.config.SnapshotPath),
	)

	for {
		if err := s.Sweep(ctx); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Metadata snapshot sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Metadata snapshot sweeper stop requested")
			return nil
		case <-s.clock.After(s.config.Interval):
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *metadataSnapshotSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping metadata snapshot sweeper")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Metadata snapshot sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Metadata snapshot sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// Sweep runs a single sweep cycle. Overlapping cycles are collapsed: a
// call made while another cycle holds the lock returns immediately.
func (s *metadataSnapshotSweeper) Sweep(ctx context.Context) error {
	if !s.sweepMu.TryLock() {
		logger.InfoCtx(ctx, "Sweep cycle already in flight, skipping")
		return nil
	}
	defer s.sweepMu.Unlock()

	startTime := s.clock.Now()
	logger.InfoCtx(ctx, "Starting snapshot cycle")

	tokens, err := s.store.ListTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tokens: %w", err)
	}

	// Prior snapshot entries let us skip re-fetching documents whose URL
	// has not moved since the last cycle
	prior := s.loadPriorSnapshot(ctx)

	var entries sync.Map
	var fetched, reused, failed atomic.Int32

	pool := pond.NewPool(
		s.config.PoolSize,
		pond.WithQueueSize(len(tokens)),
		pond.WithContext(ctx),
	)

	for _, token := range tokens {
		pool.Submit(func() {
			entry := s.buildEntry(ctx, token, prior[token.TokenAddress], &fetched, &reused, &failed)
			entries.Store(token.TokenAddress, entry)
		})
	}

	pool.StopAndWait()

	var snapshot []SnapshotEntry
	entries.Range(func(_, value interface{}) bool {
		snapshot = append(snapshot, value.(SnapshotEntry))
		return true
	})
	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].Tome != snapshot[j].Tome {
			return snapshot[i].Tome < snapshot[j].Tome
		}
		return snapshot[i].TokenNumber < snapshot[j].TokenNumber
	})

	if err := s.writeSnapshot(snapshot); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Snapshot cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("tokens", len(tokens)),
		zap.Int32("fetched", fetched.Load()),
		zap.Int32("reused", reused.Load()),
		zap.Int32("fetch_failures", failed.Load()),
	)

	return nil
}

// buildEntry resolves one token's snapshot row
func (s *metadataSnapshotSweeper) buildEntry(
	ctx context.Context,
	token *schema.Token,
	priorEntry *SnapshotEntry,
	fetched, reused, failed *atomic.Int32,
) SnapshotEntry {
	entry := SnapshotEntry{
		TokenAddress: token.TokenAddress,
		Tome:         token.Tome,
		TokenNumber:  token.TokenNumber,
		HeroTier:     token.HeroTier,
	}

	record, err := s.store.GetLatestMetadataRecord(ctx, token.ID)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("token_address", token.TokenAddress))
		failed.Add(1)
		return entry
	}
	if record == nil {
		// Revealed but no pipeline run yet
		return entry
	}

	entry.Stage = record.Stage
	entry.MetadataURL = record.MetadataURL
	entry.ImageURL = record.ImageURL

	// Same URL means same content-addressed document, no fetch needed
	if priorEntry != nil && priorEntry.MetadataURL == record.MetadataURL && len(priorEntry.Metadata) > 0 {
		entry.Metadata = priorEntry.Metadata
		reused.Add(1)
		return entry
	}

	doc, err := s.fetchMetadataWithRetry(ctx, record.MetadataURL)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch metadata document, snapshotting URL only",
			zap.String("token_address", token.TokenAddress),
			zap.String("metadata_url", record.MetadataURL),
			zap.Error(err),
		)
		failed.Add(1)
		return entry
	}

	entry.Metadata = doc
	fetched.Add(1)
	return entry
}

// fetchMetadataWithRetry fetches a metadata document with bounded
// exponential backoff
func (s *metadataSnapshotSweeper) fetchMetadataWithRetry(ctx context.Context, url string) (json.RawMessage, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var doc json.RawMessage
	operation := func() error {
		raw, err := s.httpClient.GetBytes(ctx, url)
		if err != nil {
			return err
		}

		// Reject non-JSON payloads before they poison the snapshot
		var probe map[string]interface{}
		if err := s.json.Unmarshal(raw, &probe); err != nil {
			return backoff.Permanent(fmt.Errorf("metadata document is not a JSON object: %w", err))
		}

		doc = raw
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	return doc, nil
}

// loadPriorSnapshot reads the previous snapshot file, indexed by token
// address. A missing or corrupt file yields an empty index.
func (s *metadataSnapshotSweeper) loadPriorSnapshot(ctx context.Context) map[string]*SnapshotEntry {
	index := make(map[string]*SnapshotEntry)

	raw, err := s.fs.ReadFile(s.config.SnapshotPath)
	if err != nil {
		return index
	}

	var entries []SnapshotEntry
	if err := s.json.Unmarshal(raw, &entries); err != nil {
		logger.WarnCtx(ctx, "Prior snapshot is unreadable, rebuilding from scratch",
			zap.String("snapshot_path", s.config.SnapshotPath),
			zap.Error(err),
		)
		return index
	}

	for i := range entries {
		index[entries[i].TokenAddress] = &entries[i]
	}
	return index
}

// writeSnapshot writes the snapshot next to its destination and renames
// it into place so readers never observe a partial file
func (s *metadataSnapshotSweeper) writeSnapshot(snapshot []SnapshotEntry) error {
	payload, err := s.json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmpPath := s.config.SnapshotPath + ".tmp"
	if err := s.fs.WriteFile(tmpPath, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := s.fs.Rename(tmpPath, s.config.SnapshotPath); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
