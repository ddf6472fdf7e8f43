// Package render hands character renders to the external render farm over
// NATS JetStream and waits for their completion signals.
package render

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/mythicforge/hero-forge/internal/adapter"
	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/logger"
)

// completionSubjectPrefix is the core NATS subject space render workers
// publish their results on. One ephemeral subject per job.
const completionSubjectPrefix = "render.done."

// Config holds the configuration for the render coordinator
type Config struct {
	URL            string
	StreamName     string
	RenderSubject  string
	OutputDir      string
	RenderTimeout  time.Duration
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

// Job is the unit of work published to the render farm
type Job struct {
	JobID        string                `json:"jobId"`
	TokenID      int64                 `json:"tokenId"`
	TokenAddress string                `json:"tokenAddress"`
	HeroTier     domain.Tier           `json:"heroTier"`
	Traits       domain.CosmeticTraits `json:"traits"`
	OutputPath   string                `json:"outputPath"`
	ReplySubject string                `json:"replySubject"`
}

// Result is the completion signal a render worker publishes back
type Result struct {
	JobID     string `json:"jobId"`
	ImagePath string `json:"imagePath"`
	Error     string `json:"error,omitempty"`
}

// Coordinator requests renders and blocks until they complete
//
//go:generate mockgen -source=coordinator.go -destination=../mocks/render.go -package=mocks -mock_names=Coordinator=MockRenderCoordinator
type Coordinator interface {
	// RequestRender submits one render job and waits for its completion.
	// Returns the path of the rendered image on disk.
	RequestRender(ctx context.Context, req domain.PipelineRequest) (string, error)
	// Close closes the underlying connection
	Close()
}

type coordinator struct {
	cfg  Config
	nc   adapter.NatsConn
	js   adapter.JetStream
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewCoordinator connects to NATS and ensures the render stream exists
func NewCoordinator(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, fs adapter.FileSystem, jsonAdapter adapter.JSON) (Coordinator, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("event", "nats disconnected"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if err := js.CreateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.RenderSubject},
	}); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create render stream: %w", err)
	}

	return &coordinator{
		cfg:  cfg,
		nc:   nc,
		js:   js,
		fs:   fs,
		json: jsonAdapter,
	}, nil
}

// RequestRender submits one render job and waits for its completion signal.
// An already rendered output makes this a no-op, so an interrupted pipeline
// can safely run the render stage again.
func (c *coordinator) RequestRender(ctx context.Context, req domain.PipelineRequest) (string, error) {
	outputPath := filepath.Join(c.cfg.OutputDir, fmt.Sprintf("%d.jpg", req.TokenID))

	if info, err := c.fs.Stat(outputPath); err == nil && info.Size() > 0 {
		logger.InfoCtx(ctx, "render output already exists, skipping",
			zap.String("tokenAddress", domain.ShortAddress(req.TokenAddress)),
			zap.String("outputPath", outputPath))
		return outputPath, nil
	}

	// ULIDs keep farm-side job logs time-sortable
	jobID := ulid.Make().String()
	replySubject := completionSubjectPrefix + jobID

	// Subscribe before publishing so the completion signal cannot be missed
	sub, err := c.nc.SubscribeSync(replySubject)
	if err != nil {
		return "", fmt.Errorf("failed to subscribe for render completion: %w", err)
	}
	defer func() {
		if err := sub.Unsubscribe(); err != nil {
			logger.WarnCtx(ctx, "failed to unsubscribe render completion", zap.Error(err))
		}
	}()

	job := Job{
		JobID:        jobID,
		TokenID:      req.TokenID,
		TokenAddress: req.TokenAddress,
		HeroTier:     req.HeroTier,
		Traits:       req.CosmeticTraits,
		OutputPath:   outputPath,
		ReplySubject: replySubject,
	}

	data, err := c.json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to marshal render job: %w", err)
	}

	if _, err := c.js.Publish(ctx, c.cfg.RenderSubject, data); err != nil {
		return "", fmt.Errorf("failed to publish render job: %w", err)
	}

	logger.InfoCtx(ctx, "render job published",
		zap.String("jobId", jobID),
		zap.String("tokenAddress", domain.ShortAddress(req.TokenAddress)))

	waitCtx := ctx
	if c.cfg.RenderTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, c.cfg.RenderTimeout)
		defer cancel()
	}

	msg, err := sub.NextMsgWithContext(waitCtx)
	if err != nil {
		return "", fmt.Errorf("%w: waiting for render completion: %s", domain.ErrRenderFailed, err)
	}

	var result Result
	if err := c.json.Unmarshal(msg.Data, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal render result: %w", err)
	}

	if result.Error != "" {
		return "", fmt.Errorf("%w: %s", domain.ErrRenderFailed, result.Error)
	}

	imagePath := result.ImagePath
	if imagePath == "" {
		imagePath = outputPath
	}

	return imagePath, nil
}

// Close closes the NATS connection
func (c *coordinator) Close() {
	if c.nc == nil {
		return
	}

	c.nc.Close()
}
