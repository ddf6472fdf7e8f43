package workflows

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mythicforge/hero-forge/internal/adapter"
	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/logger"
	"github.com/mythicforge/hero-forge/internal/metadata"
	"github.com/mythicforge/hero-forge/internal/providers/ethereum"
	"github.com/mythicforge/hero-forge/internal/providers/pinata"
	"github.com/mythicforge/hero-forge/internal/render"
	"github.com/mythicforge/hero-forge/internal/store"
	"github.com/mythicforge/hero-forge/internal/store/schema"
)

// UploadResult is the content address an upload activity returns
type UploadResult struct {
	Hash string `json:"hash"`
	URL  string `json:"url"`
}

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/workflowmocks/executor.go -package=workflowmocks -mock_names=Executor=MockPipelineExecutor
type Executor interface {
	// RenderCharacter renders the character's artwork and returns the image
	// path on disk
	RenderCharacter(ctx context.Context, req *domain.PipelineRequest) (string, error)

	// UploadImage pins the rendered image to IPFS and archives a copy under
	// the metadata folder
	UploadImage(ctx context.Context, req *domain.PipelineRequest, imagePath string) (*UploadResult, error)

	// FetchPriorMetadata loads the token's most recent metadata document.
	// Returns nil when the token has none yet.
	FetchPriorMetadata(ctx context.Context, nftID int64) (*metadata.Document, error)

	// AssembleAndUploadMetadata merges the customization into a canonical
	// metadata document, pins it, and archives a copy
	AssembleAndUploadMetadata(ctx context.Context, req *domain.PipelineRequest, prior *metadata.Document, imageURL string) (*UploadResult, error)

	// UpdateChainMetadata repoints the token's on-chain metadata URI
	UpdateChainMetadata(ctx context.Context, tokenAddress, metadataURL string) (string, error)

	// PersistPipelineResult appends the run's metadata record
	PersistPipelineResult(ctx context.Context, req *domain.PipelineRequest, metadataURL, imageURL string) error

	// RecordPipelineFailure appends one row to the error log
	RecordPipelineFailure(ctx context.Context, tokenAddress, operation, message string) error
}

// ExecutorConfig holds the executor's filesystem locations
type ExecutorConfig struct {
	// MetadataDir is where pinned artifacts are archived by content hash
	MetadataDir string
}

type executor struct {
	cfg       ExecutorConfig
	store     store.Store
	renderer  render.Coordinator
	uploader  pinata.Client
	updater   ethereum.Updater
	assembler *metadata.Assembler
	fs        adapter.FileSystem
	http      adapter.HTTPClient
}

// NewExecutor creates an executor wiring the pipeline's collaborators
func NewExecutor(
	cfg ExecutorConfig,
	dataStore store.Store,
	renderer render.Coordinator,
	uploader pinata.Client,
	updater ethereum.Updater,
	assembler *metadata.Assembler,
	fs adapter.FileSystem,
	httpClient adapter.HTTPClient,
) Executor {
	return &executor{
		cfg:       cfg,
		store:     dataStore,
		renderer:  renderer,
		uploader:  uploader,
		updater:   updater,
		assembler: assembler,
		fs:        fs,
		http:      httpClient,
	}
}

// RenderCharacter renders the character's artwork
func (e *executor) RenderCharacter(ctx context.Context, req *domain.PipelineRequest) (string, error) {
	return e.renderer.RequestRender(ctx, *req)
}

// UploadImage pins the rendered image and archives a copy named after its
// content hash, mirroring the pinned state on local disk.
func (e *executor) UploadImage(ctx context.Context, req *domain.PipelineRequest, imagePath string) (*UploadResult, error) {
	result, err := e.uploader.Upload(ctx, pinata.Request{
		Kind:         pinata.KindImage,
		FilePath:     imagePath,
		TokenAddress: req.TokenAddress,
		Stage:        domain.StageCustomized,
	})
	if err != nil {
		return nil, err
	}

	if err := e.archiveFile(imagePath, result.Hash+".jpg"); err != nil {
		logger.WarnCtx(ctx, "failed to archive image copy", zap.Error(err),
			zap.String("tokenAddress", domain.ShortAddress(req.TokenAddress)))
	}

	return &UploadResult{Hash: result.Hash, URL: result.URL}, nil
}

// FetchPriorMetadata loads the most recent metadata document for a token
func (e *executor) FetchPriorMetadata(ctx context.Context, nftID int64) (*metadata.Document, error) {
	record, err := e.store.GetLatestMetadataRecord(ctx, nftID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	raw, err := e.http.GetBytes(ctx, record.MetadataURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prior metadata: %w", err)
	}

	return metadata.Parse(raw)
}

// AssembleAndUploadMetadata builds the canonical document and pins it
func (e *executor) AssembleAndUploadMetadata(ctx context.Context, req *domain.PipelineRequest, prior *metadata.Document, imageURL string) (*UploadResult, error) {
	doc := e.assembler.AssembleCustomized(*req, prior, imageURL)

	canonical, err := metadata.Canonicalize(doc)
	if err != nil {
		return nil, err
	}

	result, err := e.uploader.Upload(ctx, pinata.Request{
		Kind:         pinata.KindJSON,
		Document:     canonical,
		TokenAddress: req.TokenAddress,
		Stage:        domain.StageCustomized,
	})
	if err != nil {
		return nil, err
	}

	archivePath := filepath.Join(e.cfg.MetadataDir, result.Hash+".json")
	if err := e.fs.WriteFile(archivePath, canonical, 0o644); err != nil {
		logger.WarnCtx(ctx, "failed to archive metadata copy", zap.Error(err),
			zap.String("tokenAddress", domain.ShortAddress(req.TokenAddress)))
	}

	return &UploadResult{Hash: result.Hash, URL: result.URL}, nil
}

// UpdateChainMetadata repoints the token's on-chain metadata URI
func (e *executor) UpdateChainMetadata(ctx context.Context, tokenAddress, metadataURL string) (string, error) {
	return e.updater.UpdateMetadataURL(ctx, tokenAddress, metadataURL)
}

// PersistPipelineResult appends the metadata record that marks the run
// successful
func (e *executor) PersistPipelineResult(ctx context.Context, req *domain.PipelineRequest, metadataURL, imageURL string) error {
	return e.store.AppendMetadataRecord(ctx, &schema.MetadataRecord{
		NFTID:       req.NFTID,
		Stage:       domain.StageCustomized,
		MetadataURL: metadataURL,
		ImageURL:    imageURL,
	})
}

// RecordPipelineFailure appends one row to the error log
func (e *executor) RecordPipelineFailure(ctx context.Context, tokenAddress, operation, message string) error {
	return e.store.AppendErrorRecord(ctx, tokenAddress, operation, message)
}

func (e *executor) archiveFile(sourcePath, name string) error {
	content, err := e.fs.ReadFile(sourcePath)
	if err != nil {
		return err
	}
	return e.fs.WriteFile(filepath.Join(e.cfg.MetadataDir, name), content, 0o644)
}
