package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/logger"
	"github.com/mythicforge/hero-forge/internal/metadata"
)

// externalActivityOptions cover the stages that talk to external services.
// These must not retry implicitly: a duplicate render is wasted work, a
// duplicate chain update double-spends the nonce.
var externalActivityOptions = workflow.ActivityOptions{
	StartToCloseTimeout: 10 * time.Minute,
	RetryPolicy: &temporal.RetryPolicy{
		MaximumAttempts: 1,
	},
}

// databaseActivityOptions cover local reads and writes, which are safe to
// retry.
var databaseActivityOptions = workflow.ActivityOptions{
	StartToCloseTimeout: time.Minute,
	RetryPolicy: &temporal.RetryPolicy{
		MaximumAttempts: 3,
	},
}

// CustomizeToken runs the customization pipeline for one token. The stages
// are strictly sequential; the first failure aborts the remainder and lands
// in the error log.
func (w *pipelineWorker) CustomizeToken(ctx workflow.Context, req *domain.PipelineRequest) error {
	return w.runPipeline(ctx, req)
}

// RerenderToken re-runs the pipeline with the token's stored selections
func (w *pipelineWorker) RerenderToken(ctx workflow.Context, req *domain.PipelineRequest) error {
	return w.runPipeline(ctx, req)
}

func (w *pipelineWorker) runPipeline(ctx workflow.Context, req *domain.PipelineRequest) error {
	logger.Info("customization pipeline started",
		zap.String("tokenAddress", domain.ShortAddress(req.TokenAddress)),
		zap.Int64("nftId", req.NFTID))

	externalCtx := workflow.WithActivityOptions(ctx, externalActivityOptions)
	databaseCtx := workflow.WithActivityOptions(ctx, databaseActivityOptions)

	var imagePath string
	if err := workflow.ExecuteActivity(externalCtx, w.executor.RenderCharacter, req).Get(ctx, &imagePath); err != nil {
		return w.fail(ctx, req, domain.PipelineStageRendering, err)
	}

	var imageUpload UploadResult
	if err := workflow.ExecuteActivity(externalCtx, w.executor.UploadImage, req, imagePath).Get(ctx, &imageUpload); err != nil {
		return w.fail(ctx, req, domain.PipelineStageUploadingImage, err)
	}

	var prior *metadata.Document
	if err := workflow.ExecuteActivity(databaseCtx, w.executor.FetchPriorMetadata, req.NFTID).Get(ctx, &prior); err != nil {
		return w.fail(ctx, req, domain.PipelineStageAssembling, err)
	}

	var metadataUpload UploadResult
	if err := workflow.ExecuteActivity(externalCtx, w.executor.AssembleAndUploadMetadata, req, prior, imageUpload.URL).Get(ctx, &metadataUpload); err != nil {
		return w.fail(ctx, req, domain.PipelineStageUploadingMetadata, err)
	}

	var txHash string
	if err := workflow.ExecuteActivity(externalCtx, w.executor.UpdateChainMetadata, req.TokenAddress, metadataUpload.URL).Get(ctx, &txHash); err != nil {
		return w.fail(ctx, req, domain.PipelineStageUpdatingChain, err)
	}

	if err := workflow.ExecuteActivity(databaseCtx, w.executor.PersistPipelineResult, req, metadataUpload.URL, imageUpload.URL).Get(ctx, nil); err != nil {
		return w.fail(ctx, req, domain.PipelineStagePersisted, err)
	}

	logger.Info("customization pipeline finished",
		zap.String("tokenAddress", domain.ShortAddress(req.TokenAddress)),
		zap.String("txHash", txHash))

	return nil
}

// fail records the failure in the error log before surfacing it. The error
// log write gets its own activity options; if it fails too, the failure is
// at least visible in the worker log.
func (w *pipelineWorker) fail(ctx workflow.Context, req *domain.PipelineRequest, stage domain.PipelineStage, err error) error {
	logger.Error(err,
		zap.String("tokenAddress", domain.ShortAddress(req.TokenAddress)),
		zap.String("stage", string(stage)))

	recordCtx := workflow.WithActivityOptions(ctx, databaseActivityOptions)
	if recordErr := workflow.ExecuteActivity(recordCtx, w.executor.RecordPipelineFailure,
		req.TokenAddress, string(stage), err.Error()).Get(ctx, nil); recordErr != nil {
		logger.Error(fmt.Errorf("failed to record pipeline failure: %w", recordErr),
			zap.String("tokenAddress", domain.ShortAddress(req.TokenAddress)))
	}

	return err
}
