package workflows

import (
	"go.temporal.io/sdk/workflow"

	"github.com/mythicforge/hero-forge/internal/domain"
)

// TaskQueue is the task queue the pipeline worker listens on
const TaskQueue = "hero-forge-pipeline"

// PipelineWorker defines the customization pipeline workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/pipeline_worker.go -package=mocks -mock_names=PipelineWorker=MockPipelineWorker
type PipelineWorker interface {
	// CustomizeToken runs the full customization pipeline for one token:
	// render, image upload, metadata assembly and upload, on-chain update,
	// persistence
	CustomizeToken(ctx workflow.Context, req *domain.PipelineRequest) error

	// RerenderToken re-runs the pipeline for an already customized token,
	// reusing its stored selections
	RerenderToken(ctx workflow.Context, req *domain.PipelineRequest) error
}

// pipelineWorker is the concrete implementation of PipelineWorker
type pipelineWorker struct {
	executor Executor
}

// NewPipelineWorker creates a new pipeline worker instance
func NewPipelineWorker(executor Executor) PipelineWorker {
	return &pipelineWorker{executor: executor}
}
