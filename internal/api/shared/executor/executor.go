// Package executor holds the business logic behind the REST surface:
// reveal allocation, customization validation and hand-off to the
// pipeline, and the admin operations.
package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/mythicforge/hero-forge/internal/allocator"
	"github.com/mythicforge/hero-forge/internal/api/shared/dto"
	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/hero"
	"github.com/mythicforge/hero-forge/internal/logger"
	"github.com/mythicforge/hero-forge/internal/metadata"
	"github.com/mythicforge/hero-forge/internal/providers/ethereum"
	"github.com/mythicforge/hero-forge/internal/providers/pinata"
	"github.com/mythicforge/hero-forge/internal/providers/temporal"
	"github.com/mythicforge/hero-forge/internal/store"
	"github.com/mythicforge/hero-forge/internal/store/schema"
	"github.com/mythicforge/hero-forge/internal/workflows"
)

// revealAttempts bounds the draw-then-insert loop. Each retry only happens
// when a concurrent reveal claimed the drawn slot first.
const revealAttempts = 3

// adminPinLabel names admin uploads in the Pinata dashboard when the
// request carries no label of its own
const adminPinLabel = "admin"

// Executor defines the business operations behind the REST handlers
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// RevealToken draws an unassigned slot, persists the token, and pins
	// its pre-customization metadata document
	RevealToken(ctx context.Context, req dto.RevealRequest) (*dto.RevealResponse, error)

	// CustomizeToken validates the budget spend, persists the character,
	// and starts the customization pipeline
	CustomizeToken(ctx context.Context, req dto.CustomizeRequest) (*dto.CustomizeResponse, error)

	// ListCharacters retrieves customized characters
	ListCharacters(ctx context.Context, limit, offset int) (*dto.CharacterListResponse, error)

	// GetCharacter retrieves one character by its owning token ID
	GetCharacter(ctx context.Context, nftID int64) (*dto.CharacterResponse, error)

	// UpdateCharacter replaces a character's selections (admin)
	UpdateCharacter(ctx context.Context, nftID int64, req dto.UpdateCharacterRequest) (*dto.CharacterResponse, error)

	// DeleteCharacter removes a character (admin)
	DeleteCharacter(ctx context.Context, nftID int64) error

	// RerenderToken re-runs the customization pipeline for a token (admin)
	RerenderToken(ctx context.Context, req dto.RerenderRequest) (*dto.RerenderResponse, error)

	// UploadIPFSFile pins a file from disk (admin)
	UploadIPFSFile(ctx context.Context, filePath, label string) (*dto.IPFSUploadResponse, error)

	// UploadIPFSJSON pins a raw JSON document (admin)
	UploadIPFSJSON(ctx context.Context, document []byte, label string) (*dto.IPFSUploadResponse, error)

	// UpdateMetadataURL repoints a token's on-chain metadata URI directly (admin)
	UpdateMetadataURL(ctx context.Context, req dto.MetadataURLRequest) (*dto.MetadataURLResponse, error)
}

type executor struct {
	store                 store.Store
	allocator             *allocator.Allocator
	orchestrator          temporal.TemporalOrchestrator
	uploader              pinata.Client
	updater               ethereum.Updater
	assembler             *metadata.Assembler
	orchestratorTaskQueue string
}

// NewExecutor creates the REST business-logic executor
func NewExecutor(
	dataStore store.Store,
	alloc *allocator.Allocator,
	orchestrator temporal.TemporalOrchestrator,
	uploader pinata.Client,
	updater ethereum.Updater,
	assembler *metadata.Assembler,
	orchestratorTaskQueue string,
) Executor {
	return &executor{
		store:                 dataStore,
		allocator:             alloc,
		orchestrator:          orchestrator,
		uploader:              uploader,
		updater:               updater,
		assembler:             assembler,
		orchestratorTaskQueue: orchestratorTaskQueue,
	}
}

// RevealToken draws an unassigned slot, persists the token, and pins its
// pre-customization metadata document
func (e *executor) RevealToken(ctx context.Context, req dto.RevealRequest) (*dto.RevealResponse, error) {
	tome := domain.Tome(req.Tome)

	existing, err := e.store.GetTokenByAddress(ctx, req.TokenAddress)
	if err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "reveal", err)
	}
	if existing != nil {
		return nil, e.fail(ctx, req.TokenAddress, "reveal", domain.ErrTokenAlreadyRevealed)
	}

	// The unique (tome, token_number) index is the arbiter: when a
	// concurrent reveal wins the drawn slot, draw again.
	var token *schema.Token
	for attempt := 0; attempt < revealAttempts; attempt++ {
		proposal, err := e.allocator.Allocate(ctx, tome)
		if err != nil {
			return nil, e.fail(ctx, req.TokenAddress, "reveal", err)
		}

		candidate := &schema.Token{
			TokenAddress:   req.TokenAddress,
			Tome:           tome,
			TokenNumber:    proposal.TokenNumber,
			StatPoints:     proposal.StatPoints,
			CosmeticPoints: proposal.CosmeticPoints,
			StatTier:       hero.StatTier(tome, proposal.StatPoints),
			CosmeticTier:   hero.CosmeticTier(proposal.CosmeticPoints),
			HeroTier:       proposal.HeroTier,
			MintName:       req.MintName,
		}

		err = e.store.CreateToken(ctx, candidate)
		if err == nil {
			token = candidate
			break
		}
		if !errors.Is(err, domain.ErrTokenAlreadyRevealed) {
			return nil, e.fail(ctx, req.TokenAddress, "reveal", err)
		}

		logger.InfoCtx(ctx, "lost slot allocation race, drawing again",
			zap.String("tome", string(tome)),
			zap.Int64("tokenNumber", proposal.TokenNumber))
	}
	if token == nil {
		return nil, e.fail(ctx, req.TokenAddress, "reveal", domain.ErrTokenAlreadyRevealed)
	}

	doc := e.assembler.AssembleRevealed(req.MintName, tome,
		token.StatPoints, token.CosmeticPoints,
		token.StatTier, token.CosmeticTier, token.HeroTier)

	canonical, err := metadata.Canonicalize(doc)
	if err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "reveal", err)
	}

	pinned, err := e.uploader.Upload(ctx, pinata.Request{
		Kind:         pinata.KindJSON,
		Document:     canonical,
		TokenAddress: req.TokenAddress,
		Stage:        domain.StageRevealed,
	})
	if err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "reveal", err)
	}

	if err := e.store.AppendMetadataRecord(ctx, &schema.MetadataRecord{
		NFTID:       token.ID,
		Stage:       domain.StageRevealed,
		MetadataURL: pinned.URL,
		ImageURL:    doc.Image,
		Document:    datatypes.JSON(canonical),
	}); err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "reveal", err)
	}

	return &dto.RevealResponse{
		TokenAddress:   token.TokenAddress,
		Tome:           token.Tome,
		TokenNumber:    token.TokenNumber,
		StatPoints:     token.StatPoints,
		CosmeticPoints: token.CosmeticPoints,
		StatTier:       token.StatTier,
		CosmeticTier:   token.CosmeticTier,
		HeroTier:       token.HeroTier,
		MetadataURL:    pinned.URL,
	}, nil
}

// CustomizeToken validates the budget spend, persists the character, and
// starts the customization pipeline
func (e *executor) CustomizeToken(ctx context.Context, req dto.CustomizeRequest) (*dto.CustomizeResponse, error) {
	token, err := e.store.GetTokenByAddress(ctx, req.TokenAddress)
	if err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "customize", err)
	}
	if token == nil {
		return nil, e.fail(ctx, req.TokenAddress, "customize", domain.ErrTokenNotRevealed)
	}

	if err := hero.ValidateSkills(token.StatPoints, req.Skills); err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "customize", err)
	}
	if err := hero.ValidateTraits(token.CosmeticPoints, req.CosmeticTraits); err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "customize", err)
	}

	character := &schema.Character{NFTID: token.ID}
	character.ApplySelections(req.Skills, req.CosmeticTraits)
	if err := e.store.CreateCharacter(ctx, character); err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "customize", err)
	}

	pipeline := e.pipelineRequest(ctx, token, req.Skills, req.CosmeticTraits)

	workflowID := fmt.Sprintf("customize-%s", token.TokenAddress)
	if err := e.startPipeline(ctx, workflowID, true, pipeline); err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "customize", err)
	}

	return &dto.CustomizeResponse{
		TokenAddress: token.TokenAddress,
		WorkflowID:   workflowID,
	}, nil
}

// ListCharacters retrieves customized characters
func (e *executor) ListCharacters(ctx context.Context, limit, offset int) (*dto.CharacterListResponse, error) {
	characters, err := e.store.ListCharacters(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	response := &dto.CharacterListResponse{
		Characters: make([]dto.CharacterResponse, 0, len(characters)),
	}
	for _, character := range characters {
		response.Characters = append(response.Characters, dto.NewCharacterResponse(character))
	}
	return response, nil
}

// GetCharacter retrieves one character by its owning token ID
func (e *executor) GetCharacter(ctx context.Context, nftID int64) (*dto.CharacterResponse, error) {
	character, err := e.store.GetCharacterByNFTID(ctx, nftID)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, domain.ErrCharacterNotFound
	}

	if token, err := e.store.GetTokenByID(ctx, nftID); err == nil && token != nil {
		character.Token = *token
	}

	response := dto.NewCharacterResponse(character)
	return &response, nil
}

// UpdateCharacter replaces a character's selections after re-validating
// them against the owning token's budgets
func (e *executor) UpdateCharacter(ctx context.Context, nftID int64, req dto.UpdateCharacterRequest) (*dto.CharacterResponse, error) {
	character, err := e.store.GetCharacterByNFTID(ctx, nftID)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, domain.ErrCharacterNotFound
	}

	token, err := e.store.GetTokenByID(ctx, nftID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domain.ErrTokenNotFound
	}

	if err := hero.ValidateSkills(token.StatPoints, req.Skills); err != nil {
		return nil, e.fail(ctx, token.TokenAddress, "update_character", err)
	}
	if err := hero.ValidateTraits(token.CosmeticPoints, req.CosmeticTraits); err != nil {
		return nil, e.fail(ctx, token.TokenAddress, "update_character", err)
	}

	character.ApplySelections(req.Skills, req.CosmeticTraits)
	if err := e.store.UpdateCharacter(ctx, character); err != nil {
		return nil, e.fail(ctx, token.TokenAddress, "update_character", err)
	}

	character.Token = *token
	response := dto.NewCharacterResponse(character)
	return &response, nil
}

// DeleteCharacter removes a character
func (e *executor) DeleteCharacter(ctx context.Context, nftID int64) error {
	return e.store.DeleteCharacter(ctx, nftID)
}

// RerenderToken re-runs the customization pipeline for an already
// customized token
func (e *executor) RerenderToken(ctx context.Context, req dto.RerenderRequest) (*dto.RerenderResponse, error) {
	token, err := e.store.GetTokenByAddress(ctx, req.TokenAddress)
	if err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "rerender", err)
	}
	if token == nil {
		return nil, e.fail(ctx, req.TokenAddress, "rerender", domain.ErrTokenNotFound)
	}

	character, err := e.store.GetCharacterByNFTID(ctx, token.ID)
	if err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "rerender", err)
	}
	if character == nil {
		return nil, e.fail(ctx, req.TokenAddress, "rerender", domain.ErrCharacterNotFound)
	}

	pipeline := e.pipelineRequest(ctx, token, character.Skills(), character.Traits())

	// Rerenders repeat, so every run gets its own workflow ID
	workflowID := fmt.Sprintf("rerender-%s-%s", token.TokenAddress, uuid.NewString())
	if err := e.startPipeline(ctx, workflowID, false, pipeline); err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "rerender", err)
	}

	return &dto.RerenderResponse{
		TokenAddress: token.TokenAddress,
		WorkflowID:   workflowID,
	}, nil
}

// UploadIPFSFile pins a file from disk
func (e *executor) UploadIPFSFile(ctx context.Context, filePath, label string) (*dto.IPFSUploadResponse, error) {
	return e.adminUpload(ctx, pinata.Request{
		Kind:     pinata.KindImage,
		FilePath: filePath,
	}, label)
}

// UploadIPFSJSON pins a raw JSON document
func (e *executor) UploadIPFSJSON(ctx context.Context, document []byte, label string) (*dto.IPFSUploadResponse, error) {
	return e.adminUpload(ctx, pinata.Request{
		Kind:     pinata.KindJSON,
		Document: document,
	}, label)
}

// UpdateMetadataURL repoints a token's on-chain metadata URI without
// touching the document itself
func (e *executor) UpdateMetadataURL(ctx context.Context, req dto.MetadataURLRequest) (*dto.MetadataURLResponse, error) {
	token, err := e.store.GetTokenByAddress(ctx, req.TokenAddress)
	if err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "update_metadata_url", err)
	}
	if token == nil {
		return nil, e.fail(ctx, req.TokenAddress, "update_metadata_url", domain.ErrTokenNotFound)
	}

	txHash, err := e.updater.UpdateMetadataURL(ctx, req.TokenAddress, req.MetadataURL)
	if err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "update_metadata_url", err)
	}

	// Keep the metadata log pointing at what the chain points at. The
	// image URL carries over from the newest record when one exists.
	imageURL := ""
	if prior, err := e.store.GetLatestMetadataRecord(ctx, token.ID); err == nil && prior != nil {
		imageURL = prior.ImageURL
	}
	if err := e.store.AppendMetadataRecord(ctx, &schema.MetadataRecord{
		NFTID:       token.ID,
		Stage:       domain.StageCustomized,
		MetadataURL: req.MetadataURL,
		ImageURL:    imageURL,
	}); err != nil {
		return nil, e.fail(ctx, req.TokenAddress, "update_metadata_url", err)
	}

	return &dto.MetadataURLResponse{
		TokenAddress: req.TokenAddress,
		MetadataURL:  req.MetadataURL,
		TxHash:       txHash,
	}, nil
}

// pipelineRequest assembles the workflow input from the token row and the
// character's selections
func (e *executor) pipelineRequest(ctx context.Context, token *schema.Token, skills domain.Skills, traits domain.CosmeticTraits) *domain.PipelineRequest {
	return &domain.PipelineRequest{
		NFTID:          token.ID,
		TokenID:        token.TokenNumber,
		TokenAddress:   token.TokenAddress,
		TokenName:      e.resolveTokenName(ctx, token.ID, token.MintName),
		MintName:       token.MintName,
		Tome:           token.Tome,
		StatPoints:     token.StatPoints,
		CosmeticPoints: token.CosmeticPoints,
		StatTier:       token.StatTier,
		CosmeticTier:   token.CosmeticTier,
		HeroTier:       token.HeroTier,
		Skills:         skills,
		CosmeticTraits: traits,
	}
}

// resolveTokenName prefers the newest approved display name, falling back
// to the mint name
func (e *executor) resolveTokenName(ctx context.Context, nftID int64, mintName string) string {
	name, err := e.store.GetLatestTokenName(ctx, nftID)
	if err != nil {
		logger.WarnCtx(ctx, "failed to load token name, using mint name",
			zap.Error(err), zap.Int64("nftId", nftID))
		return mintName
	}
	if name == nil || name.TokenNameStatus != schema.NameStatusApproved {
		return mintName
	}
	return name.TokenName
}

// startPipeline hands the request to the Temporal orchestrator. The caller
// gets an acknowledgement once the workflow is started; the run itself is
// supervised by Temporal, not by the request goroutine.
func (e *executor) startPipeline(ctx context.Context, workflowID string, customize bool, pipeline *domain.PipelineRequest) error {
	w := workflows.NewPipelineWorker(nil)
	options := client.StartWorkflowOptions{
		ID:                       workflowID,
		TaskQueue:                e.orchestratorTaskQueue,
		WorkflowExecutionTimeout: 30 * time.Minute,
	}

	// First customizations use the token-derived workflow ID as a dedupe
	// key; rerenders carry a fresh ID each time and may repeat
	workflow := w.RerenderToken
	options.WorkflowIDReusePolicy = enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE
	if customize {
		workflow = w.CustomizeToken
		options.WorkflowIDReusePolicy = enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE
	}

	if _, err := e.orchestrator.ExecuteWorkflow(ctx, options, workflow, pipeline); err != nil {
		return fmt.Errorf("failed to start customization pipeline: %w", err)
	}
	return nil
}

func (e *executor) adminUpload(ctx context.Context, req pinata.Request, label string) (*dto.IPFSUploadResponse, error) {
	if label == "" {
		label = adminPinLabel
	}
	req.TokenAddress = label
	req.Stage = domain.StageCustomized

	pinned, err := e.uploader.Upload(ctx, req)
	if err != nil {
		return nil, e.fail(ctx, label, "ipfs_upload", err)
	}

	return &dto.IPFSUploadResponse{Hash: pinned.Hash, URL: pinned.URL}, nil
}

// fail appends the failure to the error log before handing the error back
// up to the handler. Logging the append failure is all we can do at that
// point.
func (e *executor) fail(ctx context.Context, tokenAddress, operation string, failure error) error {
	if err := e.store.AppendErrorRecord(ctx, tokenAddress, operation, failure.Error()); err != nil {
		logger.WarnCtx(ctx, "failed to append error record",
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("tokenAddress", domain.ShortAddress(tokenAddress)))
	}
	return failure
}
