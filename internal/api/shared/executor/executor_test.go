package executor_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"

	"github.com/mythicforge/hero-forge/internal/allocator"
	"github.com/mythicforge/hero-forge/internal/api/shared/dto"
	apiexecutor "github.com/mythicforge/hero-forge/internal/api/shared/executor"
	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/logger"
	"github.com/mythicforge/hero-forge/internal/metadata"
	"github.com/mythicforge/hero-forge/internal/mocks"
	"github.com/mythicforge/hero-forge/internal/providers/pinata"
	"github.com/mythicforge/hero-forge/internal/store/schema"
)

const testTaskQueue = "test-pipeline"

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl         *gomock.Controller
	store        *mocks.MockStore
	orchestrator *mocks.MockTemporalOrchestrator
	uploader     *mocks.MockPinataClient
	updater      *mocks.MockChainUpdater
	executor     apiexecutor.Executor
}

// setupTestExecutor creates all the mocks and executor for testing
func setupTestExecutor(t *testing.T) *testExecutorMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:         ctrl,
		store:        mocks.NewMockStore(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
		uploader:     mocks.NewMockPinataClient(ctrl),
		updater:      mocks.NewMockChainUpdater(ctrl),
	}

	tm.executor = apiexecutor.NewExecutor(
		tm.store,
		allocator.New(tm.store),
		tm.orchestrator,
		tm.uploader,
		tm.updater,
		metadata.NewAssembler("https://heroforge.example"),
		testTaskQueue,
	)

	return tm
}

func tearDownTestExecutor(mocks *testExecutorMocks) {
	mocks.ctrl.Finish()
}

func revealedToken() *schema.Token {
	return &schema.Token{
		ID:             7,
		TokenAddress:   "addr-1",
		Tome:           domain.TomeWoodlandRespite,
		TokenNumber:    42,
		StatPoints:     70,
		CosmeticPoints: 55,
		StatTier:       domain.TierRare,
		CosmeticTier:   domain.TierRare,
		HeroTier:       domain.TierEpic,
		MintName:       "Hero #42",
	}
}

// zeroCostTraits spends nothing against the cosmetic budget
func zeroCostTraits() domain.CosmeticTraits {
	return domain.CosmeticTraits{
		Race:         "Human",
		Sex:          "Male",
		FaceStyle:    "Gaunt",
		SkinTone:     "Pale",
		EyeDetail:    "None",
		Eyes:         "Brown",
		FacialHair:   "None",
		Glasses:      "None",
		HairStyle:    "Bald",
		HairColor:    "Black",
		Necklace:     "None",
		Earring:      "None",
		NosePiercing: "None",
		Scar:         "None",
		Tattoo:       "None",
		Background:   "Plain",
	}
}

// balancedSkills spends statPoints exactly
func balancedSkills(statPoints int) domain.Skills {
	base := statPoints / 6
	skills := domain.Skills{
		Constitution: base,
		Strength:     base,
		Dexterity:    base,
		Intelligence: base,
		Wisdom:       base,
		Charisma:     base,
	}
	skills.Constitution += statPoints - skills.Total()
	return skills
}

// ====================================================================================
// RevealToken
// ====================================================================================

func TestRevealToken_DrawsSlotAndPinsDocument(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tome := domain.TomeWoodlandRespite

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(nil, nil)
	tm.store.EXPECT().CountTomeSlots(gomock.Any(), tome).Return(int64(3), nil)
	tm.store.EXPECT().ListRevealedTokenNumbers(gomock.Any(), tome).Return([]int64{1, 3}, nil)
	tm.store.EXPECT().GetTomeSlot(gomock.Any(), tome, int64(2)).Return(&schema.TomeSlot{
		Tome:           tome,
		TokenNumber:    2,
		StatPoints:     80,
		CosmeticPoints: 60,
		HeroTier:       domain.TierLegendary,
	}, nil)
	tm.store.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token *schema.Token) error {
			assert.Equal(t, int64(2), token.TokenNumber)
			assert.Equal(t, domain.TierEpic, token.StatTier)      // 80 points, Woodland table
			assert.Equal(t, domain.TierRare, token.CosmeticTier) // 60 points
			token.ID = 7
			return nil
		})
	tm.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upload pinata.Request) (*pinata.Result, error) {
			assert.Equal(t, pinata.KindJSON, upload.Kind)
			assert.Equal(t, domain.StageRevealed, upload.Stage)
			return &pinata.Result{Hash: "QmReveal", URL: "https://gateway.example/ipfs/QmReveal"}, nil
		})
	tm.store.EXPECT().
		AppendMetadataRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *schema.MetadataRecord) error {
			assert.Equal(t, int64(7), record.NFTID)
			assert.Equal(t, domain.StageRevealed, record.Stage)
			assert.Equal(t, "https://gateway.example/ipfs/QmReveal", record.MetadataURL)
			assert.NotEmpty(t, record.Document)
			return nil
		})

	resp, err := tm.executor.RevealToken(context.Background(), dto.RevealRequest{
		TokenAddress: "addr-1",
		Tome:         string(tome),
		MintName:     "Hero #2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TokenNumber)
	assert.Equal(t, domain.TierLegendary, resp.HeroTier)
	assert.Equal(t, "https://gateway.example/ipfs/QmReveal", resp.MetadataURL)
}

func TestRevealToken_AlreadyRevealedAddress(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(revealedToken(), nil)
	tm.store.EXPECT().
		AppendErrorRecord(gomock.Any(), "addr-1", "reveal", gomock.Any()).
		Return(nil)

	resp, err := tm.executor.RevealToken(context.Background(), dto.RevealRequest{
		TokenAddress: "addr-1",
		Tome:         string(domain.TomeWoodlandRespite),
		MintName:     "Hero #42",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrTokenAlreadyRevealed)
}

func TestRevealToken_SlotRaceDrawsAgain(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tome := domain.TomeWoodlandRespite

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(nil, nil)
	tm.store.EXPECT().CountTomeSlots(gomock.Any(), tome).Return(int64(2), nil).Times(2)
	// First draw sees slot 1 free, a rival claims it; second draw sees
	// only slot 2 left.
	gomock.InOrder(
		tm.store.EXPECT().ListRevealedTokenNumbers(gomock.Any(), tome).Return([]int64{2}, nil),
		tm.store.EXPECT().ListRevealedTokenNumbers(gomock.Any(), tome).Return([]int64{1}, nil),
	)
	tm.store.EXPECT().GetTomeSlot(gomock.Any(), tome, int64(1)).Return(&schema.TomeSlot{
		Tome: tome, TokenNumber: 1, StatPoints: 50, CosmeticPoints: 40, HeroTier: domain.TierRare,
	}, nil)
	tm.store.EXPECT().GetTomeSlot(gomock.Any(), tome, int64(2)).Return(&schema.TomeSlot{
		Tome: tome, TokenNumber: 2, StatPoints: 90, CosmeticPoints: 85, HeroTier: domain.TierMythic,
	}, nil)
	tm.store.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token *schema.Token) error {
			if token.TokenNumber == 1 {
				return domain.ErrTokenAlreadyRevealed
			}
			token.ID = 9
			return nil
		}).
		Times(2)
	tm.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		Return(&pinata.Result{Hash: "QmReveal", URL: "https://gateway.example/ipfs/QmReveal"}, nil)
	tm.store.EXPECT().AppendMetadataRecord(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := tm.executor.RevealToken(context.Background(), dto.RevealRequest{
		TokenAddress: "addr-1",
		Tome:         string(tome),
		MintName:     "Hero #2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TokenNumber)
	assert.Equal(t, domain.TierMythic, resp.HeroTier)
}

func TestRevealToken_PoolExhausted(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tome := domain.TomeDawnOfMan

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(nil, nil)
	tm.store.EXPECT().CountTomeSlots(gomock.Any(), tome).Return(int64(2), nil)
	tm.store.EXPECT().ListRevealedTokenNumbers(gomock.Any(), tome).Return([]int64{1, 2}, nil)
	tm.store.EXPECT().
		AppendErrorRecord(gomock.Any(), "addr-1", "reveal", gomock.Any()).
		Return(nil)

	resp, err := tm.executor.RevealToken(context.Background(), dto.RevealRequest{
		TokenAddress: "addr-1",
		Tome:         string(tome),
		MintName:     "Hero #3",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrPoolExhausted)
}

// ====================================================================================
// CustomizeToken
// ====================================================================================

func TestCustomizeToken_PersistsCharacterAndStartsPipeline(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	token := revealedToken()
	skills := balancedSkills(token.StatPoints)

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(token, nil)
	tm.store.EXPECT().
		CreateCharacter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, character *schema.Character) error {
			assert.Equal(t, token.ID, character.NFTID)
			assert.Equal(t, skills, character.Skills())
			return nil
		})
	tm.store.EXPECT().
		GetLatestTokenName(gomock.Any(), token.ID).
		Return(&schema.TokenName{
			NFTID:           token.ID,
			TokenName:       "Thorn of the Glade",
			TokenNameStatus: schema.NameStatusApproved,
		}, nil)
	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, args ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "customize-addr-1", options.ID)
			assert.Equal(t, testTaskQueue, options.TaskQueue)

			require.Len(t, args, 1)
			pipeline := args[0].(*domain.PipelineRequest)
			assert.Equal(t, "Thorn of the Glade", pipeline.TokenName)
			assert.Equal(t, "Hero #42", pipeline.MintName)
			assert.Equal(t, skills, pipeline.Skills)
			return client.WorkflowRun(nil), nil
		})

	resp, err := tm.executor.CustomizeToken(context.Background(), dto.CustomizeRequest{
		TokenAddress:   "addr-1",
		Skills:         skills,
		CosmeticTraits: zeroCostTraits(),
	})
	require.NoError(t, err)
	assert.Equal(t, "customize-addr-1", resp.WorkflowID)
}

func TestCustomizeToken_BudgetMismatch(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	token := revealedToken()

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(token, nil)
	tm.store.EXPECT().
		AppendErrorRecord(gomock.Any(), "addr-1", "customize", gomock.Any()).
		Return(nil)

	// One point short of the stat budget
	resp, err := tm.executor.CustomizeToken(context.Background(), dto.CustomizeRequest{
		TokenAddress:   "addr-1",
		Skills:         balancedSkills(token.StatPoints - 1),
		CosmeticTraits: zeroCostTraits(),
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrBudgetMismatch)
}

func TestCustomizeToken_UnknownTrait(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	token := revealedToken()
	traits := zeroCostTraits()
	traits.Background = "Volcano Lair"

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(token, nil)
	tm.store.EXPECT().
		AppendErrorRecord(gomock.Any(), "addr-1", "customize", gomock.Any()).
		Return(nil)

	resp, err := tm.executor.CustomizeToken(context.Background(), dto.CustomizeRequest{
		TokenAddress:   "addr-1",
		Skills:         balancedSkills(token.StatPoints),
		CosmeticTraits: traits,
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrUnknownTrait)
}

func TestCustomizeToken_NotRevealed(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(nil, nil)
	tm.store.EXPECT().
		AppendErrorRecord(gomock.Any(), "addr-1", "customize", gomock.Any()).
		Return(nil)

	resp, err := tm.executor.CustomizeToken(context.Background(), dto.CustomizeRequest{
		TokenAddress:   "addr-1",
		Skills:         balancedSkills(70),
		CosmeticTraits: zeroCostTraits(),
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrTokenNotRevealed)
}

func TestCustomizeToken_AlreadyCustomized(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	token := revealedToken()

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(token, nil)
	tm.store.EXPECT().
		CreateCharacter(gomock.Any(), gomock.Any()).
		Return(domain.ErrTokenAlreadyCustomized)
	tm.store.EXPECT().
		AppendErrorRecord(gomock.Any(), "addr-1", "customize", gomock.Any()).
		Return(nil)

	resp, err := tm.executor.CustomizeToken(context.Background(), dto.CustomizeRequest{
		TokenAddress:   "addr-1",
		Skills:         balancedSkills(token.StatPoints),
		CosmeticTraits: zeroCostTraits(),
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrTokenAlreadyCustomized)
}

// ====================================================================================
// RerenderToken
// ====================================================================================

func TestRerenderToken_RestartsPipeline(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	token := revealedToken()
	character := &schema.Character{NFTID: token.ID}
	character.ApplySelections(balancedSkills(token.StatPoints), zeroCostTraits())

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(token, nil)
	tm.store.EXPECT().GetCharacterByNFTID(gomock.Any(), token.ID).Return(character, nil)
	tm.store.EXPECT().GetLatestTokenName(gomock.Any(), token.ID).Return(nil, nil)
	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, args ...interface{}) (client.WorkflowRun, error) {
			assert.True(t, strings.HasPrefix(options.ID, "rerender-addr-1-"))

			pipeline := args[0].(*domain.PipelineRequest)
			// No approved name, the mint name carries
			assert.Equal(t, "Hero #42", pipeline.TokenName)
			return client.WorkflowRun(nil), nil
		})

	resp, err := tm.executor.RerenderToken(context.Background(), dto.RerenderRequest{TokenAddress: "addr-1"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.WorkflowID, "rerender-addr-1-"))
}

func TestRerenderToken_NoCharacter(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	token := revealedToken()

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(token, nil)
	tm.store.EXPECT().GetCharacterByNFTID(gomock.Any(), token.ID).Return(nil, nil)
	tm.store.EXPECT().
		AppendErrorRecord(gomock.Any(), "addr-1", "rerender", gomock.Any()).
		Return(nil)

	resp, err := tm.executor.RerenderToken(context.Background(), dto.RerenderRequest{TokenAddress: "addr-1"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

// ====================================================================================
// Admin operations
// ====================================================================================

func TestUpdateMetadataURL_RepointsChainAndAppendsRecord(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	token := revealedToken()

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(token, nil)
	tm.updater.EXPECT().
		UpdateMetadataURL(gomock.Any(), "addr-1", "ipfs://QmNewMeta").
		Return("0xtxhash", nil)
	tm.store.EXPECT().
		GetLatestMetadataRecord(gomock.Any(), token.ID).
		Return(&schema.MetadataRecord{ImageURL: "ipfs://QmOldImage"}, nil)
	tm.store.EXPECT().
		AppendMetadataRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *schema.MetadataRecord) error {
			assert.Equal(t, "ipfs://QmNewMeta", record.MetadataURL)
			assert.Equal(t, "ipfs://QmOldImage", record.ImageURL)
			return nil
		})

	resp, err := tm.executor.UpdateMetadataURL(context.Background(), dto.MetadataURLRequest{
		TokenAddress: "addr-1",
		MetadataURL:  "ipfs://QmNewMeta",
	})
	require.NoError(t, err)
	assert.Equal(t, "0xtxhash", resp.TxHash)
}

func TestUpdateMetadataURL_ChainFailure(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	token := revealedToken()

	tm.store.EXPECT().GetTokenByAddress(gomock.Any(), "addr-1").Return(token, nil)
	tm.updater.EXPECT().
		UpdateMetadataURL(gomock.Any(), "addr-1", "ipfs://QmNewMeta").
		Return("", domain.ErrChainUpdateFailed)
	tm.store.EXPECT().
		AppendErrorRecord(gomock.Any(), "addr-1", "update_metadata_url", gomock.Any()).
		Return(nil)

	resp, err := tm.executor.UpdateMetadataURL(context.Background(), dto.MetadataURLRequest{
		TokenAddress: "addr-1",
		MetadataURL:  "ipfs://QmNewMeta",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrChainUpdateFailed)
}

func TestUploadIPFSJSON_UsesLabelAsPinName(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upload pinata.Request) (*pinata.Result, error) {
			assert.Equal(t, pinata.KindJSON, upload.Kind)
			assert.Equal(t, "my-pin", upload.TokenAddress)
			return &pinata.Result{Hash: "QmPinned", URL: "https://gateway.example/ipfs/QmPinned"}, nil
		})

	resp, err := tm.executor.UploadIPFSJSON(context.Background(), []byte(`{"name":"x"}`), "my-pin")
	require.NoError(t, err)
	assert.Equal(t, "QmPinned", resp.Hash)
}

func TestUpdateCharacter_RevalidatesBudgets(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	token := revealedToken()
	character := &schema.Character{NFTID: token.ID}
	character.ApplySelections(balancedSkills(token.StatPoints), zeroCostTraits())

	tm.store.EXPECT().GetCharacterByNFTID(gomock.Any(), token.ID).Return(character, nil)
	tm.store.EXPECT().GetTokenByID(gomock.Any(), token.ID).Return(token, nil)
	tm.store.EXPECT().
		AppendErrorRecord(gomock.Any(), "addr-1", "update_character", gomock.Any()).
		Return(nil)

	resp, err := tm.executor.UpdateCharacter(context.Background(), token.ID, dto.UpdateCharacterRequest{
		Skills:         balancedSkills(token.StatPoints + 5),
		CosmeticTraits: zeroCostTraits(),
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrBudgetMismatch)
	assert.NotEqual(t, errors.New("unreachable"), err)
}
