package workflows_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythicforge/hero-forge/internal/adapter"
	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/logger"
	"github.com/mythicforge/hero-forge/internal/metadata"
	"github.com/mythicforge/hero-forge/internal/mocks"
	"github.com/mythicforge/hero-forge/internal/providers/pinata"
	"github.com/mythicforge/hero-forge/internal/store/schema"
	"github.com/mythicforge/hero-forge/internal/workflows"
)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl        *gomock.Controller
	store       *mocks.MockStore
	renderer    *mocks.MockRenderCoordinator
	uploader    *mocks.MockPinataClient
	updater     *mocks.MockChainUpdater
	httpClient  *mocks.MockHTTPClient
	metadataDir string
	executor    workflows.Executor
}

// setupTestExecutor creates all the mocks and executor for testing
func setupTestExecutor(t *testing.T) *testExecutorMocks {
	// Initialize logger for tests (required for activities that log)
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:        ctrl,
		store:       mocks.NewMockStore(ctrl),
		renderer:    mocks.NewMockRenderCoordinator(ctrl),
		uploader:    mocks.NewMockPinataClient(ctrl),
		updater:     mocks.NewMockChainUpdater(ctrl),
		httpClient:  mocks.NewMockHTTPClient(ctrl),
		metadataDir: t.TempDir(),
	}

	tm.executor = workflows.NewExecutor(
		workflows.ExecutorConfig{MetadataDir: tm.metadataDir},
		tm.store,
		tm.renderer,
		tm.uploader,
		tm.updater,
		metadata.NewAssembler("https://heroforge.example"),
		adapter.NewFileSystem(),
		tm.httpClient,
	)

	return tm
}

// tearDownTestExecutor cleans up the test mocks
func tearDownTestExecutor(mocks *testExecutorMocks) {
	mocks.ctrl.Finish()
}

func executorRequest() *domain.PipelineRequest {
	return &domain.PipelineRequest{
		NFTID:          7,
		TokenID:        42,
		TokenAddress:   "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
		TokenName:      "Thorn of the Glade",
		MintName:       "Hero #42",
		Tome:           domain.TomeWoodlandRespite,
		StatPoints:     70,
		CosmeticPoints: 55,
		StatTier:       domain.TierRare,
		CosmeticTier:   domain.TierRare,
		HeroTier:       domain.TierEpic,
	}
}

// ====================================================================================
// RenderCharacter
// ====================================================================================

func TestRenderCharacter_Delegates(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	req := executorRequest()
	tm.renderer.EXPECT().
		RequestRender(gomock.Any(), *req).
		Return("/var/renders/42.jpg", nil)

	path, err := tm.executor.RenderCharacter(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "/var/renders/42.jpg", path)
}

// ====================================================================================
// UploadImage
// ====================================================================================

func TestUploadImage_PinsAndArchives(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	req := executorRequest()
	imagePath := filepath.Join(t.TempDir(), "42.jpg")
	content := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	require.NoError(t, os.WriteFile(imagePath, content, 0o644))

	tm.uploader.EXPECT().
		Upload(gomock.Any(), pinata.Request{
			Kind:         pinata.KindImage,
			FilePath:     imagePath,
			TokenAddress: req.TokenAddress,
			Stage:        domain.StageCustomized,
		}).
		Return(&pinata.Result{Hash: "QmImage", URL: "ipfs://QmImage"}, nil)

	result, err := tm.executor.UploadImage(context.Background(), req, imagePath)
	require.NoError(t, err)
	assert.Equal(t, "QmImage", result.Hash)
	assert.Equal(t, "ipfs://QmImage", result.URL)

	// The pinned image is mirrored on disk under its content hash
	archived, err := os.ReadFile(filepath.Join(tm.metadataDir, "QmImage.jpg"))
	require.NoError(t, err)
	assert.Equal(t, content, archived)
}

func TestUploadImage_ArchiveFailureIsNotFatal(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	req := executorRequest()

	// Source file does not exist so the archive copy fails
	tm.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		Return(&pinata.Result{Hash: "QmImage", URL: "ipfs://QmImage"}, nil)

	result, err := tm.executor.UploadImage(context.Background(), req, "/nonexistent/42.jpg")
	require.NoError(t, err)
	assert.Equal(t, "QmImage", result.Hash)
}

func TestUploadImage_UploadFailure(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	req := executorRequest()
	tm.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUploadFailed)

	result, err := tm.executor.UploadImage(context.Background(), req, "/var/renders/42.jpg")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

// ====================================================================================
// FetchPriorMetadata
// ====================================================================================

func TestFetchPriorMetadata_NoHistory(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().
		GetLatestMetadataRecord(gomock.Any(), int64(7)).
		Return(nil, nil)

	doc, err := tm.executor.FetchPriorMetadata(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFetchPriorMetadata_FetchesLatestRecord(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().
		GetLatestMetadataRecord(gomock.Any(), int64(7)).
		Return(&schema.MetadataRecord{
			NFTID:       7,
			MetadataURL: "https://gateway.example/ipfs/QmOld",
		}, nil)
	tm.httpClient.EXPECT().
		GetBytes(gomock.Any(), "https://gateway.example/ipfs/QmOld").
		Return([]byte(`{"name":"Hero #42","image":"ipfs://QmOldImage"}`), nil)

	doc, err := tm.executor.FetchPriorMetadata(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Hero #42", doc.Name)
	assert.Equal(t, "ipfs://QmOldImage", doc.Image)
}

func TestFetchPriorMetadata_GatewayError(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().
		GetLatestMetadataRecord(gomock.Any(), int64(7)).
		Return(&schema.MetadataRecord{MetadataURL: "https://gateway.example/ipfs/QmOld"}, nil)
	tm.httpClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("gateway timeout"))

	doc, err := tm.executor.FetchPriorMetadata(context.Background(), 7)
	assert.Nil(t, doc)
	assert.ErrorContains(t, err, "failed to fetch prior metadata")
}

// ====================================================================================
// AssembleAndUploadMetadata
// ====================================================================================

func TestAssembleAndUploadMetadata_PinsCanonicalDocument(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	req := executorRequest()

	var pinned []byte
	tm.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upload pinata.Request) (*pinata.Result, error) {
			assert.Equal(t, pinata.KindJSON, upload.Kind)
			assert.Equal(t, req.TokenAddress, upload.TokenAddress)
			pinned = upload.Document
			return &pinata.Result{Hash: "QmMeta", URL: "ipfs://QmMeta"}, nil
		})

	result, err := tm.executor.AssembleAndUploadMetadata(context.Background(), req, nil, "ipfs://QmImage")
	require.NoError(t, err)
	assert.Equal(t, "QmMeta", result.Hash)

	doc, err := metadata.Parse(pinned)
	require.NoError(t, err)
	assert.Equal(t, req.TokenName, doc.Name)
	assert.Equal(t, "ipfs://QmImage", doc.Image)

	// Archive copy is byte-identical to the pinned document
	archived, err := os.ReadFile(filepath.Join(tm.metadataDir, "QmMeta.json"))
	require.NoError(t, err)
	assert.Equal(t, pinned, archived)
}

func TestAssembleAndUploadMetadata_UploadFailure(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUploadFailed)

	result, err := tm.executor.AssembleAndUploadMetadata(context.Background(), executorRequest(), nil, "ipfs://QmImage")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

// ====================================================================================
// UpdateChainMetadata / PersistPipelineResult / RecordPipelineFailure
// ====================================================================================

func TestUpdateChainMetadata_Delegates(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.updater.EXPECT().
		UpdateMetadataURL(gomock.Any(), "addr", "ipfs://QmMeta").
		Return("0xtxhash", nil)

	txHash, err := tm.executor.UpdateChainMetadata(context.Background(), "addr", "ipfs://QmMeta")
	require.NoError(t, err)
	assert.Equal(t, "0xtxhash", txHash)
}

func TestPersistPipelineResult_AppendsRecord(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	req := executorRequest()
	tm.store.EXPECT().
		AppendMetadataRecord(gomock.Any(), &schema.MetadataRecord{
			NFTID:       req.NFTID,
			Stage:       domain.StageCustomized,
			MetadataURL: "ipfs://QmMeta",
			ImageURL:    "ipfs://QmImage",
		}).
		Return(nil)

	err := tm.executor.PersistPipelineResult(context.Background(), req, "ipfs://QmMeta", "ipfs://QmImage")
	assert.NoError(t, err)
}

func TestRecordPipelineFailure_AppendsErrorRecord(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().
		AppendErrorRecord(gomock.Any(), "addr", "rendering", "compositor crashed").
		Return(nil)

	err := tm.executor.RecordPipelineFailure(context.Background(), "addr", "rendering", "compositor crashed")
	assert.NoError(t, err)
}
