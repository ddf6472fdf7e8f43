package pinata_test

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythicforge/hero-forge/internal/adapter"
	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/mocks"
	"github.com/mythicforge/hero-forge/internal/providers/pinata"
)

// Minimal JPEG header so mimetype detection sees a real image
var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46, 0x00}

func testClient(t *testing.T) (pinata.Client, *mocks.MockHTTPClient) {
	ctrl := gomock.NewController(t)
	mockHTTP := mocks.NewMockHTTPClient(ctrl)

	c := pinata.NewClient(pinata.Config{
		APIURL:       "https://api.pinata.cloud",
		APIKey:       "key",
		SecretAPIKey: "secret",
		Gateway:      "https://gateway.pinata.cloud",
	}, mockHTTP, adapter.NewFileSystem())

	return c, mockHTTP
}

func TestUploadImage(t *testing.T) {
	c, mockHTTP := testClient(t)

	imagePath := filepath.Join(t.TempDir(), "42.jpg")
	require.NoError(t, os.WriteFile(imagePath, jpegHeader, 0o600))

	mockHTTP.EXPECT().
		PostBytes(gomock.Any(), "https://api.pinata.cloud/pinning/pinFileToIPFS", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers map[string]string, body io.Reader) ([]byte, error) {
			assert.Equal(t, "key", headers["pinata_api_key"])
			assert.Equal(t, "secret", headers["pinata_secret_api_key"])

			mediaType, params, err := mime.ParseMediaType(headers["Content-Type"])
			require.NoError(t, err)
			require.Equal(t, "multipart/form-data", mediaType)

			reader := multipart.NewReader(body, params["boundary"])
			part, err := reader.NextPart()
			require.NoError(t, err)
			assert.Equal(t, "file", part.FormName())
			assert.Equal(t, "42.jpg", part.FileName())
			assert.Equal(t, "image/jpeg", part.Header.Get("Content-Type"))

			return []byte(`{"IpfsHash":"QmImageHash","PinSize":11}`), nil
		})

	result, err := c.Upload(context.Background(), pinata.Request{
		Kind:         pinata.KindImage,
		FilePath:     imagePath,
		TokenAddress: "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
		Stage:        domain.StageCustomized,
	})
	require.NoError(t, err)
	assert.Equal(t, "QmImageHash", result.Hash)
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmImageHash", result.URL)
}

func TestUploadJSON(t *testing.T) {
	c, mockHTTP := testClient(t)

	mockHTTP.EXPECT().
		PostBytes(gomock.Any(), "https://api.pinata.cloud/pinning/pinJSONToIPFS", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers map[string]string, body io.Reader) ([]byte, error) {
			assert.Equal(t, "application/json", headers["Content-Type"])

			payload, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Contains(t, string(payload), `"name":"Thorn"`)
			assert.Contains(t, string(payload), "pinataMetadata")

			return []byte(`{"IpfsHash":"QmMetaHash"}`), nil
		})

	result, err := c.Upload(context.Background(), pinata.Request{
		Kind:         pinata.KindJSON,
		Document:     []byte(`{"name":"Thorn"}`),
		TokenAddress: "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
		Stage:        domain.StageCustomized,
	})
	require.NoError(t, err)
	assert.Equal(t, "QmMetaHash", result.Hash)
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmMetaHash", result.URL)
}

func TestUploadAPIFailure(t *testing.T) {
	c, mockHTTP := testClient(t)

	mockHTTP.EXPECT().
		PostBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	_, err := c.Upload(context.Background(), pinata.Request{
		Kind:     pinata.KindJSON,
		Document: []byte(`{}`),
	})
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestUploadMissingFile(t *testing.T) {
	c, _ := testClient(t)

	_, err := c.Upload(context.Background(), pinata.Request{
		Kind:     pinata.KindImage,
		FilePath: filepath.Join(t.TempDir(), "missing.jpg"),
	})
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.True(t, strings.Contains(err.Error(), "missing.jpg"))
}

func TestUploadEmptyHash(t *testing.T) {
	c, mockHTTP := testClient(t)

	mockHTTP.EXPECT().
		PostBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{}`), nil)

	_, err := c.Upload(context.Background(), pinata.Request{
		Kind:     pinata.KindJSON,
		Document: []byte(`{}`),
	})
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}
