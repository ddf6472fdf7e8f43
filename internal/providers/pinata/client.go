// Package pinata pins render output and metadata documents to IPFS through
// the Pinata pinning API.
package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/mythicforge/hero-forge/internal/adapter"
	"github.com/mythicforge/hero-forge/internal/domain"
)

const (
	pinFileEndpoint = "/pinning/pinFileToIPFS"
	pinJSONEndpoint = "/pinning/pinJSONToIPFS"
)

// Kind selects which pinning endpoint an upload goes through
type Kind string

const (
	// KindImage pins a file from disk
	KindImage Kind = "image"
	// KindJSON pins a metadata document
	KindJSON Kind = "json"
)

// Config holds the Pinata API credentials and endpoints
type Config struct {
	APIURL       string
	APIKey       string
	SecretAPIKey string
	Gateway      string
}

// Request is one upload. FilePath is used for KindImage, Document for
// KindJSON. TokenAddress and Stage name the pin in Pinata's dashboard.
type Request struct {
	Kind         Kind
	FilePath     string
	Document     []byte
	TokenAddress string
	Stage        domain.Stage
}

// Result is the content address of a completed upload
type Result struct {
	Hash string
	URL  string
}

// Client pins content to IPFS
//
//go:generate mockgen -source=client.go -destination=../../mocks/pinata.go -package=mocks -mock_names=Client=MockPinataClient
type Client interface {
	// Upload pins one piece of content and returns its content address
	Upload(ctx context.Context, req Request) (*Result, error)
}

type client struct {
	cfg        Config
	httpClient adapter.HTTPClient
	fs         adapter.FileSystem
}

// NewClient creates a Pinata client
func NewClient(cfg Config, httpClient adapter.HTTPClient, fs adapter.FileSystem) Client {
	return &client{
		cfg:        cfg,
		httpClient: httpClient,
		fs:         fs,
	}
}

// pinResponse is the Pinata API's pin result
type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

func (c *client) Upload(ctx context.Context, req Request) (*Result, error) {
	var (
		respBody []byte
		err      error
	)

	switch req.Kind {
	case KindImage:
		respBody, err = c.pinFile(ctx, req)
	case KindJSON:
		respBody, err = c.pinJSON(ctx, req)
	default:
		return nil, fmt.Errorf("unknown upload kind %q", req.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUploadFailed, err)
	}

	var resp pinResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode pin response: %s", domain.ErrUploadFailed, err)
	}
	if resp.IpfsHash == "" {
		return nil, fmt.Errorf("%w: pin response carries no hash", domain.ErrUploadFailed)
	}

	return &Result{
		Hash: resp.IpfsHash,
		URL:  fmt.Sprintf("%s/ipfs/%s", c.cfg.Gateway, resp.IpfsHash),
	}, nil
}

func (c *client) pinFile(ctx context.Context, req Request) ([]byte, error) {
	content, err := c.fs.ReadFile(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload file: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(req.FilePath)))
	header.Set("Content-Type", mimetype.Detect(content).String())

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart section: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("failed to write multipart section: %w", err)
	}

	metadata, err := json.Marshal(map[string]string{"name": c.pinName(req)})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pin metadata: %w", err)
	}
	if err := writer.WriteField("pinataMetadata", string(metadata)); err != nil {
		return nil, fmt.Errorf("failed to write pin metadata: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	headers := c.authHeaders()
	headers["Content-Type"] = writer.FormDataContentType()

	return c.httpClient.PostBytes(ctx, c.cfg.APIURL+pinFileEndpoint, headers, &body)
}

func (c *client) pinJSON(ctx context.Context, req Request) ([]byte, error) {
	payload, err := json.Marshal(map[string]any{
		"pinataMetadata": map[string]string{"name": c.pinName(req)},
		"pinataContent":  json.RawMessage(req.Document),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pin payload: %w", err)
	}

	headers := c.authHeaders()
	headers["Content-Type"] = "application/json"

	return c.httpClient.PostBytes(ctx, c.cfg.APIURL+pinJSONEndpoint, headers, bytes.NewReader(payload))
}

func (c *client) authHeaders() map[string]string {
	return map[string]string{
		"pinata_api_key":        c.cfg.APIKey,
		"pinata_secret_api_key": c.cfg.SecretAPIKey,
	}
}

func (c *client) pinName(req Request) string {
	return fmt.Sprintf("%s-%s-%s", req.TokenAddress, req.Stage, req.Kind)
}
