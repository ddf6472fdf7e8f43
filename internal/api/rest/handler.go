package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mythicforge/hero-forge/internal/api/shared/dto"
	"github.com/mythicforge/hero-forge/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// RevealToken opens a token's tome slot
	// POST /api/reveal
	RevealToken(c *gin.Context)

	// CustomizeToken spends a token's budgets and starts the pipeline
	// POST /api/customize
	CustomizeToken(c *gin.Context)

	// ListCharacters retrieves customized characters
	// GET /api/nfts?limit=<limit>&offset=<offset>
	ListCharacters(c *gin.Context)

	// GetCharacter retrieves one character by its owning token ID
	// GET /api/nfts/:nftId
	GetCharacter(c *gin.Context)

	// UpdateCharacter replaces a character's selections
	// PUT /api/nfts/:nftId
	UpdateCharacter(c *gin.Context)

	// DeleteCharacter removes a character
	// DELETE /api/nfts/:nftId
	DeleteCharacter(c *gin.Context)

	// RerenderToken re-runs the customization pipeline for a token
	// POST /api/admin/rerender
	RerenderToken(c *gin.Context)

	// UploadIPFS pins a multipart file or a JSON document
	// POST /api/admin/ipfs
	UploadIPFS(c *gin.Context)

	// UpdateMetadataURL repoints a token's on-chain metadata URI
	// POST /api/admin/metadata-url
	UpdateMetadataURL(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// RevealToken opens a token's tome slot
func (h *handler) RevealToken(c *gin.Context) {
	var req dto.RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.RevealToken(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err, "Failed to reveal token")
		return
	}

	c.JSON(http.StatusOK, response)
}

// CustomizeToken spends a token's budgets and starts the pipeline
func (h *handler) CustomizeToken(c *gin.Context) {
	var req dto.CustomizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.CustomizeToken(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err, "Failed to customize token")
		return
	}

	// The pipeline runs on, the caller only gets the hand-off acknowledged
	c.JSON(http.StatusAccepted, response)
}

// ListCharacters retrieves customized characters
func (h *handler) ListCharacters(c *gin.Context) {
	limit, err := positiveQueryInt(c, "limit", 50)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	offset, err := positiveQueryInt(c, "offset", 0)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.ListCharacters(c.Request.Context(), limit, offset)
	if err != nil {
		respondDomainError(c, err, "Failed to list characters")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetCharacter retrieves one character by its owning token ID
func (h *handler) GetCharacter(c *gin.Context) {
	nftID, ok := nftIDParam(c)
	if !ok {
		return
	}

	response, err := h.executor.GetCharacter(c.Request.Context(), nftID)
	if err != nil {
		respondDomainError(c, err, "Failed to get character")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateCharacter replaces a character's selections
func (h *handler) UpdateCharacter(c *gin.Context) {
	nftID, ok := nftIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.UpdateCharacter(c.Request.Context(), nftID, req)
	if err != nil {
		respondDomainError(c, err, "Failed to update character")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteCharacter removes a character
func (h *handler) DeleteCharacter(c *gin.Context) {
	nftID, ok := nftIDParam(c)
	if !ok {
		return
	}

	if err := h.executor.DeleteCharacter(c.Request.Context(), nftID); err != nil {
		respondDomainError(c, err, "Failed to delete character")
		return
	}

	c.Status(http.StatusNoContent)
}

// RerenderToken re-runs the customization pipeline for a token
func (h *handler) RerenderToken(c *gin.Context) {
	var req dto.RerenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.RerenderToken(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err, "Failed to rerender token")
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// UploadIPFS pins a multipart file or a JSON document
func (h *handler) UploadIPFS(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		h.uploadIPFSFile(c)
		return
	}
	h.uploadIPFSJSON(c)
}

func (h *handler) uploadIPFSFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("Missing upload file: %v", err))
		return
	}

	// Spool the upload to disk so the pin client reads it like any other
	// file
	tempPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		respondDomainError(c, err, "Failed to receive upload")
		return
	}
	defer os.Remove(tempPath)

	response, err := h.executor.UploadIPFSFile(c.Request.Context(), tempPath, c.PostForm("label"))
	if err != nil {
		respondDomainError(c, err, "Failed to upload file")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) uploadIPFSJSON(c *gin.Context) {
	var req dto.IPFSUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	document, err := json.Marshal(req.Document)
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid document: %v", err))
		return
	}

	response, err := h.executor.UploadIPFSJSON(c.Request.Context(), document, req.Label)
	if err != nil {
		respondDomainError(c, err, "Failed to upload document")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateMetadataURL repoints a token's on-chain metadata URI
func (h *handler) UpdateMetadataURL(c *gin.Context) {
	var req dto.MetadataURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.UpdateMetadataURL(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err, "Failed to update metadata URL")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "hero-forge-api",
	})
}

// nftIDParam parses the :nftId path parameter, writing the error response
// itself when the value is not a number
func nftIDParam(c *gin.Context) (int64, bool) {
	nftID, err := strconv.ParseInt(c.Param("nftId"), 10, 64)
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid nftId: %v", err))
		return 0, false
	}
	return nftID, true
}

// positiveQueryInt parses a non-negative integer query parameter with a
// default
func positiveQueryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return value, nil
}
