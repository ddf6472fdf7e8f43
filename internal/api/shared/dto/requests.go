package dto

import (
	"errors"
	"fmt"

	"github.com/mythicforge/hero-forge/internal/domain"
)

// RevealRequest opens a token's tome slot
type RevealRequest struct {
	TokenAddress string `json:"tokenAddress" binding:"required"`
	Tome         string `json:"tome" binding:"required"`
	MintName     string `json:"mintName" binding:"required"`
}

// Validate checks the reveal request fields
func (r *RevealRequest) Validate() error {
	if !domain.Tome(r.Tome).Valid() {
		return fmt.Errorf("unknown tome %q", r.Tome)
	}
	return nil
}

// CustomizeRequest spends a token's budgets on skills and cosmetic traits
type CustomizeRequest struct {
	TokenAddress   string                `json:"tokenAddress" binding:"required"`
	Skills         domain.Skills         `json:"skills"`
	CosmeticTraits domain.CosmeticTraits `json:"cosmeticTraits"`
}

// Validate checks structural fields only; budget validation happens against
// the token row and is the executor's job
func (r *CustomizeRequest) Validate() error {
	if r.TokenAddress == "" {
		return errors.New("tokenAddress is required")
	}
	return nil
}

// UpdateCharacterRequest replaces a character's selections (admin)
type UpdateCharacterRequest struct {
	Skills         domain.Skills         `json:"skills"`
	CosmeticTraits domain.CosmeticTraits `json:"cosmeticTraits"`
}

// RerenderRequest re-runs the customization pipeline for a token (admin)
type RerenderRequest struct {
	TokenAddress string `json:"tokenAddress" binding:"required"`
}

// IPFSFileType discriminates the admin upload body
type IPFSFileType string

const (
	IPFSFileTypeFile IPFSFileType = "file"
	IPFSFileTypeJSON IPFSFileType = "json"
)

// IPFSUploadRequest is the JSON variant of the admin upload endpoint. The
// multipart variant carries the file itself and a fileType form field.
type IPFSUploadRequest struct {
	FileType IPFSFileType `json:"fileType" binding:"required"`
	// Document is the raw JSON document to pin when FileType is "json"
	Document map[string]interface{} `json:"document"`
	// Label names the pin in the Pinata dashboard
	Label string `json:"label"`
}

// Validate checks the JSON upload variant
func (r *IPFSUploadRequest) Validate() error {
	if r.FileType != IPFSFileTypeJSON {
		return fmt.Errorf("fileType must be %q for JSON bodies", IPFSFileTypeJSON)
	}
	if len(r.Document) == 0 {
		return errors.New("document is required")
	}
	return nil
}

// MetadataURLRequest repoints a token's on-chain metadata URI directly (admin)
type MetadataURLRequest struct {
	TokenAddress string `json:"tokenAddress" binding:"required"`
	MetadataURL  string `json:"metadataUrl" binding:"required"`
}
