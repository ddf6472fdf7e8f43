package dto

import (
	"time"

	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/store/schema"
)

// RevealResponse summarizes the slot a reveal drew
type RevealResponse struct {
	TokenAddress   string      `json:"tokenAddress"`
	Tome           domain.Tome `json:"tome"`
	TokenNumber    int64       `json:"tokenNumber"`
	StatPoints     int         `json:"statPoints"`
	CosmeticPoints int         `json:"cosmeticPoints"`
	StatTier       domain.Tier `json:"statTier"`
	CosmeticTier   domain.Tier `json:"cosmeticTier"`
	HeroTier       domain.Tier `json:"heroTier"`
	MetadataURL    string      `json:"metadataUrl"`
}

// CustomizeResponse acknowledges an accepted customization
type CustomizeResponse struct {
	TokenAddress string `json:"tokenAddress"`
	WorkflowID   string `json:"workflowId"`
}

// RerenderResponse acknowledges an accepted admin rerender
type RerenderResponse struct {
	TokenAddress string `json:"tokenAddress"`
	WorkflowID   string `json:"workflowId"`
}

// CharacterResponse is one character with its owning token's identity
type CharacterResponse struct {
	NFTID          int64                 `json:"nftId"`
	TokenAddress   string                `json:"tokenAddress,omitempty"`
	Skills         domain.Skills         `json:"skills"`
	CosmeticTraits domain.CosmeticTraits `json:"cosmeticTraits"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// CharacterListResponse is the paginated character listing
type CharacterListResponse struct {
	Characters []CharacterResponse `json:"characters"`
}

// IPFSUploadResponse reports a pinned upload
type IPFSUploadResponse struct {
	Hash string `json:"hash"`
	URL  string `json:"url"`
}

// MetadataURLResponse reports a direct on-chain pointer update
type MetadataURLResponse struct {
	TokenAddress string `json:"tokenAddress"`
	MetadataURL  string `json:"metadataUrl"`
	TxHash       string `json:"txHash"`
}

// NewCharacterResponse maps a character row onto the response shape
func NewCharacterResponse(character *schema.Character) CharacterResponse {
	return CharacterResponse{
		NFTID:          character.NFTID,
		TokenAddress:   character.Token.TokenAddress,
		Skills:         character.Skills(),
		CosmeticTraits: character.Traits(),
		CreatedAt:      character.CreatedAt,
		UpdatedAt:      character.UpdatedAt,
	}
}
