package store

import (
	"context"

	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetTokenByAddress retrieves a revealed token by its on-chain address.
	// Returns nil without error when the token does not exist.
	GetTokenByAddress(ctx context.Context, tokenAddress string) (*schema.Token, error)
	// GetTokenByID retrieves a revealed token by its internal ID
	GetTokenByID(ctx context.Context, id int64) (*schema.Token, error)
	// CreateToken persists a newly revealed token. Returns
	// domain.ErrTokenAlreadyRevealed when the address or (tome, slot) pair
	// already exists.
	CreateToken(ctx context.Context, token *schema.Token) error
	// ListTokens retrieves all revealed tokens
	ListTokens(ctx context.Context) ([]*schema.Token, error)

	// CountTomeSlots returns the total number of slots in a tome
	CountTomeSlots(ctx context.Context, tome domain.Tome) (int64, error)
	// GetTomeSlot retrieves one slot of a tome by its slot number
	GetTomeSlot(ctx context.Context, tome domain.Tome, tokenNumber int64) (*schema.TomeSlot, error)
	// ListRevealedTokenNumbers returns the slot numbers already taken in a tome
	ListRevealedTokenNumbers(ctx context.Context, tome domain.Tome) ([]int64, error)

	// GetCharacterByNFTID retrieves the character owned by a token.
	// Returns nil without error when no character exists.
	GetCharacterByNFTID(ctx context.Context, nftID int64) (*schema.Character, error)
	// CreateCharacter persists a first customization. Returns
	// domain.ErrTokenAlreadyCustomized when the token already has a character.
	CreateCharacter(ctx context.Context, character *schema.Character) error
	// UpdateCharacter saves edits made through the admin path
	UpdateCharacter(ctx context.Context, character *schema.Character) error
	// DeleteCharacter removes a character by its owning token ID
	DeleteCharacter(ctx context.Context, nftID int64) error
	// ListCharacters retrieves characters ordered by creation time
	ListCharacters(ctx context.Context, limit, offset int) ([]*schema.Character, error)

	// GetLatestTokenName returns the newest name row for a token.
	// Returns nil without error when the token has no name history.
	GetLatestTokenName(ctx context.Context, nftID int64) (*schema.TokenName, error)

	// AppendMetadataRecord appends one row to the metadata log
	AppendMetadataRecord(ctx context.Context, record *schema.MetadataRecord) error
	// GetLatestMetadataRecord returns the newest metadata row for a token.
	// Returns nil without error when the token has no metadata history.
	GetLatestMetadataRecord(ctx context.Context, nftID int64) (*schema.MetadataRecord, error)

	// AppendErrorRecord appends one row to the error log, truncating the
	// message to the column width
	AppendErrorRecord(ctx context.Context, tokenAddress, operation, message string) error
}
