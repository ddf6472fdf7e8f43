package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/store/schema"
)

// errorMessageLimit matches the width of the errors.message column
const errorMessageLimit = 250

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance. The *gorm.DB must be
// opened with TranslateError enabled so unique-constraint violations
// surface as gorm.ErrDuplicatedKey.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// GetTokenByAddress retrieves a revealed token by its on-chain address
func (s *pgStore) GetTokenByAddress(ctx context.Context, tokenAddress string) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).Where("token_address = ?", tokenAddress).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return &token, nil
}

// GetTokenByID retrieves a revealed token by its internal ID
func (s *pgStore) GetTokenByID(ctx context.Context, id int64) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return &token, nil
}

// CreateToken persists a newly revealed token
func (s *pgStore) CreateToken(ctx context.Context, token *schema.Token) error {
	err := s.db.WithContext(ctx).Create(token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrTokenAlreadyRevealed
		}
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

// ListTokens retrieves all revealed tokens
func (s *pgStore) ListTokens(ctx context.Context) ([]*schema.Token, error) {
	var tokens []*schema.Token
	err := s.db.WithContext(ctx).Order("id").Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, nil
}

// CountTomeSlots returns the total number of slots in a tome
func (s *pgStore) CountTomeSlots(ctx context.Context, tome domain.Tome) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.TomeSlot{}).
		Where("tome = ?", string(tome)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tome slots: %w", err)
	}
	return count, nil
}

// GetTomeSlot retrieves one slot of a tome by its slot number
func (s *pgStore) GetTomeSlot(ctx context.Context, tome domain.Tome, tokenNumber int64) (*schema.TomeSlot, error) {
	var slot schema.TomeSlot
	err := s.db.WithContext(ctx).
		Where("tome = ? AND token_number = ?", string(tome), tokenNumber).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tome slot: %w", err)
	}
	return &slot, nil
}

// ListRevealedTokenNumbers returns the slot numbers already taken in a tome
func (s *pgStore) ListRevealedTokenNumbers(ctx context.Context, tome domain.Tome) ([]int64, error) {
	var numbers []int64
	err := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("tome = ?", string(tome)).
		Pluck("token_number", &numbers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list revealed token numbers: %w", err)
	}
	return numbers, nil
}

// GetCharacterByNFTID retrieves the character owned by a token
func (s *pgStore) GetCharacterByNFTID(ctx context.Context, nftID int64) (*schema.Character, error) {
	var character schema.Character
	err := s.db.WithContext(ctx).Where("nft_id = ?", nftID).First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return &character, nil
}

// CreateCharacter persists a first customization
func (s *pgStore) CreateCharacter(ctx context.Context, character *schema.Character) error {
	err := s.db.WithContext(ctx).Create(character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrTokenAlreadyCustomized
		}
		return fmt.Errorf("failed to create character: %w", err)
	}
	return nil
}

// UpdateCharacter saves edits made through the admin path
func (s *pgStore) UpdateCharacter(ctx context.Context, character *schema.Character) error {
	err := s.db.WithContext(ctx).Save(character).Error
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	return nil
}

// DeleteCharacter removes a character by its owning token ID
func (s *pgStore) DeleteCharacter(ctx context.Context, nftID int64) error {
	result := s.db.WithContext(ctx).Where("nft_id = ?", nftID).Delete(&schema.Character{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete character: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// ListCharacters retrieves characters ordered by creation time
func (s *pgStore) ListCharacters(ctx context.Context, limit, offset int) ([]*schema.Character, error) {
	var characters []*schema.Character
	query := s.db.WithContext(ctx).Order("created_at")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&characters).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}

// GetLatestTokenName returns the newest name row for a token
func (s *pgStore) GetLatestTokenName(ctx context.Context, nftID int64) (*schema.TokenName, error) {
	var name schema.TokenName
	err := s.db.WithContext(ctx).
		Where("nft_id = ?", nftID).
		Order("updated_at DESC").
		First(&name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token name: %w", err)
	}
	return &name, nil
}

// AppendMetadataRecord appends one row to the metadata log
func (s *pgStore) AppendMetadataRecord(ctx context.Context, record *schema.MetadataRecord) error {
	err := s.db.WithContext(ctx).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to append metadata record: %w", err)
	}
	return nil
}

// GetLatestMetadataRecord returns the newest metadata row for a token
func (s *pgStore) GetLatestMetadataRecord(ctx context.Context, nftID int64) (*schema.MetadataRecord, error) {
	var record schema.MetadataRecord
	err := s.db.WithContext(ctx).
		Where("nft_id = ?", nftID).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get metadata record: %w", err)
	}
	return &record, nil
}

// AppendErrorRecord appends one row to the error log
func (s *pgStore) AppendErrorRecord(ctx context.Context, tokenAddress, operation, message string) error {
	// The column width is in characters, so truncate by rune
	if runes := []rune(message); len(runes) > errorMessageLimit {
		message = string(runes[:errorMessageLimit])
	}

	record := schema.ErrorRecord{
		TokenAddress: tokenAddress,
		Operation:    operation,
		Message:      message,
	}

	err := s.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to append error record: %w", err)
	}
	return nil
}
