package schema

import (
	"time"

	"github.com/mythicforge/hero-forge/internal/domain"
)

// Token represents the tokens table - one row per revealed token.
// The unique index on (tome, token_number) is the arbiter of slot
// allocation: two concurrent reveals proposing the same slot cannot both
// commit.
type Token struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenAddress is the on-chain identity of the token
	TokenAddress string `gorm:"column:token_address;not null;uniqueIndex;type:text"`
	// Tome names the pool the token was revealed from
	Tome domain.Tome `gorm:"column:tome;not null;type:text;uniqueIndex:idx_tokens_tome_number,priority:1"`
	// TokenNumber is the sequential slot number within the tome
	TokenNumber int64 `gorm:"column:token_number;not null;uniqueIndex:idx_tokens_tome_number,priority:2"`
	// StatPoints is the stat budget fixed at reveal time
	StatPoints int `gorm:"column:stat_points;not null"`
	// CosmeticPoints is the cosmetic budget fixed at reveal time
	CosmeticPoints int `gorm:"column:cosmetic_points;not null"`
	// StatTier is derived from StatPoints at reveal time, never recomputed
	StatTier domain.Tier `gorm:"column:stat_tier;not null;type:text"`
	// CosmeticTier is derived from CosmeticPoints at reveal time
	CosmeticTier domain.Tier `gorm:"column:cosmetic_tier;not null;type:text"`
	// HeroTier comes from the tome slot itself
	HeroTier domain.Tier `gorm:"column:hero_tier;not null;type:text"`
	// MintName is the display name assigned at mint time
	MintName string `gorm:"column:mint_name;type:text"`
	// CreatedAt is the reveal timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	Character       *Character       `gorm:"foreignKey:NFTID;constraint:OnDelete:CASCADE"`
	TokenNames      []TokenName      `gorm:"foreignKey:NFTID;constraint:OnDelete:CASCADE"`
	MetadataRecords []MetadataRecord `gorm:"foreignKey:NFTID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
