package schema

import "github.com/mythicforge/hero-forge/internal/domain"

// TomeSlot represents the tome_slots table - the pre-generated pool of
// revealable slots. Seeded once per tome; read-only at runtime.
type TomeSlot struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Tome names the pool the slot belongs to
	Tome domain.Tome `gorm:"column:tome;not null;type:text;uniqueIndex:idx_tome_slots_tome_number,priority:1"`
	// TokenNumber is the 1-based slot number within the tome
	TokenNumber int64 `gorm:"column:token_number;not null;uniqueIndex:idx_tome_slots_tome_number,priority:2"`
	// StatPoints is the stat budget a token revealed into this slot receives
	StatPoints int `gorm:"column:stat_points;not null"`
	// CosmeticPoints is the cosmetic budget for this slot
	CosmeticPoints int `gorm:"column:cosmetic_points;not null"`
	// HeroTier is the pre-rolled hero rarity for this slot
	HeroTier domain.Tier `gorm:"column:hero_tier;not null;type:text"`
}

// TableName specifies the table name for the TomeSlot model
func (TomeSlot) TableName() string {
	return "tome_slots"
}
