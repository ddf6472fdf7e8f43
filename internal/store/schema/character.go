package schema

import (
	"time"
)

// Character represents the characters table - the skill and trait selections
// a token's owner spent their budgets on. The unique index on nft_id
// guarantees at most one character per token regardless of request
// interleaving.
type Character struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// NFTID references the owning token row
	NFTID int64 `gorm:"column:nft_id;not null;uniqueIndex"`

	// Skills
	Constitution int `gorm:"column:constitution;not null"`
	Strength     int `gorm:"column:strength;not null"`
	Dexterity    int `gorm:"column:dexterity;not null"`
	Intelligence int `gorm:"column:intelligence;not null"`
	Wisdom       int `gorm:"column:wisdom;not null"`
	Charisma     int `gorm:"column:charisma;not null"`

	// Cosmetic traits. Race is rendered but not costed.
	Race         string `gorm:"column:race;type:text"`
	Sex          string `gorm:"column:sex;type:text"`
	FaceStyle    string `gorm:"column:face_style;type:text"`
	SkinTone     string `gorm:"column:skin_tone;type:text"`
	EyeDetail    string `gorm:"column:eye_detail;type:text"`
	Eyes         string `gorm:"column:eyes;type:text"`
	FacialHair   string `gorm:"column:facial_hair;type:text"`
	Glasses      string `gorm:"column:glasses;type:text"`
	HairStyle    string `gorm:"column:hair_style;type:text"`
	HairColor    string `gorm:"column:hair_color;type:text"`
	Necklace     string `gorm:"column:necklace;type:text"`
	Earring      string `gorm:"column:earring;type:text"`
	NosePiercing string `gorm:"column:nose_piercing;type:text"`
	Scar         string `gorm:"column:scar;type:text"`
	Tattoo       string `gorm:"column:tattoo;type:text"`
	Background   string `gorm:"column:background;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Token Token `gorm:"foreignKey:NFTID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Character model
func (Character) TableName() string {
	return "characters"
}
