package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mythicforge/hero-forge/internal/domain"
)

// MetadataRecord represents the metadata table - an append-only log of
// successful pipeline runs per token. Rows are never mutated.
type MetadataRecord struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// NFTID references the owning token row
	NFTID int64 `gorm:"column:nft_id;not null;index"`
	// Stage is the lifecycle stage that produced this record
	Stage domain.Stage `gorm:"column:stage;not null;type:text"`
	// MetadataURL is the content address of the metadata document
	MetadataURL string `gorm:"column:metadata_url;not null;type:text"`
	// ImageURL is the content address of the artwork
	ImageURL string `gorm:"column:image_url;not null;type:text"`
	// Document is an inline copy of the pinned metadata document where the
	// writer had it in hand. Pipeline runs archive theirs on disk instead,
	// so this column may be null.
	Document datatypes.JSON `gorm:"column:document;type:jsonb"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the MetadataRecord model
func (MetadataRecord) TableName() string {
	return "metadata"
}
