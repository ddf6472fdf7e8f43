package schema

import "time"

// NameStatus represents the moderation state of a display name
type NameStatus string

const (
	// NameStatusPending means the name awaits moderation
	NameStatusPending NameStatus = "pending"
	// NameStatusApproved means the name passed moderation
	NameStatusApproved NameStatus = "approved"
	// NameStatusRejected means the name failed moderation
	NameStatusRejected NameStatus = "rejected"
)

// TokenName represents the token_names table - the per-token history of
// display names. Only the most recent row is authoritative.
type TokenName struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// NFTID references the owning token row
	NFTID int64 `gorm:"column:nft_id;not null;index"`
	// TokenName is the proposed display name
	TokenName string `gorm:"column:token_name;not null;type:text"`
	// TokenNameStatus is the moderation state of this entry
	TokenNameStatus NameStatus `gorm:"column:token_name_status;not null;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();index"`
}

// TableName specifies the table name for the TokenName model
func (TokenName) TableName() string {
	return "token_names"
}
