package schema

import "time"

// ErrorRecord represents the errors table - an append-only observability
// log. The pipeline writes it but never reads it.
type ErrorRecord struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenAddress is the token the failed operation concerned
	TokenAddress string `gorm:"column:token_address;type:text;index"`
	// Operation names the originating function or pipeline stage
	Operation string `gorm:"column:function;not null;type:text"`
	// Message is the error text, truncated to 250 characters
	Message string `gorm:"column:message;not null;type:varchar(250)"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the ErrorRecord model
func (ErrorRecord) TableName() string {
	return "errors"
}
