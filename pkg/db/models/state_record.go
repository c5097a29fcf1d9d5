package models

import "time"

// StateRecord is one persisted client-state document (cart lines, wishlist ids)
// keyed by its scoped record name.
type StateRecord struct {
	Key       string    `gorm:"column:key;type:varchar(255);primaryKey"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (StateRecord) TableName() string {
	return "state_records"
}
