package models

// Notification is a per-user message with a read flag.
type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Type    string `gorm:"size:64;not null" json:"type"`
	Message string `gorm:"type:text;not null" json:"message"`
	Read    bool   `gorm:"column:read;default:false" json:"read"`
}
