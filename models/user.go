package models

import "time"

// User is a registered account. Email and username are each unique;
// username stays NULL for accounts created through signup, which never
// sets one, so the unique index only bites on real values.
// The password is stored and compared as plain text to keep the existing
// clients' login contract; rows are serialized as-is, password included.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex" json:"email"`
	Username  *string   `gorm:"size:64;uniqueIndex" json:"username"`
	Password  string    `gorm:"size:255" json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
