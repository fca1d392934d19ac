package models

import "time"

// Post is a piece of user content. AuthorID references users.id; the
// reference is checked by the controllers at write time, deleting a user
// does not cascade here.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthorID  uint      `gorm:"index;not null" json:"author_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
