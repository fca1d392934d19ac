package models

// Comment belongs to a post. Author is free text rather than a user
// reference; the clients send a display name here.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PostID  uint   `gorm:"index;not null" json:"post_id"`
	Author  string `gorm:"size:255;not null" json:"author"`
	Content string `gorm:"type:text;not null" json:"content"`
}
