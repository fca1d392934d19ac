package models

// Reply belongs to a comment. Like Comment, author is free text.
type Reply struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CommentID uint   `gorm:"index;not null" json:"comment_id"`
	Author    string `gorm:"size:255;not null" json:"author"`
	Content   string `gorm:"type:text;not null" json:"content"`
}
