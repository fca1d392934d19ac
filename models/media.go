package models

// Media is an uploaded file recorded against a post. FilePath is the
// location on disk under the uploads directory.
type Media struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PostID   uint   `gorm:"index;not null" json:"post_id"`
	FilePath string `gorm:"size:1024;not null" json:"file_path"`
	FileType string `gorm:"size:128" json:"file_type"`
}

// PostAttachment links an existing media row to a post. Attachment
// creation verifies the post but, deliberately, not the media row.
type PostAttachment struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	PostID  uint `gorm:"index;not null" json:"post_id"`
	MediaID uint `gorm:"not null" json:"media_id"`
}
