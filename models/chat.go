package models

// Chat is a two-party conversation.
type Chat struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	User1ID uint `gorm:"index;not null" json:"user1_id"`
	User2ID uint `gorm:"index;not null" json:"user2_id"`
}

// Message is a single chat message.
type Message struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	ChatID  uint   `gorm:"index;not null" json:"chat_id"`
	UserID  uint   `gorm:"not null" json:"user_id"`
	Content string `gorm:"type:text;not null" json:"content"`
}
