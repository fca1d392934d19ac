package models

// Follow is a directed edge: FollowerID follows UserID. The composite
// unique index enforces at most one edge per ordered pair. Nothing stops
// a user following themselves.
type Follow struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_follow_pair" json:"user_id"`
	FollowerID uint `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
}

// TableName keeps the original schema's table name.
func (Follow) TableName() string {
	return "user_followers"
}
