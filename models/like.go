package models

// Like records one user liking one target. Exactly one of PostID,
// CommentID and ReplyID is set per row. The composite unique indexes back
// the at-most-one-like-per-(user,target) invariant at the store, so two
// racing create requests cannot both insert.
type Like struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_like_post;uniqueIndex:idx_like_comment;uniqueIndex:idx_like_reply" json:"user_id"`
	PostID    *uint `gorm:"uniqueIndex:idx_like_post" json:"post_id,omitempty"`
	CommentID *uint `gorm:"uniqueIndex:idx_like_comment" json:"comment_id,omitempty"`
	ReplyID   *uint `gorm:"uniqueIndex:idx_like_reply" json:"reply_id,omitempty"`
}
