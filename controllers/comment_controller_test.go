package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vibely/vibely/models"
)

func createComment(t *testing.T, db *gorm.DB, postID uint, author, content string) models.Comment {
	t.Helper()
	comment := models.Comment{PostID: postID, Author: author, Content: content}
	require.NoError(t, db.Create(&comment).Error)
	return comment
}

func TestCreateComment(t *testing.T) {
	r, db := newTestRouter(t)
	userID, cookies := signupAndLogin(t, r, "c@example.com")
	post := createPost(t, db, userID, "commentable")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/comments/post/%d", post.ID),
		gin.H{"content": "nice", "author": "carol"}, withCookies(cookies))
	require.Equal(t, http.StatusCreated, w.Code)
	var comment models.Comment
	decodeBody(t, w, &comment)
	assert.Equal(t, "carol", comment.Author)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/comments/post/%d", post.ID), nil, withCookies(cookies))
	require.Equal(t, http.StatusOK, w.Code)
	var comments []models.Comment
	decodeBody(t, w, &comments)
	require.Len(t, comments, 1)
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	r, _ := newTestRouter(t)
	_, cookies := signupAndLogin(t, r, "c@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/comments/post/999",
		gin.H{"content": "nice", "author": "carol"}, withCookies(cookies))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", messageOf(t, w))
}

func TestCreateCommentMissingFields(t *testing.T) {
	r, db := newTestRouter(t)
	userID, cookies := signupAndLogin(t, r, "c@example.com")
	post := createPost(t, db, userID, "commentable")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/comments/post/%d", post.ID),
		gin.H{"content": "nice"}, withCookies(cookies))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Content and author are required", messageOf(t, w))
}

func TestDeleteComment(t *testing.T) {
	r, db := newTestRouter(t)
	userID, cookies := signupAndLogin(t, r, "c@example.com")
	post := createPost(t, db, userID, "commentable")
	comment := createComment(t, db, post.ID, "carol", "bye")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), nil, withCookies(cookies))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Comment deleted successfully", messageOf(t, w))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), nil, withCookies(cookies))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Comment not found", messageOf(t, w))
}

func TestCommentLikes(t *testing.T) {
	r, db := newTestRouter(t)
	userID, cookies := signupAndLogin(t, r, "c@example.com")
	post := createPost(t, db, userID, "commentable")
	comment := createComment(t, db, post.ID, "carol", "likeable")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/comments/%d/likes", comment.ID),
		gin.H{"user_id": userID}, withCookies(cookies))
	require.Equal(t, http.StatusCreated, w.Code)
	var like models.Like
	decodeBody(t, w, &like)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/comments/%d/likes", comment.ID),
		gin.H{"user_id": userID}, withCookies(cookies))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already liked this comment", messageOf(t, w))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/comments/%d/likes", comment.ID), nil, withCookies(cookies))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/comments/%d/likes/%d", comment.ID, like.ID), nil, withCookies(cookies))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Like deleted successfully", messageOf(t, w))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/comments/%d/likes", comment.ID), nil, withCookies(cookies))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No likes found for this comment", messageOf(t, w))
}
