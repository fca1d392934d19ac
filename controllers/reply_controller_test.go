package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibely/vibely/models"
)

func TestReplyLifecycle(t *testing.T) {
	r, db := newTestRouter(t)
	userID, cookies := signupAndLogin(t, r, "r@example.com")
	post := createPost(t, db, userID, "threaded")
	comment := createComment(t, db, post.ID, "carol", "root")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/replies/comment/%d", comment.ID),
		gin.H{"content": "me too", "author": "dave"}, withCookies(cookies))
	require.Equal(t, http.StatusCreated, w.Code)
	var reply models.Reply
	decodeBody(t, w, &reply)
	assert.Equal(t, comment.ID, reply.CommentID)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/replies/comment/%d", comment.ID), nil, withCookies(cookies))
	require.Equal(t, http.StatusOK, w.Code)
	var replies []models.Reply
	decodeBody(t, w, &replies)
	require.Len(t, replies, 1)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/replies/%d", reply.ID), nil, withCookies(cookies))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Reply deleted successfully", messageOf(t, w))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/replies/comment/%d", comment.ID), nil, withCookies(cookies))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No replies found for this comment", messageOf(t, w))
}

func TestReplyToMissingComment(t *testing.T) {
	r, _ := newTestRouter(t)
	_, cookies := signupAndLogin(t, r, "r@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/replies/comment/999",
		gin.H{"content": "lost", "author": "dave"}, withCookies(cookies))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Comment not found", messageOf(t, w))
}

func TestReplyLikes(t *testing.T) {
	r, db := newTestRouter(t)
	userID, cookies := signupAndLogin(t, r, "r@example.com")
	post := createPost(t, db, userID, "threaded")
	comment := createComment(t, db, post.ID, "carol", "root")
	reply := models.Reply{CommentID: comment.ID, Author: "dave", Content: "me too"}
	require.NoError(t, db.Create(&reply).Error)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/replies/%d/likes", reply.ID),
		gin.H{"user_id": userID}, withCookies(cookies))
	require.Equal(t, http.StatusCreated, w.Code)
	var like models.Like
	decodeBody(t, w, &like)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/replies/%d/likes", reply.ID),
		gin.H{"user_id": userID}, withCookies(cookies))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already liked this reply", messageOf(t, w))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/replies/%d/likes/%d", reply.ID, like.ID), nil, withCookies(cookies))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Like deleted successfully", messageOf(t, w))
}
