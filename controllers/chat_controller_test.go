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

func TestChatLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chats", gin.H{"user1_id": 1, "user2_id": 2})
	require.Equal(t, http.StatusCreated, w.Code)
	var chat models.Chat
	decodeBody(t, w, &chat)
	require.NotZero(t, chat.ID)

	// Both participants see the chat when listing by user.
	for _, uid := range []uint{1, 2} {
		w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/chats/user/%d", uid), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var chats []models.Chat
		decodeBody(t, w, &chats)
		require.Len(t, chats, 1)
	}

	w = doJSON(t, r, http.MethodGet, "/api/chats/user/3", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No chats found for this user", messageOf(t, w))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/chats/%d", chat.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/chats/%d", chat.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chat deleted successfully", messageOf(t, w))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/chats/%d", chat.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Chat not found", messageOf(t, w))
}

func TestCreateChatMissingUsers(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chats", gin.H{"user1_id": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Both user IDs are required", messageOf(t, w))
}

func TestMessageLifecycle(t *testing.T) {
	r, db := newTestRouter(t)

	chat := models.Chat{User1ID: 1, User2ID: 2}
	require.NoError(t, db.Create(&chat).Error)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/chats/%d/messages", chat.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No messages found in this chat", messageOf(t, w))

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/chats/%d/messages", chat.ID),
		gin.H{"user_id": 1, "content": "hey"})
	require.Equal(t, http.StatusCreated, w.Code)
	var message models.Message
	decodeBody(t, w, &message)
	assert.Equal(t, chat.ID, message.ChatID)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/chats/%d/messages", chat.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var messages []models.Message
	decodeBody(t, w, &messages)
	require.Len(t, messages, 1)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/chats/messages/%d", message.ID),
		gin.H{"content": "hey there"})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &message)
	assert.Equal(t, "hey there", message.Content)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/chats/messages/%d", message.ID), gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Content is required", messageOf(t, w))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/chats/messages/%d", message.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Message deleted successfully", messageOf(t, w))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/chats/messages/%d", message.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Message not found", messageOf(t, w))
}

func TestCreateMessageInMissingChat(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chats/999/messages", gin.H{"user_id": 1, "content": "void"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Chat not found", messageOf(t, w))
}
