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

func TestListUsersEmpty(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No users found", messageOf(t, w))
}

func TestUserCRUD(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users",
		gin.H{"email": "u@example.com", "username": "u", "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		User models.User `json:"user"`
	}
	decodeBody(t, w, &created)
	id := created.User.ID
	require.NotZero(t, id)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.User
	decodeBody(t, w, &fetched)
	require.NotNil(t, fetched.Username)
	assert.Equal(t, "u", *fetched.Username)
	// The API serializes the stored password; it is part of the contract.
	assert.Equal(t, "pw", fetched.Password)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/users/%d", id),
		gin.H{"email": "u2@example.com", "username": "u2", "password": "pw2"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &fetched)
	require.NotNil(t, fetched.Username)
	assert.Equal(t, "u2", *fetched.Username)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", messageOf(t, w))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users",
		gin.H{"email": "one@example.com", "username": "same", "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users",
		gin.H{"email": "two@example.com", "username": "same", "password": "pw"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", messageOf(t, w))
}

func TestCreateUserMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"email": "x@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email, username and password are required", messageOf(t, w))
}

func makeUser(t *testing.T, r *gin.Engine, email, username string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/users",
		gin.H{"email": email, "username": username, "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		User models.User `json:"user"`
	}
	decodeBody(t, w, &created)
	return created.User.ID
}

func TestFollowAndListEdges(t *testing.T) {
	r, _ := newTestRouter(t)

	alice := makeUser(t, r, "alice@example.com", "alice")
	bob := makeUser(t, r, "bob@example.com", "bob")

	// bob follows alice
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", alice), gin.H{"userId": bob})
	require.Equal(t, http.StatusCreated, w.Code)

	// alice's followers contain bob; bob's following contains alice
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d/followers", alice), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var followers []models.User
	decodeBody(t, w, &followers)
	require.Len(t, followers, 1)
	assert.Equal(t, bob, followers[0].ID)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d/following", bob), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var following []models.User
	decodeBody(t, w, &following)
	require.Len(t, following, 1)
	assert.Equal(t, alice, following[0].ID)

	// The reverse directions stay empty.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d/followers", bob), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No followers found", messageOf(t, w))
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d/following", alice), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No following found", messageOf(t, w))
}

func TestFollowDuplicateEdge(t *testing.T) {
	r, _ := newTestRouter(t)

	alice := makeUser(t, r, "alice@example.com", "alice")
	bob := makeUser(t, r, "bob@example.com", "bob")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", alice), gin.H{"userId": bob})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", alice), gin.H{"userId": bob})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Already following this user", messageOf(t, w))
}

func TestFollowUnknownTarget(t *testing.T) {
	r, _ := newTestRouter(t)
	bob := makeUser(t, r, "bob@example.com", "bob")

	w := doJSON(t, r, http.MethodPost, "/api/users/999/follow", gin.H{"userId": bob})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", messageOf(t, w))
}

func TestUnfollow(t *testing.T) {
	r, _ := newTestRouter(t)

	alice := makeUser(t, r, "alice@example.com", "alice")
	bob := makeUser(t, r, "bob@example.com", "bob")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", alice), gin.H{"userId": bob})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d/unfollow", alice), gin.H{"userId": bob})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d/unfollow", alice), gin.H{"userId": bob})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not following this user", messageOf(t, w))
}
