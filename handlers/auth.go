package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"reelkit-api/models"
	"reelkit-api/repository"
	"reelkit-api/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthHandler struct {
	users  *repository.UsersRepository
	secret []byte
}

// NewAuthHandler builds the login stub. When no secret is configured a random
// per-process one is generated; nothing in the system ever verifies the
// tokens, so key stability across restarts does not matter.
func NewAuthHandler(users *repository.UsersRepository, secret string) *AuthHandler {
	key := []byte(secret)
	if len(key) == 0 {
		raw := make([]byte, 32)
		_, _ = rand.Read(raw)
		key = []byte(hex.EncodeToString(raw))
	}
	return &AuthHandler{users: users, secret: key}
}

// Login finds or creates the user by email and mints an opaque bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Name     string `json:"name"`
		Provider string `json:"provider"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	if req.Provider == "" {
		req.Provider = "email"
	}

	existing, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}

	var userID string
	if existing != nil {
		userID, _ = existing["_id"].(string)
	} else {
		userID, err = h.users.CreateUser(c.Request.Context(), models.User{
			Email:    req.Email,
			Name:     req.Name,
			Provider: req.Provider,
			IsActive: true,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
			return
		}
	}

	// jti makes every minted token unique, even for back-to-back logins
	// within the same second.
	expiresAt := time.Now().Add(24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"jti":    uuid.NewString(),
		"exp":    expiresAt.Unix(),
	})
	tokenString, err := token.SignedString(h.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, "failed to generate token"))
		return
	}

	if _, err := h.users.CreateSession(c.Request.Context(), models.AuthSession{
		UserID:    userID,
		Token:     tokenString,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}); err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString, "user_id": userID})
}
