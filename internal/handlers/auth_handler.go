package handlers

import (
	"errors"
	"net/http"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	gate *auth.Gate
}

func NewAuthHandler(gate *auth.Gate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// Register issues the caller a fresh auth key. The key is shown exactly once,
// here; it is never returned by any other endpoint.
func (h *AuthHandler) Register(c *gin.Context) {
	user, err := h.gate.Register(c.Query("username"), c.Query("password"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "User registered successfully",
		"auth_key": user.AuthKey,
	})
}

// Login re-issues the stored auth key after a password check.
func (h *AuthHandler) Login(c *gin.Context) {
	user, err := h.gate.Login(c.Query("username"), c.Query("password"))
	if err != nil {
		if errors.Is(err, apperr.ErrAuth) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "User '" + user.Username + "' logged in successfully",
		"auth_key": user.AuthKey,
	})
}
