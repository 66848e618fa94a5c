package auth

import (
	"errors"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Gate resolves auth keys to registered users. Stateless: every check is a
// single indexed lookup, no sessions, no expiry.
type Gate struct {
	db *gorm.DB
}

func NewGate(db *gorm.DB) *Gate {
	return &Gate{db: db}
}

// Authorize reports whether the key belongs to a registered user.
func (g *Gate) Authorize(key string) (bool, error) {
	if key == "" {
		return false, nil
	}
	var user models.User
	err := g.db.Where("auth_key = ?", key).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Register creates a user with a hashed password and a fresh auth key.
func (g *Gate) Register(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperr.Validationf("Username and password are required")
	}

	var existing models.User
	if err := g.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, apperr.Conflictf("User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		AuthKey:      uuid.NewString(),
	}
	if err := g.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials and returns the user's stored auth key.
func (g *Gate) Login(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperr.Validationf("Username and password are required")
	}

	var user models.User
	if err := g.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrAuth
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperr.ErrAuth
	}
	return &user, nil
}
