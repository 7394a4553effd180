package store

import (
	"errors"

	"shiptrack/internal/authz"
	"shiptrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore verifies login attempts against the credentials table.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Authenticate looks the username up and compares the bcrypt hash. Both miss
// kinds collapse into ErrInvalidCredentials.
func (s *UserStore) Authenticate(username, password string) (authz.Principal, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authz.Principal{}, ErrInvalidCredentials
		}
		return authz.Principal{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return authz.Principal{}, ErrInvalidCredentials
	}

	return authz.Principal{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// Get fetches one user by id, for rebuilding the principal from a session.
func (s *UserStore) Get(id uint) (authz.Principal, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authz.Principal{}, ErrNotFound
		}
		return authz.Principal{}, err
	}
	return authz.Principal{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
