package auth

import (
	"github.com/anl2026/anl-api/internal/user"
	"gorm.io/gorm"
)

// AuthRepository defines methods to interact with account data.
type AuthRepository interface {
	CreateUser(u *user.User) error
	GetUserByID(id uint) (*user.User, error)
	GetUserByEmail(email string) (*user.User, error)
	GetUserByUsername(username string) (*user.User, error)
}

// GormAuthRepository implements AuthRepository using GORM.
type GormAuthRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new GormAuthRepository.
func NewAuthRepository(db *gorm.DB) *GormAuthRepository {
	return &GormAuthRepository{db: db}
}

func (r *GormAuthRepository) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *GormAuthRepository) GetUserByID(id uint) (*user.User, error) {
	var account user.User
	if err := r.db.First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *GormAuthRepository) GetUserByEmail(email string) (*user.User, error) {
	var account user.User
	if err := r.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *GormAuthRepository) GetUserByUsername(username string) (*user.User, error) {
	var account user.User
	if err := r.db.Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
