package repository

import (
	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByFirebaseUID(db *gorm.DB, firebaseUID string) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	List(db *gorm.DB, filter entity.UserFilter) ([]entity.User, int64, error)
	CountByRole(db *gorm.DB) (map[string]int64, error)
}
