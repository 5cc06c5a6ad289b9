package users

import (
	"context"

	"github.com/avolkov/dogshelter/internal/server/models"
)

// UpdateParams are the profile fields a user update may change. Email and
// the password hash are immutable through this path.
type UpdateParams struct {
	Name     string
	LastName string
	Disabled bool
}

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
