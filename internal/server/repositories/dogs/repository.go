package dogs

import (
	"context"

	"github.com/avolkov/dogshelter/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, dog *models.Dog) (*models.Dog, error)
	GetByName(ctx context.Context, name string) (*models.Dog, error)
	List(ctx context.Context) ([]*models.Dog, error)
	ListAdopted(ctx context.Context) ([]*models.Dog, error)
	UpdateAdoption(ctx context.Context, name string, isAdopted bool) (*models.Dog, error)
	DeleteByName(ctx context.Context, name string) error
	DeleteByUser(ctx context.Context, userID int64) error
}
