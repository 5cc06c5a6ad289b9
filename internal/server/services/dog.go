package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avolkov/dogshelter/internal/common"
	"github.com/avolkov/dogshelter/internal/logging"
	"github.com/avolkov/dogshelter/internal/server/models"
	"github.com/avolkov/dogshelter/internal/server/repositories/repomanager"
)

// ImageFetcher supplies a random picture URL for a new dog.
type ImageFetcher interface {
	RandomPicture(ctx context.Context) (string, error)
}

// StageScheduler enqueues the delayed adoption-stage tasks for a dog.
type StageScheduler interface {
	ScheduleStages(ctx context.Context, name string) error
}

// DogService implements dog CRUD plus the creation orchestration: duplicate
// check, picture fetch, row insert, stage scheduling.
type DogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	images      ImageFetcher
	scheduler   StageScheduler
	logger      logging.Logger
}

func NewDogService(db *sql.DB, m repomanager.RepositoryManager, images ImageFetcher, scheduler StageScheduler, logger logging.Logger) *DogService {
	return &DogService{
		db:          db,
		repomanager: m,
		images:      images,
		scheduler:   scheduler,
		logger:      logger.With("module", "dog_service"),
	}
}

// Create registers a new dog owned by owner and schedules its adoption
// stages.
//
// The operation is two-phase: the row insert and the stage scheduling are
// not covered by one transaction (the queue broker is a separate system),
// so a scheduling failure triggers a compensating delete of the fresh row
// and surfaces common.ErrorTaskDelivery. The dog is never left in the store
// with its stage progression silently missing.
func (s *DogService) Create(ctx context.Context, name string, isAdopted bool, owner *models.User) (*models.Dog, error) {
	repo := s.repomanager.Dogs(s.db)

	if _, err := repo.GetByName(ctx, name); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	picture, err := s.images.RandomPicture(ctx)
	if err != nil {
		return nil, err
	}

	dog, err := repo.Create(ctx, &models.Dog{
		UserID:    owner.ID,
		Name:      name,
		Picture:   picture,
		IsAdopted: isAdopted,
	})
	if err != nil {
		return nil, err
	}

	if err := s.scheduler.ScheduleStages(ctx, name); err != nil {
		s.logger.Error(ctx, "stage scheduling failed, rolling back dog", "name", name, "error", err.Error())
		if delErr := repo.DeleteByName(ctx, name); delErr != nil {
			s.logger.Error(ctx, "compensating delete failed", "name", name, "error", delErr.Error())
		}
		return nil, err
	}

	return dog, nil
}

func (s *DogService) List(ctx context.Context) ([]*models.Dog, error) {
	return s.repomanager.Dogs(s.db).List(ctx)
}

func (s *DogService) ListAdopted(ctx context.Context) ([]*models.Dog, error) {
	return s.repomanager.Dogs(s.db).ListAdopted(ctx)
}

func (s *DogService) GetByName(ctx context.Context, name string) (*models.Dog, error) {
	return s.repomanager.Dogs(s.db).GetByName(ctx, name)
}

func (s *DogService) UpdateAdoption(ctx context.Context, name string, isAdopted bool) (*models.Dog, error) {
	return s.repomanager.Dogs(s.db).UpdateAdoption(ctx, name, isAdopted)
}

func (s *DogService) Delete(ctx context.Context, name string) error {
	return s.repomanager.Dogs(s.db).DeleteByName(ctx, name)
}
