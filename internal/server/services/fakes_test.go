package services

import (
	"context"
	"database/sql"

	"github.com/avolkov/dogshelter/internal/common"
	"github.com/avolkov/dogshelter/internal/dbx"
	"github.com/avolkov/dogshelter/internal/logging"
	"github.com/avolkov/dogshelter/internal/server/models"
	"github.com/avolkov/dogshelter/internal/server/repositories/dogs"
	"github.com/avolkov/dogshelter/internal/server/repositories/users"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

// fakeUserRepo keeps users in a map keyed by email.
type fakeUserRepo struct {
	byEmail map[string]*models.User
	nextID  int64
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	user.ID = r.nextID
	r.nextID++
	user.Disabled = true
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []*models.User
	for _, user := range r.byEmail {
		result = append(result, user)
	}
	return result, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id int64, params users.UpdateParams) (*models.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = params.Name
	user.LastName = params.LastName
	user.Disabled = params.Disabled
	return user, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	delete(r.byEmail, user.Email)
	return nil
}

// fakeDogRepo keeps dogs in a map keyed by name.
type fakeDogRepo struct {
	byName  map[string]*models.Dog
	nextID  int64
	err     error
	deleted []string
}

func newFakeDogRepo() *fakeDogRepo {
	return &fakeDogRepo{byName: make(map[string]*models.Dog), nextID: 1}
}

func (r *fakeDogRepo) Create(_ context.Context, dog *models.Dog) (*models.Dog, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.byName[dog.Name]; ok {
		return nil, common.ErrorAlreadyExists
	}
	dog.ID = r.nextID
	r.nextID++
	r.byName[dog.Name] = dog
	return dog, nil
}

func (r *fakeDogRepo) GetByName(_ context.Context, name string) (*models.Dog, error) {
	if r.err != nil {
		return nil, r.err
	}
	dog, ok := r.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return dog, nil
}

func (r *fakeDogRepo) List(_ context.Context) ([]*models.Dog, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []*models.Dog
	for _, dog := range r.byName {
		result = append(result, dog)
	}
	return result, nil
}

func (r *fakeDogRepo) ListAdopted(ctx context.Context) ([]*models.Dog, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var result []*models.Dog
	for _, dog := range all {
		if dog.IsAdopted {
			result = append(result, dog)
		}
	}
	return result, nil
}

func (r *fakeDogRepo) UpdateAdoption(ctx context.Context, name string, isAdopted bool) (*models.Dog, error) {
	dog, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	dog.IsAdopted = isAdopted
	return dog, nil
}

func (r *fakeDogRepo) DeleteByName(_ context.Context, name string) error {
	if _, ok := r.byName[name]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byName, name)
	r.deleted = append(r.deleted, name)
	return nil
}

func (r *fakeDogRepo) DeleteByUser(_ context.Context, userID int64) error {
	if r.err != nil {
		return r.err
	}
	for name, dog := range r.byName {
		if dog.UserID == userID {
			delete(r.byName, name)
			r.deleted = append(r.deleted, name)
		}
	}
	return nil
}

// fakeRepoManager hands out the in-memory repositories regardless of the DB
// handle.
type fakeRepoManager struct {
	users *fakeUserRepo
	dogs  *fakeDogRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{users: newFakeUserRepo(), dogs: newFakeDogRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.users }
func (m *fakeRepoManager) Dogs(dbx.DBTX) dogs.Repository               { return m.dogs }

type fakeImages struct {
	url string
	err error
}

func (f *fakeImages) RandomPicture(context.Context) (string, error) {
	return f.url, f.err
}

type fakeScheduler struct {
	scheduled []string
	err       error
}

func (f *fakeScheduler) ScheduleStages(_ context.Context, name string) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, name)
	return nil
}
