package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avolkov/dogshelter/internal/common"
	"github.com/avolkov/dogshelter/internal/logging"
	"github.com/avolkov/dogshelter/internal/server/models"
	"github.com/avolkov/dogshelter/internal/server/repositories/users"
	"github.com/avolkov/dogshelter/internal/status"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

// fakeUsers is a programmable UserProvider.
type fakeUsers struct {
	loginToken string
	loginErr   error
	signUpUser *models.User
	signUpErr  error
	byToken    map[string]*models.User
	list       []*models.User
	byID       map[int64]*models.User
	updateErr  error
	deleteErr  error
	deleted    []int64
}

func (f *fakeUsers) SignUp(_ context.Context, email, _ string) (*models.User, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	if f.signUpUser != nil {
		return f.signUpUser, nil
	}
	return &models.User{ID: 1, Email: email, Disabled: true}, nil
}

func (f *fakeUsers) Login(context.Context, string, string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeUsers) ResolveToken(_ context.Context, token string) (*models.User, error) {
	user, ok := f.byToken[token]
	if !ok {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}

func (f *fakeUsers) RequireActive(user *models.User) error {
	if user.Disabled {
		return common.ErrorInactiveUser
	}
	return nil
}

func (f *fakeUsers) List(context.Context) ([]*models.User, error) {
	return f.list, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func (f *fakeUsers) Update(_ context.Context, id int64, params users.UpdateParams) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	user, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	user.Name = params.Name
	user.LastName = params.LastName
	user.Disabled = params.Disabled
	return user, nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeDogs is a programmable DogProvider.
type fakeDogs struct {
	createDog *models.Dog
	createErr error
	created   []string
	owners    []*models.User
	list      []*models.Dog
	adopted   []*models.Dog
	byName    map[string]*models.Dog
	updateErr error
	deleteErr error
	deleted   []string
}

func (f *fakeDogs) Create(_ context.Context, name string, _ bool, owner *models.User) (*models.Dog, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, name)
	f.owners = append(f.owners, owner)
	if f.createDog != nil {
		return f.createDog, nil
	}
	return &models.Dog{ID: 1, Name: name, UserID: owner.ID}, nil
}

func (f *fakeDogs) List(context.Context) ([]*models.Dog, error)        { return f.list, nil }
func (f *fakeDogs) ListAdopted(context.Context) ([]*models.Dog, error) { return f.adopted, nil }

func (f *fakeDogs) GetByName(_ context.Context, name string) (*models.Dog, error) {
	dog, ok := f.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return dog, nil
}

func (f *fakeDogs) UpdateAdoption(_ context.Context, name string, isAdopted bool) (*models.Dog, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	dog, ok := f.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	dog.IsAdopted = isAdopted
	return dog, nil
}

func (f *fakeDogs) Delete(_ context.Context, name string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byName[name]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byName, name)
	f.deleted = append(f.deleted, name)
	return nil
}

type fakeUploader struct {
	response  json.RawMessage
	err       error
	filenames []string
}

func (f *fakeUploader) Upload(_ context.Context, filename, _ string, r io.Reader) (json.RawMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.filenames = append(f.filenames, filename)
	_, _ = io.Copy(io.Discard, r)
	return f.response, nil
}

type testEnv struct {
	users    *fakeUsers
	dogs     *fakeDogs
	status   *status.MemoryStore
	uploader *fakeUploader
	srv      *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users: &fakeUsers{
			byToken: make(map[string]*models.User),
			byID:    make(map[int64]*models.User),
		},
		dogs:     &fakeDogs{byName: make(map[string]*models.Dog)},
		status:   status.NewMemoryStore(),
		uploader: &fakeUploader{response: json.RawMessage(`{"ok":true}`)},
	}

	s := NewServer("", nopLogger{}, env.users, env.dogs, env.status, env.uploader)
	env.srv = httptest.NewServer(s.Router())
	t.Cleanup(env.srv.Close)

	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	if err != nil {
		t.Fatalf("NewRequest error: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return v
}
