// Package httpapi exposes the REST surface of the dog-adoption backend:
// token issuing, dog and user CRUD, stage-status lookups, and file uploads.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/dogshelter/internal/logging"
	"github.com/avolkov/dogshelter/internal/server/clients"
	"github.com/avolkov/dogshelter/internal/server/models"
	"github.com/avolkov/dogshelter/internal/server/repositories/users"
	"github.com/avolkov/dogshelter/internal/status"
)

// UserProvider is the slice of the user service the handlers need.
type UserProvider interface {
	SignUp(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ResolveToken(ctx context.Context, token string) (*models.User, error)
	RequireActive(user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, params users.UpdateParams) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// DogProvider is the slice of the dog service the handlers need.
type DogProvider interface {
	Create(ctx context.Context, name string, isAdopted bool, owner *models.User) (*models.Dog, error)
	List(ctx context.Context) ([]*models.Dog, error)
	ListAdopted(ctx context.Context) ([]*models.Dog, error)
	GetByName(ctx context.Context, name string) (*models.Dog, error)
	UpdateAdoption(ctx context.Context, name string, isAdopted bool) (*models.Dog, error)
	Delete(ctx context.Context, name string) error
}

type Server struct {
	address  string
	logger   logging.Logger
	users    UserProvider
	dogs     DogProvider
	status   status.Store
	uploader clients.Uploader
}

func NewServer(address string, logger logging.Logger, users UserProvider, dogs DogProvider, st status.Store, uploader clients.Uploader) *Server {
	return &Server{
		address:  address,
		logger:   logger.With("module", "http_server"),
		users:    users,
		dogs:     dogs,
		status:   st,
		uploader: uploader,
	}
}

// Router builds the chi route tree. Mutating endpoints sit behind the
// bearer-token middleware; reads and signup stay open.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Post("/token", s.handleToken)

		r.Get("/dogs", s.handleListDogs)
		r.Get("/dogs/is_adopted/", s.handleListAdoptedDogs)
		r.Get("/dogs/{name}", s.handleGetDog)
		r.Get("/status/{name}", s.handleGetStatus)

		r.Get("/users", s.handleListUsers)
		r.Get("/users/{id}", s.handleGetUser)
		r.Post("/signup", s.handleSignUp)

		r.Post("/uploadfile", s.handleUploadFile)

		r.Group(func(r chi.Router) {
			r.Use(s.requireUser)
			r.Post("/dogs/{name}", s.handleCreateDog)
			r.Put("/dogs/{name}", s.handleUpdateDog)
			r.Delete("/dogs/{name}", s.handleDeleteDog)
			r.Put("/users/{id}", s.handleUpdateUser)
			r.Delete("/users/{id}", s.handleDeleteUser)
		})
	})

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
