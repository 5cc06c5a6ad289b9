package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkov/dogshelter/internal/dbx"
	"github.com/avolkov/dogshelter/internal/server/repositories/dogs"
	"github.com/avolkov/dogshelter/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DB handle, which may
// be either the pool or a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Dogs(db dbx.DBTX) dogs.Repository
}
