package dogs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avolkov/dogshelter/internal/common"
	"github.com/avolkov/dogshelter/internal/dbx"
	"github.com/avolkov/dogshelter/internal/server/models"
)

const dogColumns = "id, user_id, name, picture, is_adopted, create_date"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanDog(row *sql.Row) (*models.Dog, error) {
	dog := &models.Dog{}
	err := row.Scan(&dog.ID, &dog.UserID, &dog.Name, &dog.Picture, &dog.IsAdopted, &dog.CreateDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return dog, nil
}

func (r *PostgresRepository) Create(ctx context.Context, dog *models.Dog) (*models.Dog, error) {

	query :=
		`INSERT INTO dogs (user_id, name, picture, is_adopted)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, create_date
		 `

	err := r.db.QueryRowContext(ctx, query,
		dog.UserID, dog.Name, dog.Picture, dog.IsAdopted).Scan(&dog.ID, &dog.CreateDate)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return dog, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*models.Dog, error) {
	query := `SELECT ` + dogColumns + ` FROM dogs WHERE name = $1`
	return scanDog(r.db.QueryRowContext(ctx, query, name))
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Dog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Dog
	for rows.Next() {
		dog := &models.Dog{}
		err := rows.Scan(&dog.ID, &dog.UserID, &dog.Name, &dog.Picture, &dog.IsAdopted, &dog.CreateDate)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, dog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Dog, error) {
	return r.list(ctx, `SELECT `+dogColumns+` FROM dogs ORDER BY id`)
}

func (r *PostgresRepository) ListAdopted(ctx context.Context) ([]*models.Dog, error) {
	return r.list(ctx, `SELECT `+dogColumns+` FROM dogs WHERE is_adopted = $1 ORDER BY id`, true)
}

func (r *PostgresRepository) UpdateAdoption(ctx context.Context, name string, isAdopted bool) (*models.Dog, error) {

	query :=
		`UPDATE dogs SET is_adopted = $2
		 WHERE name = $1
		 RETURNING ` + dogColumns

	return scanDog(r.db.QueryRowContext(ctx, query, name, isAdopted))
}

func (r *PostgresRepository) DeleteByName(ctx context.Context, name string) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// DeleteByUser removes all dogs owned by the user. Zero rows is not an
// error; owners without dogs are fine.
func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
