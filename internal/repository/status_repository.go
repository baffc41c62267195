package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldops/installation-service/internal/domain"
)

// ErrProtected is returned when a delete is refused because dependent rows
// still reference the target.
var ErrProtected = errors.New("row is referenced by dependent rows")

const pgForeignKeyViolation = "23503"

// StatusRepository encapsulates status persistence. All reads and writes are
// scoped to the owning user.
type StatusRepository interface {
	Create(ctx context.Context, status *domain.Status) error
	Update(ctx context.Context, status *domain.Status) error
	GetByOwner(ctx context.Context, id int64, userID string) (*domain.Status, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.Status, error)
	DeleteByOwner(ctx context.Context, id int64, userID string) error
}

type statusRepository struct {
	pool *pgxpool.Pool
}

// NewStatusRepository instantiates repository.
func NewStatusRepository(pool *pgxpool.Pool) StatusRepository {
	return &statusRepository{pool: pool}
}

func (r *statusRepository) Create(ctx context.Context, status *domain.Status) error {
	const query = `
        INSERT INTO statuses (status, notes, date, user_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	status.Date = time.Now()
	return r.pool.QueryRow(ctx, query,
		status.Label,
		status.Notes,
		status.Date,
		status.UserID,
	).Scan(&status.ID)
}

func (r *statusRepository) Update(ctx context.Context, status *domain.Status) error {
	const query = `
        UPDATE statuses SET status=$1, notes=$2, date=$3
        WHERE id=$4 AND user_id=$5`

	status.Date = time.Now()
	cmd, err := r.pool.Exec(ctx, query,
		status.Label,
		status.Notes,
		status.Date,
		status.ID,
		status.UserID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *statusRepository) GetByOwner(ctx context.Context, id int64, userID string) (*domain.Status, error) {
	const query = `
        SELECT id, status, notes, date, user_id
        FROM statuses WHERE id=$1 AND user_id=$2`

	var status domain.Status
	if err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&status.ID,
		&status.Label,
		&status.Notes,
		&status.Date,
		&status.UserID,
	); err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *statusRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Status, error) {
	const query = `
        SELECT id, status, notes, date, user_id
        FROM statuses WHERE user_id=$1
        ORDER BY status DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Status
	for rows.Next() {
		var status domain.Status
		if err := rows.Scan(
			&status.ID,
			&status.Label,
			&status.Notes,
			&status.Date,
			&status.UserID,
		); err != nil {
			return nil, err
		}
		result = append(result, status)
	}
	return result, rows.Err()
}

func (r *statusRepository) DeleteByOwner(ctx context.Context, id int64, userID string) error {
	const query = `DELETE FROM statuses WHERE id=$1 AND user_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrProtected
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
