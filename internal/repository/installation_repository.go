package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldops/installation-service/internal/domain"
)

// InstallationRepository encapsulates installation persistence. All reads and
// writes are scoped to the owning user.
type InstallationRepository interface {
	Create(ctx context.Context, installation *domain.Installation) error
	Update(ctx context.Context, installation *domain.Installation) error
	GetByOwner(ctx context.Context, id int64, userID string) (*domain.Installation, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.Installation, error)
	DeleteByOwner(ctx context.Context, id int64, userID string) error
}

type installationRepository struct {
	pool *pgxpool.Pool
}

// NewInstallationRepository instantiates repository.
func NewInstallationRepository(pool *pgxpool.Pool) InstallationRepository {
	return &installationRepository{pool: pool}
}

func (r *installationRepository) Create(ctx context.Context, installation *domain.Installation) error {
	const query = `
        INSERT INTO installations (user_id, customer_name, address, appointment_date, status_id, date_created, date_modified)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id`

	now := time.Now()
	if installation.DateCreated.IsZero() {
		installation.DateCreated = now
	}
	installation.DateModified = now

	return r.pool.QueryRow(ctx, query,
		installation.UserID,
		installation.CustomerName,
		installation.Address,
		installation.AppointmentDate,
		installation.StatusID,
		installation.DateCreated,
		installation.DateModified,
	).Scan(&installation.ID)
}

func (r *installationRepository) Update(ctx context.Context, installation *domain.Installation) error {
	const query = `
        UPDATE installations SET customer_name=$1, address=$2, appointment_date=$3, status_id=$4, date_modified=$5
        WHERE id=$6 AND user_id=$7`

	installation.DateModified = time.Now()
	cmd, err := r.pool.Exec(ctx, query,
		installation.CustomerName,
		installation.Address,
		installation.AppointmentDate,
		installation.StatusID,
		installation.DateModified,
		installation.ID,
		installation.UserID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *installationRepository) GetByOwner(ctx context.Context, id int64, userID string) (*domain.Installation, error) {
	const query = `
        SELECT id, user_id, customer_name, address, appointment_date, status_id, date_created, date_modified
        FROM installations WHERE id=$1 AND user_id=$2`

	var installation domain.Installation
	if err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&installation.ID,
		&installation.UserID,
		&installation.CustomerName,
		&installation.Address,
		&installation.AppointmentDate,
		&installation.StatusID,
		&installation.DateCreated,
		&installation.DateModified,
	); err != nil {
		return nil, err
	}
	return &installation, nil
}

func (r *installationRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Installation, error) {
	const query = `
        SELECT id, user_id, customer_name, address, appointment_date, status_id, date_created, date_modified
        FROM installations WHERE user_id=$1
        ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Installation
	for rows.Next() {
		var installation domain.Installation
		if err := rows.Scan(
			&installation.ID,
			&installation.UserID,
			&installation.CustomerName,
			&installation.Address,
			&installation.AppointmentDate,
			&installation.StatusID,
			&installation.DateCreated,
			&installation.DateModified,
		); err != nil {
			return nil, err
		}
		result = append(result, installation)
	}
	return result, rows.Err()
}

func (r *installationRepository) DeleteByOwner(ctx context.Context, id int64, userID string) error {
	const query = `DELETE FROM installations WHERE id=$1 AND user_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
