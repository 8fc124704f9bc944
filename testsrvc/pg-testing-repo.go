package testsrvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgTestingRepo struct {
	pool *pgxpool.Pool
}

func NewPgTestingRepo(pool *pgxpool.Pool) TestingRepo {
	return &pgTestingRepo{pool: pool}
}

func (r *pgTestingRepo) Get(ctx context.Context, id uuid.UUID) (*Testing, error) {
	query := `
		SELECT id, title, content, type, correct_percent, vacancy_id, created_at, updated_at
		FROM testings
		WHERE id = $1
	`
	var t Testing
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Content, &t.Type, &t.CorrectPercent,
		&t.VacancyID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query testing: %w", err)
	}
	return &t, nil
}

func (r *pgTestingRepo) ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]Testing, error) {
	query := `
		SELECT id, title, content, type, correct_percent, vacancy_id, created_at, updated_at
		FROM testings
		WHERE vacancy_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, vacancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query testings: %w", err)
	}
	defer rows.Close()

	var testings []Testing
	for rows.Next() {
		var t Testing
		err := rows.Scan(
			&t.ID, &t.Title, &t.Content, &t.Type, &t.CorrectPercent,
			&t.VacancyID, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan testing: %w", err)
		}
		testings = append(testings, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating testings: %w", err)
	}
	return testings, nil
}

func (r *pgTestingRepo) Create(ctx context.Context, t Testing) error {
	query := `
		INSERT INTO testings (
			id, title, content, type, correct_percent, vacancy_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Title, t.Content, t.Type, t.CorrectPercent,
		t.VacancyID, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert testing: %w", err)
	}
	return nil
}

func (r *pgTestingRepo) Update(ctx context.Context, t Testing) error {
	query := `
		UPDATE testings
		SET title = $2, content = $3, correct_percent = $4, updated_at = $5
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Title, t.Content, t.CorrectPercent, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update testing: %w", err)
	}
	return nil
}

func (r *pgTestingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM testings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testing: %w", err)
	}
	return nil
}
