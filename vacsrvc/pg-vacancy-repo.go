package vacsrvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgVacancyRepo struct {
	pool *pgxpool.Pool
}

func NewPgVacancyRepo(pool *pgxpool.Pool) VacancyRepo {
	return &pgVacancyRepo{pool: pool}
}

// allowed order-by columns; anything else falls back to created_at
var vacancyOrderCols = map[string]string{
	"title":      "title",
	"created_at": "created_at",
}

func (r *pgVacancyRepo) Get(ctx context.Context, id uuid.UUID) (*Vacancy, error) {
	query := `
		SELECT id, title, content, poster, type, state, test_time, created_at, updated_at
		FROM vacancies
		WHERE id = $1
	`
	var v Vacancy
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Title, &v.Content, &v.Poster, &v.Type, &v.State,
		&v.TestTime, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query vacancy: %w", err)
	}
	return &v, nil
}

func (r *pgVacancyRepo) List(ctx context.Context, limit int, offset int, orderBy string) ([]Vacancy, error) {
	col, ok := vacancyOrderCols[orderBy]
	if !ok {
		col = "created_at"
	}
	query := fmt.Sprintf(`
		SELECT id, title, content, poster, type, state, test_time, created_at, updated_at
		FROM vacancies
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, col)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacancies: %w", err)
	}
	defer rows.Close()

	var vacancies []Vacancy
	for rows.Next() {
		var v Vacancy
		err := rows.Scan(
			&v.ID, &v.Title, &v.Content, &v.Poster, &v.Type, &v.State,
			&v.TestTime, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacancy: %w", err)
		}
		vacancies = append(vacancies, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vacancies: %w", err)
	}
	return vacancies, nil
}

func (r *pgVacancyRepo) Create(ctx context.Context, v Vacancy) error {
	query := `
		INSERT INTO vacancies (
			id, title, content, poster, type, state, test_time, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		v.ID, v.Title, v.Content, v.Poster, v.Type, v.State,
		v.TestTime, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert vacancy: %w", err)
	}
	return nil
}

func (r *pgVacancyRepo) Update(ctx context.Context, v Vacancy) error {
	query := `
		UPDATE vacancies
		SET title = $2, content = $3, poster = $4, type = $5, state = $6,
			test_time = $7, updated_at = $8
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		v.ID, v.Title, v.Content, v.Poster, v.Type, v.State,
		v.TestTime, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update vacancy: %w", err)
	}
	return nil
}

func (r *pgVacancyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM vacancies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vacancy: %w", err)
	}
	return nil
}

type pgVacancyFileRepo struct {
	pool *pgxpool.Pool
}

func NewPgVacancyFileRepo(pool *pgxpool.Pool) VacancyFileRepo {
	return &pgVacancyFileRepo{pool: pool}
}

func (r *pgVacancyFileRepo) Get(ctx context.Context, id uuid.UUID) (*VacancyFile, error) {
	query := `
		SELECT id, filename, content_type, vacancy_id, is_uploaded, created_at, updated_at
		FROM vacancy_files
		WHERE id = $1
	`
	var f VacancyFile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Filename, &f.ContentType, &f.VacancyID,
		&f.IsUploaded, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query vacancy file: %w", err)
	}
	return &f, nil
}

func (r *pgVacancyFileRepo) ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]VacancyFile, error) {
	query := `
		SELECT id, filename, content_type, vacancy_id, is_uploaded, created_at, updated_at
		FROM vacancy_files
		WHERE vacancy_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, vacancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacancy files: %w", err)
	}
	defer rows.Close()

	var files []VacancyFile
	for rows.Next() {
		var f VacancyFile
		err := rows.Scan(
			&f.ID, &f.Filename, &f.ContentType, &f.VacancyID,
			&f.IsUploaded, &f.CreatedAt, &f.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacancy file: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vacancy files: %w", err)
	}
	return files, nil
}

func (r *pgVacancyFileRepo) Create(ctx context.Context, f VacancyFile) error {
	query := `
		INSERT INTO vacancy_files (
			id, filename, content_type, vacancy_id, is_uploaded, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		f.ID, f.Filename, f.ContentType, f.VacancyID,
		f.IsUploaded, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert vacancy file: %w", err)
	}
	return nil
}

func (r *pgVacancyFileRepo) Update(ctx context.Context, f VacancyFile) error {
	query := `
		UPDATE vacancy_files
		SET filename = $2, content_type = $3, is_uploaded = $4, updated_at = $5
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		f.ID, f.Filename, f.ContentType, f.IsUploaded, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update vacancy file: %w", err)
	}
	return nil
}
