package testsrvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgAttemptRepo struct {
	pool *pgxpool.Pool
}

func NewPgAttemptRepo(pool *pgxpool.Pool) AttemptRepo {
	return &pgAttemptRepo{pool: pool}
}

func (r *pgAttemptRepo) Create(ctx context.Context, a Attempt) error {
	query := `
		INSERT INTO attempts (id, percent, status, user_id, test_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Percent, a.Status, a.UserID, a.TestID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert attempt: %w", err)
	}
	return nil
}

func (r *pgAttemptRepo) GetFirst(ctx context.Context, userID uuid.UUID, testID uuid.UUID) (*Attempt, error) {
	query := `
		SELECT id, percent, status, user_id, test_id, created_at, updated_at
		FROM attempts
		WHERE user_id = $1 AND test_id = $2
		ORDER BY created_at
		LIMIT 1
	`
	var a Attempt
	err := r.pool.QueryRow(ctx, query, userID, testID).Scan(
		&a.ID, &a.Percent, &a.Status, &a.UserID, &a.TestID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query first attempt: %w", err)
	}
	return &a, nil
}

var attemptOrderCols = map[string]string{
	"title":      "t.title",
	"created_at": "a.created_at",
}

func (r *pgAttemptRepo) ListByUser(ctx context.Context, userID uuid.UUID, testingID *uuid.UUID, limit int, offset int, orderBy string) ([]AttemptWithTest, error) {
	col, ok := attemptOrderCols[orderBy]
	if !ok {
		col = "a.created_at"
	}
	query := fmt.Sprintf(`
		SELECT a.id, a.percent, a.status, a.user_id, a.test_id, a.created_at, a.updated_at,
			t.id, t.title, t.content, t.type, t.correct_percent, t.vacancy_id, t.created_at, t.updated_at
		FROM attempts a
		JOIN testings t ON t.id = a.test_id
		WHERE a.user_id = $1 AND ($2::uuid IS NULL OR a.test_id = $2)
		ORDER BY %s
		LIMIT $3 OFFSET $4
	`, col)

	rows, err := r.pool.Query(ctx, query, userID, testingID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []AttemptWithTest
	for rows.Next() {
		var a AttemptWithTest
		err := rows.Scan(
			&a.ID, &a.Percent, &a.Status, &a.UserID, &a.TestID, &a.CreatedAt, &a.UpdatedAt,
			&a.Test.ID, &a.Test.Title, &a.Test.Content, &a.Test.Type, &a.Test.CorrectPercent,
			&a.Test.VacancyID, &a.Test.CreatedAt, &a.Test.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attempts: %w", err)
	}
	return attempts, nil
}

func (r *pgAttemptRepo) SetResult(ctx context.Context, attemptID uuid.UUID, percent int, status AttemptStatus) error {
	query := `
		UPDATE attempts
		SET percent = $2, status = $3, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, attemptID, percent, status)
	if err != nil {
		return fmt.Errorf("failed to set attempt result: %w", err)
	}
	return nil
}

// ApprovedUsers folds the best graded attempt per (user, testing) against
// each vacancy's testing count. The heavy lifting happens in SQL; the final
// all-tests-passed filter is buildApproved.
func (r *pgAttemptRepo) ApprovedUsers(ctx context.Context) ([]ApprovedUser, error) {
	rowsQuery := `
		SELECT a.user_id,
			v.id, v.title, v.state, v.type, v.created_at,
			t.id, t.title, MAX(a.percent)
		FROM attempts a
		JOIN testings t ON t.id = a.test_id
		JOIN vacancies v ON v.id = t.vacancy_id
		WHERE a.status = $1 AND a.percent >= t.correct_percent
		GROUP BY a.user_id, v.id, v.title, v.state, v.type, v.created_at, t.id, t.title
	`
	rows, err := r.pool.Query(ctx, rowsQuery, AttemptGraded)
	if err != nil {
		return nil, fmt.Errorf("failed to query passed attempts: %w", err)
	}
	defer rows.Close()

	var passed []passedRow
	for rows.Next() {
		var row passedRow
		err := rows.Scan(
			&row.UserID,
			&row.VacancyID, &row.VacancyTitle, &row.VacancyState, &row.VacancyType, &row.VacancyCreatedAt,
			&row.TestingID, &row.TestingTitle, &row.BestPercent,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan passed attempt: %w", err)
		}
		passed = append(passed, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating passed attempts: %w", err)
	}

	totalsQuery := `SELECT vacancy_id, COUNT(*) FROM testings GROUP BY vacancy_id`
	totalRows, err := r.pool.Query(ctx, totalsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query testing totals: %w", err)
	}
	defer totalRows.Close()

	totals := make(map[uuid.UUID]int)
	for totalRows.Next() {
		var vacancyID uuid.UUID
		var count int
		if err := totalRows.Scan(&vacancyID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan testing total: %w", err)
		}
		totals[vacancyID] = count
	}
	if err := totalRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating testing totals: %w", err)
	}

	return buildApproved(passed, totals), nil
}
