package testsrvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgTheoQuestionRepo struct {
	pool *pgxpool.Pool
}

func NewPgTheoQuestionRepo(pool *pgxpool.Pool) TheoQuestionRepo {
	return &pgTheoQuestionRepo{pool: pool}
}

func (r *pgTheoQuestionRepo) Get(ctx context.Context, id uuid.UUID, withOptions bool) (*TheoreticalQuestion, error) {
	query := `
		SELECT id, content, testing_id, created_at, updated_at
		FROM theoretical_questions
		WHERE id = $1
	`
	var q TheoreticalQuestion
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.Content, &q.TestingID, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query theoretical question: %w", err)
	}

	if withOptions {
		options, err := r.optionsForQuestions(ctx, []uuid.UUID{q.ID})
		if err != nil {
			return nil, err
		}
		q.AnswerOptions = options[q.ID]
	}
	return &q, nil
}

func (r *pgTheoQuestionRepo) ListByTesting(ctx context.Context, testingID uuid.UUID, withOptions bool) ([]TheoreticalQuestion, error) {
	query := `
		SELECT id, content, testing_id, created_at, updated_at
		FROM theoretical_questions
		WHERE testing_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, testingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query theoretical questions: %w", err)
	}
	defer rows.Close()

	var questions []TheoreticalQuestion
	var ids []uuid.UUID
	for rows.Next() {
		var q TheoreticalQuestion
		err := rows.Scan(&q.ID, &q.Content, &q.TestingID, &q.CreatedAt, &q.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan theoretical question: %w", err)
		}
		questions = append(questions, q)
		ids = append(ids, q.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating theoretical questions: %w", err)
	}

	if withOptions && len(ids) > 0 {
		options, err := r.optionsForQuestions(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range questions {
			questions[i].AnswerOptions = options[questions[i].ID]
		}
	}
	return questions, nil
}

func (r *pgTheoQuestionRepo) optionsForQuestions(ctx context.Context, questionIDs []uuid.UUID) (map[uuid.UUID][]AnswerOption, error) {
	query := `
		SELECT id, content, is_correct, question_id, created_at, updated_at
		FROM answer_options
		WHERE question_id = ANY($1)
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query answer options: %w", err)
	}
	defer rows.Close()

	options := make(map[uuid.UUID][]AnswerOption)
	for rows.Next() {
		var o AnswerOption
		err := rows.Scan(&o.ID, &o.Content, &o.IsCorrect, &o.QuestionID, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan answer option: %w", err)
		}
		options[o.QuestionID] = append(options[o.QuestionID], o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answer options: %w", err)
	}
	return options, nil
}

func (r *pgTheoQuestionRepo) Create(ctx context.Context, q TheoreticalQuestion) error {
	query := `
		INSERT INTO theoretical_questions (id, content, testing_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query, q.ID, q.Content, q.TestingID, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert theoretical question: %w", err)
	}
	return nil
}

func (r *pgTheoQuestionRepo) Update(ctx context.Context, q TheoreticalQuestion) error {
	query := `
		UPDATE theoretical_questions
		SET content = $2, updated_at = $3
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, q.ID, q.Content, q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update theoretical question: %w", err)
	}
	return nil
}

func (r *pgTheoQuestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM theoretical_questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete theoretical question: %w", err)
	}
	return nil
}

type pgPracQuestionRepo struct {
	pool *pgxpool.Pool
}

func NewPgPracQuestionRepo(pool *pgxpool.Pool) PracQuestionRepo {
	return &pgPracQuestionRepo{pool: pool}
}

func (r *pgPracQuestionRepo) Get(ctx context.Context, id uuid.UUID) (*PracticalQuestion, error) {
	query := `
		SELECT id, content, language, answer, testing_id, created_at, updated_at
		FROM practical_questions
		WHERE id = $1
	`
	var q PracticalQuestion
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.Content, &q.Language, &q.Answer, &q.TestingID, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query practical question: %w", err)
	}
	return &q, nil
}

func (r *pgPracQuestionRepo) ListByTesting(ctx context.Context, testingID uuid.UUID) ([]PracticalQuestion, error) {
	query := `
		SELECT id, content, language, answer, testing_id, created_at, updated_at
		FROM practical_questions
		WHERE testing_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, testingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query practical questions: %w", err)
	}
	defer rows.Close()

	var questions []PracticalQuestion
	for rows.Next() {
		var q PracticalQuestion
		err := rows.Scan(&q.ID, &q.Content, &q.Language, &q.Answer, &q.TestingID, &q.CreatedAt, &q.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan practical question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating practical questions: %w", err)
	}
	return questions, nil
}

func (r *pgPracQuestionRepo) Create(ctx context.Context, q PracticalQuestion) error {
	query := `
		INSERT INTO practical_questions (id, content, language, answer, testing_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query, q.ID, q.Content, q.Language, q.Answer, q.TestingID, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert practical question: %w", err)
	}
	return nil
}

func (r *pgPracQuestionRepo) Update(ctx context.Context, q PracticalQuestion) error {
	query := `
		UPDATE practical_questions
		SET content = $2, language = $3, answer = $4, updated_at = $5
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, q.ID, q.Content, q.Language, q.Answer, q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update practical question: %w", err)
	}
	return nil
}

func (r *pgPracQuestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM practical_questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete practical question: %w", err)
	}
	return nil
}

type pgAnswerOptionRepo struct {
	pool *pgxpool.Pool
}

func NewPgAnswerOptionRepo(pool *pgxpool.Pool) AnswerOptionRepo {
	return &pgAnswerOptionRepo{pool: pool}
}

func (r *pgAnswerOptionRepo) Create(ctx context.Context, o AnswerOption) error {
	query := `
		INSERT INTO answer_options (id, content, is_correct, question_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query, o.ID, o.Content, o.IsCorrect, o.QuestionID, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert answer option: %w", err)
	}
	return nil
}
