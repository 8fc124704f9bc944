package testsrvc

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hirelane/backend/auth"
	"github.com/hirelane/backend/judge"
	"github.com/hirelane/backend/vacsrvc"
)

type TestingRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*Testing, error)
	ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]Testing, error)
	Create(ctx context.Context, testing Testing) error
	Update(ctx context.Context, testing Testing) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AttemptRepo interface {
	Create(ctx context.Context, attempt Attempt) error
	// GetFirst returns the user's earliest attempt against the testing, by
	// created_at; nil when they never attempted it.
	GetFirst(ctx context.Context, userID uuid.UUID, testID uuid.UUID) (*Attempt, error)
	ListByUser(ctx context.Context, userID uuid.UUID, testingID *uuid.UUID, limit int, offset int, orderBy string) ([]AttemptWithTest, error)
	// SetResult patches the attempt's percent and status; the grading worker
	// is its only caller.
	SetResult(ctx context.Context, attemptID uuid.UUID, percent int, status AttemptStatus) error
	ApprovedUsers(ctx context.Context) ([]ApprovedUser, error)
}

type TheoQuestionRepo interface {
	// Get loads options too when withOptions is set.
	Get(ctx context.Context, id uuid.UUID, withOptions bool) (*TheoreticalQuestion, error)
	ListByTesting(ctx context.Context, testingID uuid.UUID, withOptions bool) ([]TheoreticalQuestion, error)
	Create(ctx context.Context, question TheoreticalQuestion) error
	Update(ctx context.Context, question TheoreticalQuestion) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PracQuestionRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*PracticalQuestion, error)
	ListByTesting(ctx context.Context, testingID uuid.UUID) ([]PracticalQuestion, error)
	Create(ctx context.Context, question PracticalQuestion) error
	Update(ctx context.Context, question PracticalQuestion) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AnswerOptionRepo interface {
	Create(ctx context.Context, option AnswerOption) error
}

// VacancyProvider is the slice of the vacancy service the lifecycle engine
// needs: resolving a testing's owner to check its state.
type VacancyProvider interface {
	Get(ctx context.Context, id uuid.UUID) (*vacsrvc.Vacancy, error)
}

// permission requirements per operation, consulted before anything else. The
// table mirrors the upstream access policy: question reads require the
// update permission because only test authors may see correct answers.
var testingOpPerms = map[string]auth.Permission{
	"start":           auth.PermStartTesting,
	"complete":        auth.PermCompleteTesting,
	"create":          auth.PermCreateTesting,
	"update":          auth.PermUpdateTesting,
	"delete":          auth.PermDeleteTesting,
	"get":             auth.PermGetTesting,
	"list":            auth.PermGetTesting,
	"execute":         auth.PermGetTesting,
	"question_read":   auth.PermUpdateTesting,
	"self_results":    auth.PermGetSelfTestResults,
	"approved_report": auth.PermGetUserTestResults,
}

// TestingSrvc is the testing lifecycle engine: starting tests, enforcing the
// attempt deadline, grading theoretical submissions synchronously and
// handing practical ones to the grading queue.
type TestingSrvc struct {
	logger *slog.Logger
	guard  auth.Guard

	repo      TestingRepo
	attempts  AttemptRepo
	theoQs    TheoQuestionRepo
	pracQs    PracQuestionRepo
	options   AnswerOptionRepo
	vacancies VacancyProvider

	judge judge.Client
	queue GradeQueue

	now func() time.Time
}

func NewTestingSrvc(
	guard auth.Guard,
	repo TestingRepo,
	attempts AttemptRepo,
	theoQs TheoQuestionRepo,
	pracQs PracQuestionRepo,
	options AnswerOptionRepo,
	vacancies VacancyProvider,
	judgeClient judge.Client,
	queue GradeQueue,
) *TestingSrvc {
	return &TestingSrvc{
		logger:    slog.Default().With("module", "testsrvc"),
		guard:     guard,
		repo:      repo,
		attempts:  attempts,
		theoQs:    theoQs,
		pracQs:    pracQs,
		options:   options,
		vacancies: vacancies,
		judge:     judgeClient,
		queue:     queue,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *TestingSrvc) require(actor auth.Actor, op string) error {
	return s.guard.Require(actor, testingOpPerms[op], auth.UserStateActive)
}

// getOpenTesting resolves a testing and its owning vacancy and verifies the
// vacancy is opened. Most operations start here.
func (s *TestingSrvc) getOpenTesting(ctx context.Context, testingID uuid.UUID) (*Testing, *vacsrvc.Vacancy, error) {
	testing, err := s.repo.Get(ctx, testingID)
	if err != nil {
		return nil, nil, err
	}
	if testing == nil {
		return nil, nil, ErrTestingNotFound(testingID)
	}

	vacancy, err := s.vacancies.Get(ctx, testing.VacancyID)
	if err != nil {
		return nil, nil, err
	}
	if vacancy == nil {
		return nil, nil, ErrVacancyNotFound(testing.VacancyID)
	}
	if vacancy.State != vacsrvc.VacancyOpened {
		return nil, nil, ErrVacancyNotOpened(vacancy.ID)
	}
	return testing, vacancy, nil
}

// checkDeadline enforces the single attempt window: it opens at the user's
// first recorded attempt and lasts vacancy.test_time days. All comparisons
// are in UTC.
func (s *TestingSrvc) checkDeadline(ctx context.Context, userID uuid.UUID, testingID uuid.UUID, testTimeDays int) error {
	first, err := s.attempts.GetFirst(ctx, userID, testingID)
	if err != nil {
		return err
	}
	if first == nil {
		return nil
	}
	deadline := first.CreatedAt.Add(time.Duration(testTimeDays) * 24 * time.Hour)
	if s.now().After(deadline) {
		return ErrTimeExpired()
	}
	return nil
}
