package testsrvc

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirelane/backend/auth"
	"github.com/hirelane/backend/logger"
)

// CreateTesting attaches a new testing to a vacancy. The vacancy only has to
// exist here; the opened-state requirement kicks in for later mutations.
func (s *TestingSrvc) CreateTesting(ctx context.Context, actor auth.Actor, vacancyID uuid.UUID, in CreateTestingInput) (*Testing, error) {
	if err := s.require(actor, "create"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	vacancy, err := s.vacancies.Get(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrVacancyNotFound(vacancyID)
	}

	testing := Testing{
		ID:             uuid.New(),
		Title:          in.Title,
		Content:        in.Content,
		Type:           in.Type,
		CorrectPercent: in.CorrectPercent,
		VacancyID:      vacancyID,
		CreatedAt:      s.now(),
	}
	if err := s.repo.Create(ctx, testing); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("testing created",
		"testing_id", testing.ID, "vacancy_id", vacancyID)
	return &testing, nil
}

// UpdateTesting patches title, content and pass threshold. The type of a
// testing is immutable once created.
func (s *TestingSrvc) UpdateTesting(ctx context.Context, actor auth.Actor, testingID uuid.UUID, in UpdateTestingInput) (*Testing, error) {
	if err := s.require(actor, "update"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	testing, _, err := s.getOpenTesting(ctx, testingID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		testing.Title = *in.Title
	}
	if in.Content != nil {
		testing.Content = *in.Content
	}
	if in.CorrectPercent != nil {
		testing.CorrectPercent = *in.CorrectPercent
	}
	now := s.now()
	testing.UpdatedAt = &now

	if err := s.repo.Update(ctx, *testing); err != nil {
		return nil, err
	}
	return testing, nil
}

func (s *TestingSrvc) DeleteTesting(ctx context.Context, actor auth.Actor, testingID uuid.UUID) error {
	if err := s.require(actor, "delete"); err != nil {
		return err
	}
	if _, _, err := s.getOpenTesting(ctx, testingID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("testing deleted", "testing_id", testingID)
	return s.repo.Delete(ctx, testingID)
}

// GetTesting requires the owning vacancy to be opened, same as mutations;
// listing by vacancy below does not. Upstream behaves this way and callers
// depend on it (see DESIGN.md).
func (s *TestingSrvc) GetTesting(ctx context.Context, actor auth.Actor, testingID uuid.UUID) (*Testing, error) {
	if err := s.require(actor, "get"); err != nil {
		return nil, err
	}
	testing, _, err := s.getOpenTesting(ctx, testingID)
	if err != nil {
		return nil, err
	}
	return testing, nil
}

func (s *TestingSrvc) ListTestings(ctx context.Context, actor auth.Actor, vacancyID uuid.UUID) ([]Testing, error) {
	if err := s.require(actor, "list"); err != nil {
		return nil, err
	}
	return s.repo.ListByVacancy(ctx, vacancyID)
}
