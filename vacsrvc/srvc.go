package vacsrvc

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hirelane/backend/auth"
	"github.com/hirelane/backend/logger"
	"github.com/hirelane/backend/s3bucket"
)

type VacancyRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*Vacancy, error)
	List(ctx context.Context, limit int, offset int, orderBy string) ([]Vacancy, error)
	Create(ctx context.Context, vacancy Vacancy) error
	Update(ctx context.Context, vacancy Vacancy) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type VacancyFileRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*VacancyFile, error)
	ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]VacancyFile, error)
	Create(ctx context.Context, file VacancyFile) error
	Update(ctx context.Context, file VacancyFile) error
}

// permission requirements per operation, checked before anything else.
// ACTIVE account state is required across the board.
var vacancyOpPerms = map[string]auth.Permission{
	"create":      auth.PermCreateVacancy,
	"update":      auth.PermUpdateVacancy,
	"delete":      auth.PermDeleteVacancy,
	"get":         auth.PermGetVacancy,
	"list":        auth.PermGetVacancy,
	"file_create": auth.PermUpdateVacancy,
	"file_list":   auth.PermGetVacancy,
	"poster":      auth.PermUpdateVacancy,
}

type VacancySrvc struct {
	logger *slog.Logger
	guard  auth.Guard
	repo   VacancyRepo
	files  VacancyFileRepo
	bucket *s3bucket.S3Bucket
	now    func() time.Time
}

func NewVacancySrvc(guard auth.Guard, repo VacancyRepo, files VacancyFileRepo, bucket *s3bucket.S3Bucket) *VacancySrvc {
	return &VacancySrvc{
		logger: slog.Default().With("module", "vacsrvc"),
		guard:  guard,
		repo:   repo,
		files:  files,
		bucket: bucket,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *VacancySrvc) require(actor auth.Actor, op string) error {
	return s.guard.Require(actor, vacancyOpPerms[op], auth.UserStateActive)
}

func (s *VacancySrvc) CreateVacancy(ctx context.Context, actor auth.Actor, in CreateVacancyInput) (*Vacancy, error) {
	if err := s.require(actor, "create"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	vacancy := Vacancy{
		ID:        uuid.New(),
		Title:     in.Title,
		Content:   in.Content,
		Type:      in.Type,
		State:     in.State,
		TestTime:  in.TestTime,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, vacancy); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("vacancy created", "vacancy_id", vacancy.ID)
	return &vacancy, nil
}

func (s *VacancySrvc) GetVacancy(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Vacancy, error) {
	if err := s.require(actor, "get"); err != nil {
		return nil, err
	}
	vacancy, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrVacancyNotFound(id)
	}
	return vacancy, nil
}

func (s *VacancySrvc) ListVacancies(ctx context.Context, actor auth.Actor, page int, perPage int, orderBy string) ([]Vacancy, error) {
	if err := s.require(actor, "list"); err != nil {
		return nil, err
	}
	limit, offset, err := clampPaging(page, perPage)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, limit, offset, orderBy)
}

func (s *VacancySrvc) UpdateVacancy(ctx context.Context, actor auth.Actor, id uuid.UUID, in UpdateVacancyInput) (*Vacancy, error) {
	if err := s.require(actor, "update"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	vacancy, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrVacancyNotFound(id)
	}

	if in.Title != nil {
		vacancy.Title = *in.Title
	}
	if in.Content != nil {
		vacancy.Content = *in.Content
	}
	if in.Type != nil {
		vacancy.Type = *in.Type
	}
	if in.State != nil {
		vacancy.State = *in.State
	}
	now := s.now()
	vacancy.UpdatedAt = &now

	if err := s.repo.Update(ctx, *vacancy); err != nil {
		return nil, err
	}
	return vacancy, nil
}

func (s *VacancySrvc) DeleteVacancy(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	if err := s.require(actor, "delete"); err != nil {
		return err
	}
	vacancy, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if vacancy == nil {
		return ErrVacancyNotFound(id)
	}
	logger.FromContext(ctx).Info("vacancy deleted", "vacancy_id", id)
	return s.repo.Delete(ctx, id)
}
