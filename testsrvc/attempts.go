package testsrvc

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/hirelane/backend/auth"
)

const perPageLimit = 40

// ListAttempts returns the actor's own attempts, newest-first by default,
// optionally narrowed to one testing.
func (s *TestingSrvc) ListAttempts(ctx context.Context, actor auth.Actor, testingID *uuid.UUID, page int, perPage int, orderBy string) ([]AttemptWithTest, error) {
	if err := s.require(actor, "self_results"); err != nil {
		return nil, err
	}

	if testingID != nil {
		testing, err := s.repo.Get(ctx, *testingID)
		if err != nil {
			return nil, err
		}
		if testing == nil {
			return nil, ErrTestingNotFound(*testingID)
		}
	}

	if page < 1 {
		return nil, ErrPageNotFound()
	}
	if perPage < 1 {
		return nil, ErrInvalidPerPage()
	}
	limit := min(perPage, perPageLimit, math.MaxInt32-1)
	offset := min((page-1)*limit, math.MaxInt32-1)

	return s.attempts.ListByUser(ctx, actor.ID, testingID, limit, offset, orderBy)
}
