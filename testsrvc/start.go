package testsrvc

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirelane/backend/auth"
)

// StartTheoretical opens a theoretical testing for the actor and returns its
// questions. Correct-answer flags are nulled on every option before the
// result leaves the service. Starting is idempotent: no attempt is recorded
// and the deadline baseline does not move.
func (s *TestingSrvc) StartTheoretical(ctx context.Context, actor auth.Actor, testingID uuid.UUID) ([]TheoreticalQuestion, error) {
	if err := s.require(actor, "start"); err != nil {
		return nil, err
	}

	testing, vacancy, err := s.getOpenTesting(ctx, testingID)
	if err != nil {
		return nil, err
	}
	if testing.Type != TestTheoretical {
		return nil, ErrWrongTestType(testingID, TestTheoretical)
	}
	if err := s.checkDeadline(ctx, actor.ID, testingID, vacancy.TestTime); err != nil {
		return nil, err
	}

	questions, err := s.theoQs.ListByTesting(ctx, testingID, true)
	if err != nil {
		return nil, err
	}
	for qi := range questions {
		for oi := range questions[qi].AnswerOptions {
			questions[qi].AnswerOptions[oi].IsCorrect = nil
		}
	}
	return questions, nil
}

// StartPractical opens a practical testing for the actor and returns its
// questions. The reference answer stays in the payload; upstream ships it to
// the candidate on purpose and we keep that contract (see DESIGN.md).
func (s *TestingSrvc) StartPractical(ctx context.Context, actor auth.Actor, testingID uuid.UUID) ([]PracticalQuestion, error) {
	if err := s.require(actor, "start"); err != nil {
		return nil, err
	}

	testing, vacancy, err := s.getOpenTesting(ctx, testingID)
	if err != nil {
		return nil, err
	}
	if testing.Type != TestPractical {
		return nil, ErrWrongTestType(testingID, TestPractical)
	}
	if err := s.checkDeadline(ctx, actor.ID, testingID, vacancy.TestTime); err != nil {
		return nil, err
	}

	return s.pracQs.ListByTesting(ctx, testingID)
}
