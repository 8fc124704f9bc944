package testsrvc

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirelane/backend/auth"
	"github.com/hirelane/backend/logger"
)

// CompleteTheoretical grades a theoretical submission synchronously and
// records the attempt. Answers referencing a question or option outside the
// testing fail the whole submission; duplicate answers to one question each
// count on their own (upstream behavior, kept — see DESIGN.md).
func (s *TestingSrvc) CompleteTheoretical(ctx context.Context, actor auth.Actor, testingID uuid.UUID, answers []AnswerToTheoreticalQuestion) (*AttemptWithTest, error) {
	if err := s.require(actor, "complete"); err != nil {
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

	// (question id -> option id -> option) lookup
	optionsByQuestion := make(map[uuid.UUID]map[uuid.UUID]AnswerOption, len(questions))
	for _, q := range questions {
		byID := make(map[uuid.UUID]AnswerOption, len(q.AnswerOptions))
		for _, opt := range q.AnswerOptions {
			byID[opt.ID] = opt
		}
		optionsByQuestion[q.ID] = byID
	}

	correct := 0
	for _, answer := range answers {
		options, ok := optionsByQuestion[answer.QuestionID]
		if !ok {
			return nil, ErrAnsweredQuestionUnknown(answer.QuestionID)
		}
		option, ok := options[answer.AnswerOptionID]
		if !ok {
			return nil, ErrAnswerOptionUnknown(answer.AnswerOptionID)
		}
		if option.IsCorrect != nil && *option.IsCorrect {
			correct++
		}
	}

	attempt := Attempt{
		ID:        uuid.New(),
		Percent:   scorePercent(correct, len(questions)),
		Status:    AttemptGraded,
		UserID:    actor.ID,
		TestID:    testingID,
		CreatedAt: s.now(),
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("theoretical attempt graded",
		"testing_id", testingID, "user_id", actor.ID, "percent", attempt.Percent)
	return &AttemptWithTest{Attempt: attempt, Test: *testing}, nil
}

// CompletePractical records a pending attempt immediately and enqueues the
// grading task. The caller gets the placeholder back; the worker patches the
// score once the judge has run every answer.
func (s *TestingSrvc) CompletePractical(ctx context.Context, actor auth.Actor, testingID uuid.UUID, answers []AnswerToPracticalQuestion) (*AttemptWithTest, error) {
	if err := s.require(actor, "complete"); err != nil {
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

	questions, err := s.pracQs.ListByTesting(ctx, testingID)
	if err != nil {
		return nil, err
	}

	attempt := Attempt{
		ID:        uuid.New(),
		Percent:   0,
		Status:    AttemptPending,
		UserID:    actor.ID,
		TestID:    testingID,
		CreatedAt: s.now(),
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}

	task := GradeTask{
		AttemptID: attempt.ID,
		Questions: questions,
		Answers:   answers,
	}
	if err := s.queue.Enqueue(ctx, task); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("practical attempt enqueued for grading",
		"testing_id", testingID, "user_id", actor.ID, "attempt_id", attempt.ID)
	return &AttemptWithTest{Attempt: attempt, Test: *testing}, nil
}

// scorePercent is floor(100*correct/total); zero questions score zero.
func scorePercent(correct int, total int) int {
	if total == 0 {
		return 0
	}
	return (correct * 100) / total
}
