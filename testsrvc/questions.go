package testsrvc

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirelane/backend/auth"
)

func (s *TestingSrvc) CreateTheoreticalQuestion(ctx context.Context, actor auth.Actor, testingID uuid.UUID, in CreateTheoQuestionInput) (*TheoreticalQuestion, error) {
	if err := s.require(actor, "create"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	testing, _, err := s.getOpenTesting(ctx, testingID)
	if err != nil {
		return nil, err
	}
	if testing.Type != TestTheoretical {
		return nil, ErrWrongTestType(testingID, TestTheoretical)
	}

	question := TheoreticalQuestion{
		ID:        uuid.New(),
		Content:   in.Content,
		TestingID: testingID,
		CreatedAt: s.now(),
	}
	if err := s.theoQs.Create(ctx, question); err != nil {
		return nil, err
	}
	return s.theoQs.Get(ctx, question.ID, true)
}

func (s *TestingSrvc) CreatePracticalQuestion(ctx context.Context, actor auth.Actor, testingID uuid.UUID, in CreatePracQuestionInput) (*PracticalQuestion, error) {
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
	if testing.Type != TestPractical {
		return nil, ErrWrongTestType(testingID, TestPractical)
	}

	question := PracticalQuestion{
		ID:        uuid.New(),
		Content:   in.Content,
		Language:  in.Language,
		Answer:    in.Answer,
		TestingID: testingID,
		CreatedAt: s.now(),
	}
	if err := s.pracQs.Create(ctx, question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *TestingSrvc) UpdateTheoreticalQuestion(ctx context.Context, actor auth.Actor, questionID uuid.UUID, in UpdateTheoQuestionInput) (*TheoreticalQuestion, error) {
	if err := s.require(actor, "update"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	question, err := s.theoQs.Get(ctx, questionID, false)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound(questionID)
	}

	if in.Content != nil {
		question.Content = *in.Content
	}
	now := s.now()
	question.UpdatedAt = &now

	if err := s.theoQs.Update(ctx, *question); err != nil {
		return nil, err
	}
	return s.theoQs.Get(ctx, questionID, true)
}

func (s *TestingSrvc) UpdatePracticalQuestion(ctx context.Context, actor auth.Actor, questionID uuid.UUID, in UpdatePracQuestionInput) (*PracticalQuestion, error) {
	if err := s.require(actor, "update"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	question, err := s.pracQs.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound(questionID)
	}

	if in.Content != nil {
		question.Content = *in.Content
	}
	if in.Language != nil {
		question.Language = *in.Language
	}
	if in.Answer != nil {
		question.Answer = *in.Answer
	}
	now := s.now()
	question.UpdatedAt = &now

	if err := s.pracQs.Update(ctx, *question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *TestingSrvc) DeleteTheoreticalQuestion(ctx context.Context, actor auth.Actor, questionID uuid.UUID) error {
	if err := s.require(actor, "delete"); err != nil {
		return err
	}
	question, err := s.theoQs.Get(ctx, questionID, false)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound(questionID)
	}
	return s.theoQs.Delete(ctx, questionID)
}

func (s *TestingSrvc) DeletePracticalQuestion(ctx context.Context, actor auth.Actor, questionID uuid.UUID) error {
	if err := s.require(actor, "delete"); err != nil {
		return err
	}
	question, err := s.pracQs.Get(ctx, questionID)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound(questionID)
	}
	return s.pracQs.Delete(ctx, questionID)
}

// Question reads expose correct answers and reference outputs, so they sit
// behind the author-level update permission.

func (s *TestingSrvc) GetTheoreticalQuestion(ctx context.Context, actor auth.Actor, questionID uuid.UUID) (*TheoreticalQuestion, error) {
	if err := s.require(actor, "question_read"); err != nil {
		return nil, err
	}
	question, err := s.theoQs.Get(ctx, questionID, true)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound(questionID)
	}
	return question, nil
}

func (s *TestingSrvc) GetPracticalQuestion(ctx context.Context, actor auth.Actor, questionID uuid.UUID) (*PracticalQuestion, error) {
	if err := s.require(actor, "question_read"); err != nil {
		return nil, err
	}
	question, err := s.pracQs.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound(questionID)
	}
	return question, nil
}

func (s *TestingSrvc) ListTheoreticalQuestions(ctx context.Context, actor auth.Actor, testingID uuid.UUID) ([]TheoreticalQuestion, error) {
	if err := s.require(actor, "question_read"); err != nil {
		return nil, err
	}
	return s.theoQs.ListByTesting(ctx, testingID, true)
}

func (s *TestingSrvc) ListPracticalQuestions(ctx context.Context, actor auth.Actor, testingID uuid.UUID) ([]PracticalQuestion, error) {
	if err := s.require(actor, "question_read"); err != nil {
		return nil, err
	}
	return s.pracQs.ListByTesting(ctx, testingID)
}

// CreateAnswerOption adds a choice under a theoretical question and returns
// the refreshed question with all its options.
func (s *TestingSrvc) CreateAnswerOption(ctx context.Context, actor auth.Actor, questionID uuid.UUID, in CreateAnswerOptionInput) (*TheoreticalQuestion, error) {
	if err := s.require(actor, "update"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	question, err := s.theoQs.Get(ctx, questionID, false)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound(questionID)
	}

	isCorrect := in.IsCorrect
	option := AnswerOption{
		ID:         uuid.New(),
		Content:    in.Content,
		IsCorrect:  &isCorrect,
		QuestionID: questionID,
		CreatedAt:  s.now(),
	}
	if err := s.options.Create(ctx, option); err != nil {
		return nil, err
	}
	return s.theoQs.Get(ctx, questionID, true)
}
