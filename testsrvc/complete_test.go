package testsrvc

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hirelane/backend/vacsrvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteTheoreticalFullScore(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestTheoretical, 50)
	q1, opts1 := env.addTheoQuestion(t, tst.ID, true, false)
	q2, opts2 := env.addTheoQuestion(t, tst.ID, false, true)
	actor := candidateActor()

	attempt, err := env.srvc.CompleteTheoretical(context.Background(), actor, tst.ID, []AnswerToTheoreticalQuestion{
		{QuestionID: q1.ID, AnswerOptionID: opts1[0].ID},
		{QuestionID: q2.ID, AnswerOptionID: opts2[1].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, attempt.Percent)
	assert.Equal(t, AttemptGraded, attempt.Status)
	assert.Equal(t, actor.ID, attempt.UserID)
	assert.Equal(t, tst.ID, attempt.Test.ID)

	stored, err := env.attempts.GetFirst(context.Background(), actor.ID, tst.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 100, stored.Percent)
}

func TestCompleteTheoreticalPartialAndZeroScore(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestTheoretical, 50)
	q1, opts1 := env.addTheoQuestion(t, tst.ID, true, false)
	q2, opts2 := env.addTheoQuestion(t, tst.ID, false, true)

	// one of two correct
	attempt, err := env.srvc.CompleteTheoretical(context.Background(), candidateActor(), tst.ID, []AnswerToTheoreticalQuestion{
		{QuestionID: q1.ID, AnswerOptionID: opts1[0].ID},
		{QuestionID: q2.ID, AnswerOptionID: opts2[0].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 50, attempt.Percent)

	// all wrong
	attempt, err = env.srvc.CompleteTheoretical(context.Background(), candidateActor(), tst.ID, []AnswerToTheoreticalQuestion{
		{QuestionID: q1.ID, AnswerOptionID: opts1[1].ID},
		{QuestionID: q2.ID, AnswerOptionID: opts2[0].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, attempt.Percent)

	// no answers at all still records a graded zero
	attempt, err = env.srvc.CompleteTheoretical(context.Background(), candidateActor(), tst.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, attempt.Percent)
	assert.Equal(t, AttemptGraded, attempt.Status)
}

func TestCompleteTheoreticalZeroQuestions(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestTheoretical, 50)

	attempt, err := env.srvc.CompleteTheoretical(context.Background(), candidateActor(), tst.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, attempt.Percent)
}

func TestCompleteTheoreticalUnknownReferences(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestTheoretical, 50)
	q, opts := env.addTheoQuestion(t, tst.ID, true)

	// question outside the testing fails the whole submission
	_, err := env.srvc.CompleteTheoretical(context.Background(), candidateActor(), tst.ID, []AnswerToTheoreticalQuestion{
		{QuestionID: uuid.New(), AnswerOptionID: opts[0].ID},
	})
	requireErrCode(t, err, ErrCodeQuestionNotFound)

	// so does an option that belongs to another question
	_, otherOpts := env.addTheoQuestion(t, tst.ID, true)
	_, err = env.srvc.CompleteTheoretical(context.Background(), candidateActor(), tst.ID, []AnswerToTheoreticalQuestion{
		{QuestionID: q.ID, AnswerOptionID: otherOpts[0].ID},
	})
	requireErrCode(t, err, ErrCodeAnswerOptionNotFound)

	// and nothing was recorded
	actor := candidateActor()
	first, err := env.attempts.GetFirst(context.Background(), actor.ID, tst.ID)
	require.NoError(t, err)
	assert.Nil(t, first)
}

func TestCompleteTheoreticalDuplicateAnswersEachCount(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestTheoretical, 50)
	q, opts := env.addTheoQuestion(t, tst.ID, true, false)
	env.addTheoQuestion(t, tst.ID, true)

	// answering one question twice scores twice: 2 correct over 2 questions
	attempt, err := env.srvc.CompleteTheoretical(context.Background(), candidateActor(), tst.ID, []AnswerToTheoreticalQuestion{
		{QuestionID: q.ID, AnswerOptionID: opts[0].ID},
		{QuestionID: q.ID, AnswerOptionID: opts[0].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, attempt.Percent)
}

func TestCompleteTheoreticalRepeatAttemptsAllowedInsideWindow(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestTheoretical, 50)
	q, opts := env.addTheoQuestion(t, tst.ID, true, false)
	actor := candidateActor()

	first, err := env.srvc.CompleteTheoretical(context.Background(), actor, tst.ID, []AnswerToTheoreticalQuestion{
		{QuestionID: q.ID, AnswerOptionID: opts[1].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Percent)

	second, err := env.srvc.CompleteTheoretical(context.Background(), actor, tst.ID, []AnswerToTheoreticalQuestion{
		{QuestionID: q.ID, AnswerOptionID: opts[0].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, second.Percent)

	attempts, err := env.srvc.ListAttempts(context.Background(), actor, &tst.ID, 1, 10, "created_at")
	require.NoError(t, err)
	assert.Len(t, attempts, 2)
}

func TestScorePercent(t *testing.T) {
	assert.Equal(t, 0, scorePercent(0, 0))
	assert.Equal(t, 0, scorePercent(5, 0))
	assert.Equal(t, 0, scorePercent(0, 3))
	assert.Equal(t, 33, scorePercent(1, 3))
	assert.Equal(t, 66, scorePercent(2, 3))
	assert.Equal(t, 100, scorePercent(3, 3))
}
