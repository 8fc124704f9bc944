package testsrvc

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hirelane/backend/vacsrvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletePracticalGradesThroughQueue(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestPractical, 50)
	q1 := env.addPracQuestion(t, tst.ID, "42")
	q2 := env.addPracQuestion(t, tst.ID, "hello")
	q3 := env.addPracQuestion(t, tst.ID, "world")
	actor := candidateActor()

	env.judge.results["print(42)"] = acceptedWithStdout("42\n")
	env.judge.results["print('bye')"] = acceptedWithStdout("bye\n")
	env.judge.results["boom"] = runtimeError("Traceback (most recent call last)")

	attempt, err := env.srvc.CompletePractical(context.Background(), actor, tst.ID, []AnswerToPracticalQuestion{
		{QuestionID: q1.ID, Answer: "print(42)"},
		{QuestionID: q2.ID, Answer: "print('bye')"},
		{QuestionID: q3.ID, Answer: "boom"},
	})
	require.NoError(t, err)
	// the returned attempt is the pre-grading placeholder
	assert.Equal(t, 0, attempt.Percent)
	assert.Equal(t, AttemptPending, attempt.Status)

	// the sync queue already graded it: 1 of 3 matched
	stored, err := env.attempts.GetFirst(context.Background(), actor.ID, tst.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 33, stored.Percent)
	assert.Equal(t, AttemptGraded, stored.Status)
}

func TestGradingComparesWithNewlinesStripped(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestPractical, 50)
	q := env.addPracQuestion(t, tst.ID, "a\nb\nc")
	actor := candidateActor()

	env.judge.results["code"] = acceptedWithStdout("abc\n")

	_, err := env.srvc.CompletePractical(context.Background(), actor, tst.ID, []AnswerToPracticalQuestion{
		{QuestionID: q.ID, Answer: "code"},
	})
	require.NoError(t, err)

	stored, err := env.attempts.GetFirst(context.Background(), actor.ID, tst.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Percent)
}

func TestGradingEmptyStdoutScoresNothing(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestPractical, 50)
	q := env.addPracQuestion(t, tst.ID, "42")
	actor := candidateActor()

	env.judge.results["silent"] = acceptedWithStdout("")

	_, err := env.srvc.CompletePractical(context.Background(), actor, tst.ID, []AnswerToPracticalQuestion{
		{QuestionID: q.ID, Answer: "silent"},
	})
	require.NoError(t, err)

	stored, err := env.attempts.GetFirst(context.Background(), actor.ID, tst.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Percent)
	assert.Equal(t, AttemptGraded, stored.Status)
}

func TestGradingSkipsAnswersToUnknownQuestions(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestPractical, 50)
	q := env.addPracQuestion(t, tst.ID, "42")
	actor := candidateActor()

	env.judge.results["print(42)"] = acceptedWithStdout("42")

	// the stray answer is ignored, the valid one still scores
	_, err := env.srvc.CompletePractical(context.Background(), actor, tst.ID, []AnswerToPracticalQuestion{
		{QuestionID: uuid.New(), Answer: "stray"},
		{QuestionID: q.ID, Answer: "print(42)"},
	})
	require.NoError(t, err)

	stored, err := env.attempts.GetFirst(context.Background(), actor.ID, tst.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Percent)
	assert.Equal(t, AttemptGraded, stored.Status)
	assert.Equal(t, 1, env.judge.calls, "stray answer must not reach the judge")
}

func TestGradingJudgeFailureMarksAttemptFailed(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestPractical, 50)
	q := env.addPracQuestion(t, tst.ID, "42")
	actor := candidateActor()

	env.judge.err = errors.New("connection refused")

	// the completion call itself still succeeds
	attempt, err := env.srvc.CompletePractical(context.Background(), actor, tst.ID, []AnswerToPracticalQuestion{
		{QuestionID: q.ID, Answer: "print(42)"},
	})
	require.NoError(t, err)
	require.NotNil(t, attempt)

	stored, err := env.attempts.GetFirst(context.Background(), actor.ID, tst.ID)
	require.NoError(t, err)
	assert.Equal(t, AttemptFailed, stored.Status)
	assert.Equal(t, 0, stored.Percent)
}

func TestGradingZeroQuestions(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestPractical, 50)
	actor := candidateActor()

	_, err := env.srvc.CompletePractical(context.Background(), actor, tst.ID, nil)
	require.NoError(t, err)

	stored, err := env.attempts.GetFirst(context.Background(), actor.ID, tst.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Percent)
	assert.Equal(t, AttemptGraded, stored.Status)
}

func TestExecuteProgram(t *testing.T) {
	env := newTestEnv(t)
	actor := authorActor()

	env.judge.results["print(42)"] = acceptedWithStdout("42\n")
	answer := "42"
	res, err := env.srvc.ExecuteProgram(context.Background(), actor, "print(42)", "python3", &answer)
	require.NoError(t, err)
	require.NotNil(t, res.Stdout)
	assert.Equal(t, "42\n", *res.Stdout)
	assert.True(t, res.IsCorrect)
	assert.Equal(t, "Accepted", res.ServiceMessage)

	wrong := "43"
	res, err = env.srvc.ExecuteProgram(context.Background(), actor, "print(42)", "python3", &wrong)
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)

	// without a reference answer any output counts as correct
	res, err = env.srvc.ExecuteProgram(context.Background(), actor, "print(42)", "python3", nil)
	require.NoError(t, err)
	assert.True(t, res.IsCorrect)

	env.judge.results["boom"] = runtimeError("Traceback")
	res, err = env.srvc.ExecuteProgram(context.Background(), actor, "boom", "python3", nil)
	require.NoError(t, err)
	require.NotNil(t, res.Stderr)
	assert.False(t, res.IsCorrect)
	assert.Nil(t, res.Stdout)

	_, err = env.srvc.ExecuteProgram(context.Background(), actor, "x", "cobol", nil)
	requireErrCode(t, err, ErrCodeUnknownLanguage)
}
