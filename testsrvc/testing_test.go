package testsrvc

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hirelane/backend/vacsrvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTesting(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	actor := authorActor()

	created, err := env.srvc.CreateTesting(context.Background(), actor, vac.ID, CreateTestingInput{
		Title:          "Algorithms",
		Content:        "ten questions",
		Type:           TestTheoretical,
		CorrectPercent: 70,
	})
	require.NoError(t, err)
	assert.Equal(t, "Algorithms", created.Title)
	assert.Equal(t, 70, created.CorrectPercent)
	assert.Equal(t, vac.ID, created.VacancyID)

	got, err := env.srvc.GetTesting(context.Background(), actor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = env.srvc.CreateTesting(context.Background(), actor, uuid.New(), CreateTestingInput{
		Title: "x", CorrectPercent: 50,
	})
	requireErrCode(t, err, ErrCodeVacancyNotFound)
}

func TestCreateTestingAllowsClosedVacancy(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyClosed, 3)

	// creation only needs the vacancy to exist; mutations on the testing
	// later require it to be opened
	created, err := env.srvc.CreateTesting(context.Background(), authorActor(), vac.ID, CreateTestingInput{
		Title: "Draft", CorrectPercent: 50,
	})
	require.NoError(t, err)

	_, err = env.srvc.UpdateTesting(context.Background(), authorActor(), created.ID, UpdateTestingInput{})
	requireErrCode(t, err, ErrCodeVacancyNotOpened)
}

func TestCreateTestingValidation(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	actor := authorActor()

	_, err := env.srvc.CreateTesting(context.Background(), actor, vac.ID, CreateTestingInput{
		Title: "", CorrectPercent: 50,
	})
	requireErrCode(t, err, ErrCodeInvalidTesting)

	_, err = env.srvc.CreateTesting(context.Background(), actor, vac.ID, CreateTestingInput{
		Title: strings.Repeat("x", MaxTitleLen+1), CorrectPercent: 50,
	})
	requireErrCode(t, err, ErrCodeInvalidTesting)

	_, err = env.srvc.CreateTesting(context.Background(), actor, vac.ID, CreateTestingInput{
		Title: "ok", CorrectPercent: 101,
	})
	requireErrCode(t, err, ErrCodeInvalidTesting)
}

func TestUpdateTesting(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestTheoretical, 50)
	actor := authorActor()

	title := "Renamed"
	percent := 80
	updated, err := env.srvc.UpdateTesting(context.Background(), actor, tst.ID, UpdateTestingInput{
		Title:          &title,
		CorrectPercent: &percent,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, 80, updated.CorrectPercent)
	assert.Equal(t, tst.Content, updated.Content, "unset fields stay put")
	require.NotNil(t, updated.UpdatedAt)
}

func TestDeleteTesting(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestTheoretical, 50)
	actor := authorActor()

	require.NoError(t, env.srvc.DeleteTesting(context.Background(), actor, tst.ID))
	_, err := env.srvc.GetTesting(context.Background(), actor, tst.ID)
	requireErrCode(t, err, ErrCodeTestingNotFound)
}

func TestListTestings(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	other := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	env.addTesting(t, vac.ID, TestTheoretical, 50)
	env.addTesting(t, vac.ID, TestPractical, 50)
	env.addTesting(t, other.ID, TestTheoretical, 50)

	testings, err := env.srvc.ListTestings(context.Background(), authorActor(), vac.ID)
	require.NoError(t, err)
	assert.Len(t, testings, 2)
}

func TestQuestionCrudRespectsTestType(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	theo := env.addTesting(t, vac.ID, TestTheoretical, 50)
	prac := env.addTesting(t, vac.ID, TestPractical, 50)
	actor := authorActor()

	_, err := env.srvc.CreateTheoreticalQuestion(context.Background(), actor, prac.ID, CreateTheoQuestionInput{Content: "q"})
	requireErrCode(t, err, ErrCodeWrongTestType)

	_, err = env.srvc.CreatePracticalQuestion(context.Background(), actor, theo.ID, CreatePracQuestionInput{
		Content: "q", Language: "python3", Answer: "42",
	})
	requireErrCode(t, err, ErrCodeWrongTestType)
}

func TestTheoreticalQuestionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestTheoretical, 50)
	actor := authorActor()

	q, err := env.srvc.CreateTheoreticalQuestion(context.Background(), actor, tst.ID, CreateTheoQuestionInput{Content: "2+2?"})
	require.NoError(t, err)
	assert.Empty(t, q.AnswerOptions)

	q, err = env.srvc.CreateAnswerOption(context.Background(), actor, q.ID, CreateAnswerOptionInput{Content: "4", IsCorrect: true})
	require.NoError(t, err)
	q, err = env.srvc.CreateAnswerOption(context.Background(), actor, q.ID, CreateAnswerOptionInput{Content: "5", IsCorrect: false})
	require.NoError(t, err)
	require.Len(t, q.AnswerOptions, 2)
	require.NotNil(t, q.AnswerOptions[0].IsCorrect)
	assert.True(t, *q.AnswerOptions[0].IsCorrect, "author reads keep correct flags")

	content := "3+3?"
	q, err = env.srvc.UpdateTheoreticalQuestion(context.Background(), actor, q.ID, UpdateTheoQuestionInput{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "3+3?", q.Content)
	assert.Len(t, q.AnswerOptions, 2, "options survive a content update")

	require.NoError(t, env.srvc.DeleteTheoreticalQuestion(context.Background(), actor, q.ID))
	_, err = env.srvc.GetTheoreticalQuestion(context.Background(), actor, q.ID)
	requireErrCode(t, err, ErrCodeQuestionNotFound)
}

func TestPracticalQuestionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	vac := env.addVacancy(t, vacsrvc.VacancyOpened, 3)
	tst := env.addTesting(t, vac.ID, TestPractical, 50)
	actor := authorActor()

	q, err := env.srvc.CreatePracticalQuestion(context.Background(), actor, tst.ID, CreatePracQuestionInput{
		Content: "print 42", Language: "python3", Answer: "42",
	})
	require.NoError(t, err)
	assert.Equal(t, "python3", q.Language)

	_, err = env.srvc.CreatePracticalQuestion(context.Background(), actor, tst.ID, CreatePracQuestionInput{
		Content: "print 42", Language: "cobol", Answer: "42",
	})
	requireErrCode(t, err, ErrCodeUnknownLanguage)

	lang := "go"
	q, err = env.srvc.UpdatePracticalQuestion(context.Background(), actor, q.ID, UpdatePracQuestionInput{Language: &lang})
	require.NoError(t, err)
	assert.Equal(t, "go", q.Language)

	require.NoError(t, env.srvc.DeletePracticalQuestion(context.Background(), actor, q.ID))
	_, err = env.srvc.GetPracticalQuestion(context.Background(), actor, q.ID)
	requireErrCode(t, err, ErrCodeQuestionNotFound)
}
