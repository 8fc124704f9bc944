package testsrvc

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hirelane/backend/auth"
	"github.com/hirelane/backend/judge"
	"github.com/hirelane/backend/vacsrvc"
	"github.com/stretchr/testify/require"
)

// stubJudge answers Submit with canned results keyed by the decoded source
// code, so each answer in a grading task can behave differently.
type stubJudge struct {
	results map[string]judge.SubmissionResult
	err     error
	calls   int
}

func (j *stubJudge) Submit(ctx context.Context, req judge.SubmissionRequest) (judge.SubmissionResult, error) {
	j.calls++
	if j.err != nil {
		return judge.SubmissionResult{}, j.err
	}
	decoded, err := base64.StdEncoding.DecodeString(req.SourceCode)
	if err != nil {
		return judge.SubmissionResult{}, err
	}
	res, ok := j.results[string(decoded)]
	if !ok {
		return judge.SubmissionResult{Status: judge.SubmissionStatus{ID: 3, Description: "Accepted"}}, nil
	}
	return res, nil
}

func b64(s string) *string {
	enc := base64.StdEncoding.EncodeToString([]byte(s))
	return &enc
}

func acceptedWithStdout(stdout string) judge.SubmissionResult {
	return judge.SubmissionResult{
		Stdout: b64(stdout),
		Status: judge.SubmissionStatus{ID: 3, Description: "Accepted"},
	}
}

func runtimeError(stderr string) judge.SubmissionResult {
	return judge.SubmissionResult{
		Stderr: b64(stderr),
		Status: judge.SubmissionStatus{ID: 11, Description: "Runtime Error (NZEC)"},
	}
}

type testEnv struct {
	srvc      *TestingSrvc
	vacancies *vacsrvc.InMemVacancyRepo
	testings  *InMemTestingRepo
	attempts  *InMemAttemptRepo
	theoQs    *InMemTheoQuestionRepo
	pracQs    *InMemPracQuestionRepo
	options   *InMemAnswerOptionRepo
	judge     *stubJudge

	// base is what the service clock returns until advance() moves it.
	base time.Time
	now  *time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	vacancies := vacsrvc.NewInMemVacancyRepo()
	testings := NewInMemTestingRepo()
	attempts := NewInMemAttemptRepo(testings, vacancies)
	options := NewInMemAnswerOptionRepo()
	theoQs := NewInMemTheoQuestionRepo(options)
	pracQs := NewInMemPracQuestionRepo()
	judgeStub := &stubJudge{results: make(map[string]judge.SubmissionResult)}

	grader := NewGrader(attempts, judgeStub)
	queue := &SyncGradeQueue{Grader: grader}

	srvc := NewTestingSrvc(
		auth.NewGuard(),
		testings, attempts, theoQs, pracQs, options,
		vacancies, judgeStub, queue,
	)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	now := base
	srvc.now = func() time.Time { return now }

	return &testEnv{
		srvc:      srvc,
		vacancies: vacancies,
		testings:  testings,
		attempts:  attempts,
		theoQs:    theoQs,
		pracQs:    pracQs,
		options:   options,
		judge:     judgeStub,
		base:      base,
		now:       &now,
	}
}

func (e *testEnv) advance(d time.Duration) {
	*e.now = e.now.Add(d)
}

func (e *testEnv) addVacancy(t *testing.T, state vacsrvc.VacancyState, testTimeDays int) vacsrvc.Vacancy {
	t.Helper()
	v := vacsrvc.Vacancy{
		ID:        uuid.New(),
		Title:     "Backend Engineer",
		Content:   "build services",
		Type:      vacsrvc.VacancyInternship,
		State:     state,
		TestTime:  testTimeDays,
		CreatedAt: e.base,
	}
	require.NoError(t, e.vacancies.Create(context.Background(), v))
	return v
}

func (e *testEnv) addTesting(t *testing.T, vacancyID uuid.UUID, typ TestType, correctPercent int) Testing {
	t.Helper()
	tst := Testing{
		ID:             uuid.New(),
		Title:          "Screening",
		Content:        "answer everything",
		Type:           typ,
		CorrectPercent: correctPercent,
		VacancyID:      vacancyID,
		CreatedAt:      e.base,
	}
	require.NoError(t, e.testings.Create(context.Background(), tst))
	return tst
}

// addTheoQuestion creates a question with one option per flag in corrects.
// Returned options follow the corrects order.
func (e *testEnv) addTheoQuestion(t *testing.T, testingID uuid.UUID, corrects ...bool) (TheoreticalQuestion, []AnswerOption) {
	t.Helper()
	q := TheoreticalQuestion{
		ID:        uuid.New(),
		Content:   "pick one",
		TestingID: testingID,
		CreatedAt: e.base,
	}
	require.NoError(t, e.theoQs.Create(context.Background(), q))

	opts := make([]AnswerOption, 0, len(corrects))
	for i, correct := range corrects {
		correct := correct
		opt := AnswerOption{
			ID:         uuid.New(),
			Content:    "option",
			IsCorrect:  &correct,
			QuestionID: q.ID,
			CreatedAt:  e.base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, e.options.Create(context.Background(), opt))
		opts = append(opts, opt)
	}
	return q, opts
}

func (e *testEnv) addPracQuestion(t *testing.T, testingID uuid.UUID, answer string) PracticalQuestion {
	t.Helper()
	q := PracticalQuestion{
		ID:        uuid.New(),
		Content:   "print the answer",
		Language:  "python3",
		Answer:    answer,
		TestingID: testingID,
		CreatedAt: e.base,
	}
	require.NoError(t, e.pracQs.Create(context.Background(), q))
	return q
}

func candidateActor() auth.Actor {
	return auth.NewActor(uuid.New(), auth.UserStateActive, []auth.Permission{
		auth.PermStartTesting,
		auth.PermCompleteTesting,
		auth.PermGetSelfTestResults,
	})
}

func authorActor() auth.Actor {
	return auth.NewActor(uuid.New(), auth.UserStateActive, []auth.Permission{
		auth.PermCreateTesting,
		auth.PermUpdateTesting,
		auth.PermDeleteTesting,
		auth.PermGetTesting,
		auth.PermGetUserTestResults,
	})
}
