package testsrvc

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type InMemTestingRepo struct {
	lock     sync.Mutex
	testings map[uuid.UUID]Testing
}

func NewInMemTestingRepo() *InMemTestingRepo {
	return &InMemTestingRepo{testings: make(map[uuid.UUID]Testing)}
}

func (m *InMemTestingRepo) Get(ctx context.Context, id uuid.UUID) (*Testing, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	t, ok := m.testings[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (m *InMemTestingRepo) ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]Testing, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	var testings []Testing
	for _, t := range m.testings {
		if t.VacancyID == vacancyID {
			testings = append(testings, t)
		}
	}
	sort.Slice(testings, func(i, j int) bool { return testings[i].CreatedAt.Before(testings[j].CreatedAt) })
	return testings, nil
}

func (m *InMemTestingRepo) Create(ctx context.Context, t Testing) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.testings[t.ID] = t
	return nil
}

func (m *InMemTestingRepo) Update(ctx context.Context, t Testing) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.testings[t.ID] = t
	return nil
}

func (m *InMemTestingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.testings, id)
	return nil
}

// InMemAttemptRepo keeps attempts in a map. ApprovedUsers needs testing and
// vacancy rows too, so the repo holds the sibling repos it would otherwise
// join against.
type InMemAttemptRepo struct {
	lock     sync.Mutex
	attempts map[uuid.UUID]Attempt

	testings  *InMemTestingRepo
	vacancies VacancyProvider
}

func NewInMemAttemptRepo(testings *InMemTestingRepo, vacancies VacancyProvider) *InMemAttemptRepo {
	return &InMemAttemptRepo{
		attempts:  make(map[uuid.UUID]Attempt),
		testings:  testings,
		vacancies: vacancies,
	}
}

func (m *InMemAttemptRepo) Create(ctx context.Context, a Attempt) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.attempts[a.ID] = a
	return nil
}

func (m *InMemAttemptRepo) GetFirst(ctx context.Context, userID uuid.UUID, testID uuid.UUID) (*Attempt, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	var first *Attempt
	for _, a := range m.attempts {
		if a.UserID != userID || a.TestID != testID {
			continue
		}
		if first == nil || a.CreatedAt.Before(first.CreatedAt) {
			a := a
			first = &a
		}
	}
	return first, nil
}

func (m *InMemAttemptRepo) ListByUser(ctx context.Context, userID uuid.UUID, testingID *uuid.UUID, limit int, offset int, orderBy string) ([]AttemptWithTest, error) {
	m.lock.Lock()
	var mine []Attempt
	for _, a := range m.attempts {
		if a.UserID != userID {
			continue
		}
		if testingID != nil && a.TestID != *testingID {
			continue
		}
		mine = append(mine, a)
	}
	m.lock.Unlock()

	var joined []AttemptWithTest
	for _, a := range mine {
		t, err := m.testings.Get(ctx, a.TestID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			continue
		}
		joined = append(joined, AttemptWithTest{Attempt: a, Test: *t})
	}
	if orderBy == "title" {
		sort.Slice(joined, func(i, j int) bool { return joined[i].Test.Title < joined[j].Test.Title })
	} else {
		sort.Slice(joined, func(i, j int) bool { return joined[i].CreatedAt.Before(joined[j].CreatedAt) })
	}
	if offset >= len(joined) {
		return nil, nil
	}
	joined = joined[offset:]
	if limit < len(joined) {
		joined = joined[:limit]
	}
	return joined, nil
}

func (m *InMemAttemptRepo) SetResult(ctx context.Context, attemptID uuid.UUID, percent int, status AttemptStatus) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	a, ok := m.attempts[attemptID]
	if !ok {
		return nil
	}
	a.Percent = percent
	a.Status = status
	m.attempts[attemptID] = a
	return nil
}

func (m *InMemAttemptRepo) ApprovedUsers(ctx context.Context) ([]ApprovedUser, error) {
	m.lock.Lock()
	attempts := make([]Attempt, 0, len(m.attempts))
	for _, a := range m.attempts {
		attempts = append(attempts, a)
	}
	m.lock.Unlock()

	// best graded percent per (user, testing)
	type userTestingKey struct {
		userID uuid.UUID
		testID uuid.UUID
	}
	best := make(map[userTestingKey]int)
	for _, a := range attempts {
		if a.Status != AttemptGraded {
			continue
		}
		key := userTestingKey{userID: a.UserID, testID: a.TestID}
		if cur, ok := best[key]; !ok || a.Percent > cur {
			best[key] = a.Percent
		}
	}

	var rows []passedRow
	totals := make(map[uuid.UUID]int)
	seenVacancies := make(map[uuid.UUID]bool)
	for key, percent := range best {
		t, err := m.testings.Get(ctx, key.testID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			continue
		}
		v, err := m.vacancies.Get(ctx, t.VacancyID)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		if !seenVacancies[v.ID] {
			seenVacancies[v.ID] = true
			siblings, err := m.testings.ListByVacancy(ctx, v.ID)
			if err != nil {
				return nil, err
			}
			totals[v.ID] = len(siblings)
		}
		if percent < t.CorrectPercent {
			continue
		}
		rows = append(rows, passedRow{
			UserID:           key.userID,
			VacancyID:        v.ID,
			VacancyTitle:     v.Title,
			VacancyState:     v.State,
			VacancyType:      v.Type,
			VacancyCreatedAt: v.CreatedAt,
			TestingID:        t.ID,
			TestingTitle:     t.Title,
			BestPercent:      percent,
		})
	}
	return buildApproved(rows, totals), nil
}

type InMemTheoQuestionRepo struct {
	lock      sync.Mutex
	questions map[uuid.UUID]TheoreticalQuestion
	options   *InMemAnswerOptionRepo
}

func NewInMemTheoQuestionRepo(options *InMemAnswerOptionRepo) *InMemTheoQuestionRepo {
	return &InMemTheoQuestionRepo{
		questions: make(map[uuid.UUID]TheoreticalQuestion),
		options:   options,
	}
}

func (m *InMemTheoQuestionRepo) Get(ctx context.Context, id uuid.UUID, withOptions bool) (*TheoreticalQuestion, error) {
	m.lock.Lock()
	q, ok := m.questions[id]
	m.lock.Unlock()
	if !ok {
		return nil, nil
	}
	if withOptions {
		q.AnswerOptions = m.options.listByQuestion(id)
	}
	return &q, nil
}

func (m *InMemTheoQuestionRepo) ListByTesting(ctx context.Context, testingID uuid.UUID, withOptions bool) ([]TheoreticalQuestion, error) {
	m.lock.Lock()
	var questions []TheoreticalQuestion
	for _, q := range m.questions {
		if q.TestingID == testingID {
			questions = append(questions, q)
		}
	}
	m.lock.Unlock()
	sort.Slice(questions, func(i, j int) bool { return questions[i].CreatedAt.Before(questions[j].CreatedAt) })
	if withOptions {
		for i := range questions {
			questions[i].AnswerOptions = m.options.listByQuestion(questions[i].ID)
		}
	}
	return questions, nil
}

func (m *InMemTheoQuestionRepo) Create(ctx context.Context, q TheoreticalQuestion) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	q.AnswerOptions = nil
	m.questions[q.ID] = q
	return nil
}

func (m *InMemTheoQuestionRepo) Update(ctx context.Context, q TheoreticalQuestion) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	q.AnswerOptions = nil
	m.questions[q.ID] = q
	return nil
}

func (m *InMemTheoQuestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.questions, id)
	return nil
}

type InMemPracQuestionRepo struct {
	lock      sync.Mutex
	questions map[uuid.UUID]PracticalQuestion
}

func NewInMemPracQuestionRepo() *InMemPracQuestionRepo {
	return &InMemPracQuestionRepo{questions: make(map[uuid.UUID]PracticalQuestion)}
}

func (m *InMemPracQuestionRepo) Get(ctx context.Context, id uuid.UUID) (*PracticalQuestion, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	q, ok := m.questions[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (m *InMemPracQuestionRepo) ListByTesting(ctx context.Context, testingID uuid.UUID) ([]PracticalQuestion, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	var questions []PracticalQuestion
	for _, q := range m.questions {
		if q.TestingID == testingID {
			questions = append(questions, q)
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].CreatedAt.Before(questions[j].CreatedAt) })
	return questions, nil
}

func (m *InMemPracQuestionRepo) Create(ctx context.Context, q PracticalQuestion) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.questions[q.ID] = q
	return nil
}

func (m *InMemPracQuestionRepo) Update(ctx context.Context, q PracticalQuestion) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.questions[q.ID] = q
	return nil
}

func (m *InMemPracQuestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.questions, id)
	return nil
}

type InMemAnswerOptionRepo struct {
	lock    sync.Mutex
	options map[uuid.UUID]AnswerOption
}

func NewInMemAnswerOptionRepo() *InMemAnswerOptionRepo {
	return &InMemAnswerOptionRepo{options: make(map[uuid.UUID]AnswerOption)}
}

func (m *InMemAnswerOptionRepo) Create(ctx context.Context, o AnswerOption) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.options[o.ID] = o
	return nil
}

func (m *InMemAnswerOptionRepo) listByQuestion(questionID uuid.UUID) []AnswerOption {
	m.lock.Lock()
	defer m.lock.Unlock()
	var options []AnswerOption
	for _, o := range m.options {
		if o.QuestionID == questionID {
			options = append(options, o)
		}
	}
	sort.Slice(options, func(i, j int) bool { return options[i].CreatedAt.Before(options[j].CreatedAt) })
	return options
}
