package testsrvc

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirelane/backend/judge"
	"github.com/hirelane/backend/vacsrvc"
)

// TestType is the immutable classification of a testing: it decides which
// question subtype the testing owns and which completion path applies.
type TestType int

const (
	TestTheoretical TestType = 0
	TestPractical   TestType = 1
)

const (
	MaxTitleLen   = 255
	MaxContentLen = 32000
	MaxAnswerLen  = 255
)

// Testing is a single named test with a pass threshold, owned by a vacancy.
type Testing struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Type           TestType  `json:"type"`
	CorrectPercent int       `json:"correct_percent"`

	VacancyID uuid.UUID `json:"vacancy_id"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type TheoreticalQuestion struct {
	ID      uuid.UUID `json:"id"`
	Content string    `json:"content"`

	TestingID     uuid.UUID      `json:"testing_id"`
	AnswerOptions []AnswerOption `json:"answer_options"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// AnswerOption is one choice under a theoretical question. IsCorrect is a
// pointer so start() can null it out before the question reaches a
// candidate.
type AnswerOption struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	IsCorrect *bool     `json:"is_correct"`

	QuestionID uuid.UUID `json:"question_id"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type PracticalQuestion struct {
	ID       uuid.UUID `json:"id"`
	Content  string    `json:"content"`
	Language string    `json:"language"`
	Answer   string    `json:"answer"`

	TestingID uuid.UUID `json:"testing_id"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// AttemptStatus distinguishes a genuine zero score from one that simply has
// not been graded yet, and surfaces grading failures instead of freezing the
// attempt at zero.
type AttemptStatus int

const (
	AttemptPending AttemptStatus = 0
	AttemptGraded  AttemptStatus = 1
	AttemptFailed  AttemptStatus = 2
)

// Attempt is one scored submission linking a user to a testing. Percent is
// set at creation for theoretical attempts and patched exactly once by the
// grading worker for practical ones.
type Attempt struct {
	ID      uuid.UUID     `json:"id"`
	Percent int           `json:"percent"`
	Status  AttemptStatus `json:"status"`

	UserID uuid.UUID `json:"user_id"`
	TestID uuid.UUID `json:"test_id"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// AttemptWithTest is an attempt with its testing joined, the shape listing
// and completion calls return.
type AttemptWithTest struct {
	Attempt
	Test Testing `json:"test"`
}

// PassedTesting is one testing a user passed, with their best percent.
type PassedTesting struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Percent int       `json:"percent"`
}

// ApprovedUser is one (user, vacancy) pair where the user's best attempt
// passed every testing the vacancy owns.
type ApprovedUser struct {
	UserID uuid.UUID `json:"user_id"`

	VacancyID        uuid.UUID            `json:"vacancy_id"`
	VacancyTitle     string               `json:"vacancy_title"`
	VacancyState     vacsrvc.VacancyState `json:"vacancy_state"`
	VacancyType      vacsrvc.VacancyType  `json:"vacancy_type"`
	VacancyCreatedAt time.Time            `json:"vacancy_created_at"`

	Testings []PassedTesting `json:"testings"`
}

type AnswerToTheoreticalQuestion struct {
	QuestionID     uuid.UUID `json:"question_id"`
	AnswerOptionID uuid.UUID `json:"answer_option_id"`
}

type AnswerToPracticalQuestion struct {
	QuestionID uuid.UUID `json:"question_id"`
	Answer     string    `json:"answer"` // source code
}

// ProgramResult is the outcome of a one-off code run through the judge.
type ProgramResult struct {
	IsCorrect      bool    `json:"is_correct"`
	Stdout         *string `json:"stdout"`
	Stderr         *string `json:"stderr"`
	ServiceMessage string  `json:"service_message"`
}

type CreateTestingInput struct {
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	Type           TestType `json:"type"`
	CorrectPercent int      `json:"correct_percent"`
}

func (in CreateTestingInput) Validate() error {
	if in.Title == "" || len(in.Title) > MaxTitleLen {
		return ErrInvalidTitle()
	}
	if len(in.Content) > MaxContentLen {
		return ErrInvalidContent()
	}
	if in.CorrectPercent < 0 || in.CorrectPercent > 100 {
		return ErrInvalidCorrectPercent()
	}
	return nil
}

type UpdateTestingInput struct {
	Title          *string `json:"title"`
	Content        *string `json:"content"`
	CorrectPercent *int    `json:"correct_percent"`
}

func (in UpdateTestingInput) Validate() error {
	if in.Title != nil && (*in.Title == "" || len(*in.Title) > MaxTitleLen) {
		return ErrInvalidTitle()
	}
	if in.Content != nil && len(*in.Content) > MaxContentLen {
		return ErrInvalidContent()
	}
	if in.CorrectPercent != nil && (*in.CorrectPercent < 0 || *in.CorrectPercent > 100) {
		return ErrInvalidCorrectPercent()
	}
	return nil
}

type CreateTheoQuestionInput struct {
	Content string `json:"content"`
}

func (in CreateTheoQuestionInput) Validate() error {
	if len(in.Content) > MaxContentLen {
		return ErrInvalidContent()
	}
	return nil
}

type UpdateTheoQuestionInput struct {
	Content *string `json:"content"`
}

func (in UpdateTheoQuestionInput) Validate() error {
	if in.Content != nil && len(*in.Content) > MaxContentLen {
		return ErrInvalidContent()
	}
	return nil
}

type CreatePracQuestionInput struct {
	Content  string `json:"content"`
	Language string `json:"language"`
	Answer   string `json:"answer"`
}

func (in CreatePracQuestionInput) Validate() error {
	if len(in.Content) > MaxContentLen {
		return ErrInvalidContent()
	}
	if len(in.Answer) > MaxAnswerLen {
		return ErrInvalidAnswer()
	}
	if _, ok := judge.LanguageByTag(in.Language); !ok {
		return ErrUnknownLanguage(in.Language)
	}
	return nil
}

type UpdatePracQuestionInput struct {
	Content  *string `json:"content"`
	Language *string `json:"language"`
	Answer   *string `json:"answer"`
}

func (in UpdatePracQuestionInput) Validate() error {
	if in.Content != nil && len(*in.Content) > MaxContentLen {
		return ErrInvalidContent()
	}
	if in.Answer != nil && len(*in.Answer) > MaxAnswerLen {
		return ErrInvalidAnswer()
	}
	if in.Language != nil {
		if _, ok := judge.LanguageByTag(*in.Language); !ok {
			return ErrUnknownLanguage(*in.Language)
		}
	}
	return nil
}

type CreateAnswerOptionInput struct {
	Content   string `json:"content"`
	IsCorrect bool   `json:"is_correct"`
}

func (in CreateAnswerOptionInput) Validate() error {
	if len(in.Content) > MaxContentLen {
		return ErrInvalidContent()
	}
	return nil
}
