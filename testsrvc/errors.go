package testsrvc

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hirelane/backend/srvcerror"
)

const ErrCodeTestingNotFound = "testing_not_found"

func ErrTestingNotFound(id uuid.UUID) *srvcerror.Error {
	return srvcerror.NewNotFound(
		ErrCodeTestingNotFound,
		fmt.Sprintf("testing with id %s was not found", id),
	)
}

const ErrCodeWrongTestType = "wrong_test_type"

func ErrWrongTestType(id uuid.UUID, want TestType) *srvcerror.Error {
	kind := "theoretical"
	if want == TestPractical {
		kind = "practical"
	}
	return srvcerror.NewBadRequest(
		ErrCodeWrongTestType,
		fmt.Sprintf("testing with id %s is not %s", id, kind),
	)
}

const ErrCodeVacancyNotFound = "vacancy_not_found"

func ErrVacancyNotFound(id uuid.UUID) *srvcerror.Error {
	return srvcerror.NewNotFound(
		ErrCodeVacancyNotFound,
		fmt.Sprintf("vacancy with id %s was not found", id),
	)
}

const ErrCodeVacancyNotOpened = "vacancy_not_opened"

func ErrVacancyNotOpened(id uuid.UUID) *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeVacancyNotOpened,
		fmt.Sprintf("vacancy with id %s is not opened", id),
	)
}

const ErrCodeTimeExpired = "time_expired"

func ErrTimeExpired() *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeTimeExpired,
		"the time to complete this test has expired",
	)
}

const ErrCodeQuestionNotFound = "question_not_found"

func ErrQuestionNotFound(id uuid.UUID) *srvcerror.Error {
	return srvcerror.NewNotFound(
		ErrCodeQuestionNotFound,
		fmt.Sprintf("question with id %s was not found", id),
	)
}

// ErrAnsweredQuestionUnknown differs from ErrQuestionNotFound: the candidate
// referenced a question that does not belong to the testing they are
// completing, which is a bad request rather than a missing resource.
func ErrAnsweredQuestionUnknown(id uuid.UUID) *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeQuestionNotFound,
		fmt.Sprintf("question with id %s was not found", id),
	)
}

const ErrCodeAnswerOptionNotFound = "answer_option_not_found"

func ErrAnswerOptionUnknown(id uuid.UUID) *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeAnswerOptionNotFound,
		fmt.Sprintf("answer option with id %s was not found", id),
	)
}

const ErrCodeInvalidTesting = "invalid_testing"

func ErrInvalidTitle() *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeInvalidTesting,
		fmt.Sprintf("title must be non-empty and at most %d characters", MaxTitleLen),
	)
}

func ErrInvalidContent() *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeInvalidTesting,
		fmt.Sprintf("content must be at most %d characters", MaxContentLen),
	)
}

func ErrInvalidAnswer() *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeInvalidTesting,
		fmt.Sprintf("reference answer must be at most %d characters", MaxAnswerLen),
	)
}

func ErrInvalidCorrectPercent() *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeInvalidTesting,
		"pass threshold must be between 0 and 100",
	)
}

const ErrCodeUnknownLanguage = "unknown_language"

func ErrUnknownLanguage(tag string) *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeUnknownLanguage,
		fmt.Sprintf("programming language %q is not supported", tag),
	)
}

const ErrCodePageNotFound = "page_not_found"

func ErrPageNotFound() *srvcerror.Error {
	return srvcerror.NewNotFound(
		ErrCodePageNotFound,
		"page was not found",
	)
}

const ErrCodeInvalidPerPage = "invalid_per_page"

func ErrInvalidPerPage() *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeInvalidPerPage,
		"invalid number of items per page",
	)
}
