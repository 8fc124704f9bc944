package vacsrvc

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hirelane/backend/srvcerror"
)

const ErrCodeVacancyNotFound = "vacancy_not_found"

func ErrVacancyNotFound(id uuid.UUID) *srvcerror.Error {
	return srvcerror.NewNotFound(
		ErrCodeVacancyNotFound,
		fmt.Sprintf("vacancy with id %s was not found", id),
	)
}

const ErrCodeFileNotFound = "vacancy_file_not_found"

func ErrFileNotFound(id uuid.UUID) *srvcerror.Error {
	return srvcerror.NewNotFound(
		ErrCodeFileNotFound,
		fmt.Sprintf("vacancy file with id %s was not found", id),
	)
}

const ErrCodeInvalidVacancy = "invalid_vacancy"

func ErrInvalidTitle() *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeInvalidVacancy,
		fmt.Sprintf("title must be non-empty and at most %d characters", MaxTitleLen),
	)
}

func ErrInvalidContent() *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeInvalidVacancy,
		fmt.Sprintf("content must be non-empty and at most %d characters", MaxContentLen),
	)
}

func ErrInvalidTestTime() *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeInvalidVacancy,
		"test time must not be negative",
	)
}

const ErrCodeInvalidPoster = "invalid_poster"

func ErrInvalidPoster(reason string) *srvcerror.Error {
	return srvcerror.NewBadRequest(
		ErrCodeInvalidPoster,
		fmt.Sprintf("invalid poster image: %s", reason),
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
