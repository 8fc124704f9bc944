package vacsrvc

import (
	"time"

	"github.com/google/uuid"
)

type VacancyState int

const (
	VacancyClosed VacancyState = 0
	VacancyOpened VacancyState = 1
)

type VacancyType int

const (
	VacancyPractice   VacancyType = 0
	VacancyInternship VacancyType = 1
)

const (
	MaxTitleLen   = 255
	MaxContentLen = 32000
)

// Vacancy is a job or internship posting. Testings belong to exactly one
// vacancy and may only be touched while it is opened. TestTime is the number
// of days a candidate has to finish all of the vacancy's tests, counted from
// their first recorded attempt.
type Vacancy struct {
	ID       uuid.UUID    `json:"id"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Poster   *uuid.UUID   `json:"poster"`
	Type     VacancyType  `json:"type"`
	State    VacancyState `json:"state"`
	TestTime int          `json:"test_time"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// VacancyFile is an attachment row. The object itself lives in S3 under the
// file id; IsUploaded flips once the client confirms the presigned upload.
type VacancyFile struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	VacancyID   uuid.UUID `json:"vacancy_id"`
	IsUploaded  bool      `json:"is_uploaded"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// VacancyFileItem is what listing returns to callers: the row plus a
// time-limited download URL.
type VacancyFileItem struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Url         string    `json:"url"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// VacancyFileUpload pairs the created file row with the presigned URL the
// client must PUT the body to.
type VacancyFileUpload struct {
	FileID    uuid.UUID `json:"file_id"`
	UploadUrl string    `json:"upload_url"`
}

type CreateVacancyInput struct {
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Type     VacancyType  `json:"type"`
	State    VacancyState `json:"state"`
	TestTime int          `json:"test_time"`
}

func (in CreateVacancyInput) Validate() error {
	if in.Title == "" || len(in.Title) > MaxTitleLen {
		return ErrInvalidTitle()
	}
	if in.Content == "" || len(in.Content) > MaxContentLen {
		return ErrInvalidContent()
	}
	if in.TestTime < 0 {
		return ErrInvalidTestTime()
	}
	return nil
}

// UpdateVacancyInput patches only the fields that are set.
type UpdateVacancyInput struct {
	Title   *string       `json:"title"`
	Content *string       `json:"content"`
	Type    *VacancyType  `json:"type"`
	State   *VacancyState `json:"state"`
}

func (in UpdateVacancyInput) Validate() error {
	if in.Title != nil && (*in.Title == "" || len(*in.Title) > MaxTitleLen) {
		return ErrInvalidTitle()
	}
	if in.Content != nil && (*in.Content == "" || len(*in.Content) > MaxContentLen) {
		return ErrInvalidContent()
	}
	return nil
}
