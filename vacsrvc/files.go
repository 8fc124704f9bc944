package vacsrvc

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"time"

	"github.com/google/uuid"
	"github.com/hirelane/backend/auth"
	"github.com/hirelane/backend/logger"
	"github.com/nfnt/resize"
	"github.com/wailsapp/mimetype"
)

const (
	uploadUrlExpiry   = 15 * time.Minute
	downloadUrlExpiry = 1 * time.Hour

	posterMaxWidth = 1280
)

// CreateVacancyFile registers an attachment and hands back a presigned PUT
// URL. The client uploads the body itself; ConfirmVacancyFile flips the
// uploaded flag afterwards.
func (s *VacancySrvc) CreateVacancyFile(ctx context.Context, actor auth.Actor, vacancyID uuid.UUID, filename string, contentType string) (*VacancyFileUpload, error) {
	if err := s.require(actor, "file_create"); err != nil {
		return nil, err
	}
	vacancy, err := s.repo.Get(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrVacancyNotFound(vacancyID)
	}

	file := VacancyFile{
		ID:          uuid.New(),
		Filename:    filename,
		ContentType: contentType,
		VacancyID:   vacancyID,
		IsUploaded:  false,
		CreatedAt:   s.now(),
	}
	if err := s.files.Create(ctx, file); err != nil {
		return nil, err
	}

	uploadUrl, err := s.bucket.PresignedPutURL(fileObjectKey(file.ID), contentType, uploadUrlExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload url: %w", err)
	}

	return &VacancyFileUpload{FileID: file.ID, UploadUrl: uploadUrl}, nil
}

func (s *VacancySrvc) ConfirmVacancyFile(ctx context.Context, actor auth.Actor, fileID uuid.UUID) error {
	if err := s.require(actor, "file_create"); err != nil {
		return err
	}
	file, err := s.files.Get(ctx, fileID)
	if err != nil {
		return err
	}
	if file == nil {
		return ErrFileNotFound(fileID)
	}

	exists, err := s.bucket.Exists(fileObjectKey(file.ID))
	if err != nil {
		return fmt.Errorf("failed to check uploaded object: %w", err)
	}
	if !exists {
		return ErrFileNotFound(fileID).SetDebug(fmt.Errorf("object %s missing in bucket", fileObjectKey(file.ID)))
	}

	file.IsUploaded = true
	now := s.now()
	file.UpdatedAt = &now
	return s.files.Update(ctx, *file)
}

// ListVacancyFiles returns uploaded attachments with download URLs.
func (s *VacancySrvc) ListVacancyFiles(ctx context.Context, actor auth.Actor, vacancyID uuid.UUID) ([]VacancyFileItem, error) {
	if err := s.require(actor, "file_list"); err != nil {
		return nil, err
	}
	vacancy, err := s.repo.Get(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrVacancyNotFound(vacancyID)
	}

	files, err := s.files.ListByVacancy(ctx, vacancyID)
	if err != nil {
		return nil, err
	}

	items := make([]VacancyFileItem, 0, len(files))
	for _, file := range files {
		if !file.IsUploaded {
			continue
		}
		url, err := s.bucket.PresignedGetURL(fileObjectKey(file.ID), downloadUrlExpiry)
		if err != nil {
			return nil, fmt.Errorf("failed to presign download url: %w", err)
		}
		items = append(items, VacancyFileItem{
			ID:          file.ID,
			Filename:    file.Filename,
			ContentType: file.ContentType,
			Url:         url,
			CreatedAt:   file.CreatedAt,
			UpdatedAt:   file.UpdatedAt,
		})
	}
	return items, nil
}

// UploadPoster stores the vacancy poster image. Unlike attachments the body
// goes through the backend so it can be validated and downscaled.
func (s *VacancySrvc) UploadPoster(ctx context.Context, actor auth.Actor, vacancyID uuid.UUID, body []byte) (*Vacancy, error) {
	if err := s.require(actor, "poster"); err != nil {
		return nil, err
	}
	vacancy, err := s.repo.Get(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrVacancyNotFound(vacancyID)
	}

	mtype := mimetype.Detect(body)
	if !mtype.Is("image/png") && !mtype.Is("image/jpeg") {
		return nil, ErrInvalidPoster(fmt.Sprintf("unsupported content type %s", mtype.String()))
	}

	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, ErrInvalidPoster("failed to decode image").SetDebug(err)
	}
	if img.Bounds().Dx() > posterMaxWidth {
		img = resize.Resize(posterMaxWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode poster: %w", err)
	}

	posterID := uuid.New()
	if _, err := s.bucket.Upload(buf.Bytes(), posterObjectKey(posterID), "image/jpeg"); err != nil {
		return nil, fmt.Errorf("failed to upload poster: %w", err)
	}

	vacancy.Poster = &posterID
	now := s.now()
	vacancy.UpdatedAt = &now
	if err := s.repo.Update(ctx, *vacancy); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("vacancy poster updated",
		"vacancy_id", vacancyID, "poster_id", posterID)
	return vacancy, nil
}

func fileObjectKey(fileID uuid.UUID) string {
	return fmt.Sprintf("vacancy-files/%s", fileID)
}

func posterObjectKey(posterID uuid.UUID) string {
	return fmt.Sprintf("posters/%s.jpg", posterID)
}
