package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/hirelane/backend/httpjson"
)

func (httpserver *HttpServer) createVacancyFile(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	vacancyID, err := urlParamUUID(r, "vacancyId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	type createFileRequest struct {
		Filename    string `json:"filename"`
		ContentType string `json:"content_type"`
	}
	var request createFileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	upload, err := httpserver.vacSrvc.CreateVacancyFile(r.Context(), actor, vacancyID, request.Filename, request.ContentType)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	httpjson.WriteSuccessJson(w, upload)
}

func (httpserver *HttpServer) confirmVacancyFile(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	fileID, err := urlParamUUID(r, "fileId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := httpserver.vacSrvc.ConfirmVacancyFile(r.Context(), actor, fileID); err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, fileID.String())
}

func (httpserver *HttpServer) listVacancyFiles(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	vacancyID, err := urlParamUUID(r, "vacancyId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	files, err := httpserver.vacSrvc.ListVacancyFiles(r.Context(), actor, vacancyID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, files)
}

// poster uploads come in as the raw image body, capped at 10 MiB
const maxPosterBytes = 10 << 20

func (httpserver *HttpServer) uploadVacancyPoster(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	vacancyID, err := urlParamUUID(r, "vacancyId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPosterBytes))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
		return
	}

	vacancy, err := httpserver.vacSrvc.UploadPoster(r.Context(), actor, vacancyID, body)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpserver.cache.Delete(vacancyGetCacheKey(vacancyID.String()))
	httpjson.WriteSuccessJson(w, vacancy)
}
