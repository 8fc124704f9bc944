package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/hirelane/backend/httpjson"
	"github.com/hirelane/backend/testsrvc"
)

func (httpserver *HttpServer) startTheoretical(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	testingID, err := urlParamUUID(r, "testingId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	questions, err := httpserver.testSrvc.StartTheoretical(r.Context(), actor, testingID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, questions)
}

func (httpserver *HttpServer) startPractical(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	testingID, err := urlParamUUID(r, "testingId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	questions, err := httpserver.testSrvc.StartPractical(r.Context(), actor, testingID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, questions)
}

func (httpserver *HttpServer) completeTheoretical(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	testingID, err := urlParamUUID(r, "testingId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	type completeRequest struct {
		Answers []testsrvc.AnswerToTheoreticalQuestion `json:"answers"`
	}
	var request completeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	attempt, err := httpserver.testSrvc.CompleteTheoretical(r.Context(), actor, testingID, request.Answers)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	httpjson.WriteSuccessJson(w, attempt)
}

func (httpserver *HttpServer) completePractical(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	testingID, err := urlParamUUID(r, "testingId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	type completeRequest struct {
		Answers []testsrvc.AnswerToPracticalQuestion `json:"answers"`
	}
	var request completeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	attempt, err := httpserver.testSrvc.CompletePractical(r.Context(), actor, testingID, request.Answers)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	httpjson.WriteSuccessJson(w, attempt)
}

func (httpserver *HttpServer) listAttempts(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	var testingID *uuid.UUID
	if v := r.URL.Query().Get("testing_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		testingID = &id
	}

	page, perPage := pagingParams(r)
	attempts, err := httpserver.testSrvc.ListAttempts(r.Context(), actor, testingID, page, perPage, r.URL.Query().Get("order_by"))
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, attempts)
}

func (httpserver *HttpServer) getApprovedUsers(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	approved, err := httpserver.testSrvc.GetApprovedUsers(r.Context(), actor)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, approved)
}

func (httpserver *HttpServer) executeProgram(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	type executeRequest struct {
		Code     string  `json:"code"`
		Language string  `json:"language"`
		Answer   *string `json:"answer"`
	}
	var request executeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, err := httpserver.testSrvc.ExecuteProgram(r.Context(), actor, request.Code, request.Language, request.Answer)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, result)
}
