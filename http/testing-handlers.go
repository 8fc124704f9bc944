package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hirelane/backend/httpjson"
	"github.com/hirelane/backend/testsrvc"
)

func (httpserver *HttpServer) createTesting(w http.ResponseWriter, r *http.Request) {
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

	var request testsrvc.CreateTestingInput
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	testing, err := httpserver.testSrvc.CreateTesting(r.Context(), actor, vacancyID, request)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	httpjson.WriteSuccessJson(w, testing)
}

func (httpserver *HttpServer) getTesting(w http.ResponseWriter, r *http.Request) {
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

	testing, err := httpserver.testSrvc.GetTesting(r.Context(), actor, testingID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, testing)
}

func (httpserver *HttpServer) listTestings(w http.ResponseWriter, r *http.Request) {
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

	testings, err := httpserver.testSrvc.ListTestings(r.Context(), actor, vacancyID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, testings)
}

func (httpserver *HttpServer) updateTesting(w http.ResponseWriter, r *http.Request) {
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

	var request testsrvc.UpdateTestingInput
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	testing, err := httpserver.testSrvc.UpdateTesting(r.Context(), actor, testingID, request)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, testing)
}

func (httpserver *HttpServer) deleteTesting(w http.ResponseWriter, r *http.Request) {
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

	if err := httpserver.testSrvc.DeleteTesting(r.Context(), actor, testingID); err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, chi.URLParam(r, "testingId"))
}
