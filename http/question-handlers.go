package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hirelane/backend/httpjson"
	"github.com/hirelane/backend/testsrvc"
)

func (httpserver *HttpServer) createTheoreticalQuestion(w http.ResponseWriter, r *http.Request) {
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

	var request testsrvc.CreateTheoQuestionInput
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	question, err := httpserver.testSrvc.CreateTheoreticalQuestion(r.Context(), actor, testingID, request)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	httpjson.WriteSuccessJson(w, question)
}

func (httpserver *HttpServer) getTheoreticalQuestion(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	questionID, err := urlParamUUID(r, "questionId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	question, err := httpserver.testSrvc.GetTheoreticalQuestion(r.Context(), actor, questionID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, question)
}

func (httpserver *HttpServer) listTheoreticalQuestions(w http.ResponseWriter, r *http.Request) {
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

	questions, err := httpserver.testSrvc.ListTheoreticalQuestions(r.Context(), actor, testingID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, questions)
}

func (httpserver *HttpServer) updateTheoreticalQuestion(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	questionID, err := urlParamUUID(r, "questionId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var request testsrvc.UpdateTheoQuestionInput
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	question, err := httpserver.testSrvc.UpdateTheoreticalQuestion(r.Context(), actor, questionID, request)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, question)
}

func (httpserver *HttpServer) deleteTheoreticalQuestion(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	questionID, err := urlParamUUID(r, "questionId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := httpserver.testSrvc.DeleteTheoreticalQuestion(r.Context(), actor, questionID); err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, chi.URLParam(r, "questionId"))
}

func (httpserver *HttpServer) createAnswerOption(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	questionID, err := urlParamUUID(r, "questionId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var request testsrvc.CreateAnswerOptionInput
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	question, err := httpserver.testSrvc.CreateAnswerOption(r.Context(), actor, questionID, request)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	httpjson.WriteSuccessJson(w, question)
}

func (httpserver *HttpServer) createPracticalQuestion(w http.ResponseWriter, r *http.Request) {
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

	var request testsrvc.CreatePracQuestionInput
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	question, err := httpserver.testSrvc.CreatePracticalQuestion(r.Context(), actor, testingID, request)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	httpjson.WriteSuccessJson(w, question)
}

func (httpserver *HttpServer) getPracticalQuestion(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	questionID, err := urlParamUUID(r, "questionId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	question, err := httpserver.testSrvc.GetPracticalQuestion(r.Context(), actor, questionID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, question)
}

func (httpserver *HttpServer) listPracticalQuestions(w http.ResponseWriter, r *http.Request) {
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

	questions, err := httpserver.testSrvc.ListPracticalQuestions(r.Context(), actor, testingID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, questions)
}

func (httpserver *HttpServer) updatePracticalQuestion(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	questionID, err := urlParamUUID(r, "questionId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var request testsrvc.UpdatePracQuestionInput
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	question, err := httpserver.testSrvc.UpdatePracticalQuestion(r.Context(), actor, questionID, request)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, question)
}

func (httpserver *HttpServer) deletePracticalQuestion(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	questionID, err := urlParamUUID(r, "questionId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := httpserver.testSrvc.DeletePracticalQuestion(r.Context(), actor, questionID); err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, chi.URLParam(r, "questionId"))
}
