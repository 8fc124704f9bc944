package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hirelane/backend/httpjson"
	"github.com/hirelane/backend/vacsrvc"
)

func (httpserver *HttpServer) createVacancy(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	var request vacsrvc.CreateVacancyInput
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	vacancy, err := httpserver.vacSrvc.CreateVacancy(r.Context(), actor, request)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	httpjson.WriteSuccessJson(w, vacancy)
}

const vacancyGetCacheKeyPrefix = "vacancy_get:"

func vacancyGetCacheKey(vacancyId string) string {
	return fmt.Sprintf("%s%s", vacancyGetCacheKeyPrefix, vacancyId)
}

func (httpserver *HttpServer) getVacancy(w http.ResponseWriter, r *http.Request) {
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
	cacheKey := vacancyGetCacheKey(vacancyID.String())

	if cached, found := httpserver.cache.Get(cacheKey); found {
		if vacancy, ok := cached.(*vacsrvc.Vacancy); ok {
			httpjson.WriteSuccessJson(w, vacancy)
			return
		}
	}

	result, err, _ := httpserver.sfGroup.Do(cacheKey, func() (interface{}, error) {
		if cached, found := httpserver.cache.Get(cacheKey); found {
			if vacancy, ok := cached.(*vacsrvc.Vacancy); ok {
				return vacancy, nil
			}
		}

		vacancy, err := httpserver.vacSrvc.GetVacancy(r.Context(), actor, vacancyID)
		if err != nil {
			return nil, err
		}

		httpserver.cache.Set(cacheKey, vacancy, 0)
		return vacancy, nil
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	vacancy, _ := result.(*vacsrvc.Vacancy)
	httpjson.WriteSuccessJson(w, vacancy)
}

func (httpserver *HttpServer) listVacancies(w http.ResponseWriter, r *http.Request) {
	actor, err := requestActor(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	page, perPage := pagingParams(r)
	vacancies, err := httpserver.vacSrvc.ListVacancies(r.Context(), actor, page, perPage, r.URL.Query().Get("order_by"))
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, vacancies)
}

func (httpserver *HttpServer) updateVacancy(w http.ResponseWriter, r *http.Request) {
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

	var request vacsrvc.UpdateVacancyInput
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	vacancy, err := httpserver.vacSrvc.UpdateVacancy(r.Context(), actor, vacancyID, request)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpserver.cache.Delete(vacancyGetCacheKey(vacancyID.String()))
	httpjson.WriteSuccessJson(w, vacancy)
}

func (httpserver *HttpServer) deleteVacancy(w http.ResponseWriter, r *http.Request) {
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

	if err := httpserver.vacSrvc.DeleteVacancy(r.Context(), actor, vacancyID); err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpserver.cache.Delete(vacancyGetCacheKey(vacancyID.String()))
	httpjson.WriteSuccessJson(w, chi.URLParam(r, "vacancyId"))
}
