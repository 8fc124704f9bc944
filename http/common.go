package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hirelane/backend/auth"
)

// requestActor builds the acting identity from the claims the jwt middleware
// stored on the context. Requests without a token carry nil claims and fail
// here with a 401.
func requestActor(r *http.Request) (auth.Actor, error) {
	claims, _ := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	return auth.ActorFromClaims(claims)
}

func urlParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// pagingParams reads page and per_page from the query, defaulting to the
// first page of twenty.
func pagingParams(r *http.Request) (page int, perPage int) {
	page, perPage = 1, 20
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := r.URL.Query().Get("per_page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			perPage = n
		}
	}
	return page, perPage
}
