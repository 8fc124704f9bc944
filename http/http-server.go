package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/hirelane/backend/auth"
	"github.com/hirelane/backend/testsrvc"
	"github.com/hirelane/backend/vacsrvc"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

type HttpServer struct {
	vacSrvc  *vacsrvc.VacancySrvc
	testSrvc *testsrvc.TestingSrvc
	router   *chi.Mux

	// vacancy reads are cached briefly; singleflight keeps concurrent
	// misses from stampeding the database
	cache   *cache.Cache
	sfGroup singleflight.Group
}

func NewHttpServer(
	vacSrvc *vacsrvc.VacancySrvc,
	testSrvc *testsrvc.TestingSrvc,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("hirelane", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"version": "v1.0",
			"env":     "dev",
		},
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		vacSrvc:  vacSrvc,
		testSrvc: testSrvc,
		router:   router,
		cache:    cache.New(5*time.Second, 10*time.Second),
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Router() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router

	r.Post("/vacancies", httpserver.createVacancy)
	r.Get("/vacancies", httpserver.listVacancies)
	r.Get("/vacancies/{vacancyId}", httpserver.getVacancy)
	r.Patch("/vacancies/{vacancyId}", httpserver.updateVacancy)
	r.Delete("/vacancies/{vacancyId}", httpserver.deleteVacancy)

	r.Post("/vacancies/{vacancyId}/files", httpserver.createVacancyFile)
	r.Get("/vacancies/{vacancyId}/files", httpserver.listVacancyFiles)
	r.Post("/vacancy-files/{fileId}/confirm", httpserver.confirmVacancyFile)
	r.Post("/vacancies/{vacancyId}/poster", httpserver.uploadVacancyPoster)

	r.Post("/vacancies/{vacancyId}/testings", httpserver.createTesting)
	r.Get("/vacancies/{vacancyId}/testings", httpserver.listTestings)
	r.Get("/testings/{testingId}", httpserver.getTesting)
	r.Patch("/testings/{testingId}", httpserver.updateTesting)
	r.Delete("/testings/{testingId}", httpserver.deleteTesting)

	r.Post("/testings/{testingId}/theoretical-questions", httpserver.createTheoreticalQuestion)
	r.Get("/testings/{testingId}/theoretical-questions", httpserver.listTheoreticalQuestions)
	r.Get("/theoretical-questions/{questionId}", httpserver.getTheoreticalQuestion)
	r.Patch("/theoretical-questions/{questionId}", httpserver.updateTheoreticalQuestion)
	r.Delete("/theoretical-questions/{questionId}", httpserver.deleteTheoreticalQuestion)
	r.Post("/theoretical-questions/{questionId}/options", httpserver.createAnswerOption)

	r.Post("/testings/{testingId}/practical-questions", httpserver.createPracticalQuestion)
	r.Get("/testings/{testingId}/practical-questions", httpserver.listPracticalQuestions)
	r.Get("/practical-questions/{questionId}", httpserver.getPracticalQuestion)
	r.Patch("/practical-questions/{questionId}", httpserver.updatePracticalQuestion)
	r.Delete("/practical-questions/{questionId}", httpserver.deletePracticalQuestion)

	r.Post("/testings/{testingId}/theoretical/start", httpserver.startTheoretical)
	r.Post("/testings/{testingId}/theoretical/complete", httpserver.completeTheoretical)
	r.Post("/testings/{testingId}/practical/start", httpserver.startPractical)
	r.Post("/testings/{testingId}/practical/complete", httpserver.completePractical)

	r.Get("/attempts", httpserver.listAttempts)
	r.Get("/approved-users", httpserver.getApprovedUsers)
	r.Post("/execute", httpserver.executeProgram)
}
