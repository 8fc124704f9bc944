package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/hirelane/backend/auth"
	"github.com/hirelane/backend/conf"
	"github.com/hirelane/backend/http"
	"github.com/hirelane/backend/judge"
	"github.com/hirelane/backend/s3bucket"
	"github.com/hirelane/backend/testsrvc"
	"github.com/hirelane/backend/vacsrvc"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	cfg, err := conf.ReadFromEnv()
	if err != nil {
		slog.Error("failed to read config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, conf.GetPgConnStrFromEnv())
	if err != nil {
		slog.Error("failed to create pg pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	bucket, err := s3bucket.NewS3Bucket(cfg.S3Region, cfg.S3FileBucket)
	if err != nil {
		slog.Error("failed to init s3 bucket", "error", err)
		os.Exit(1)
	}

	guard := auth.NewGuard()
	judgeClient := judge.NewClient(cfg.JudgeHost)

	vacRepo := vacsrvc.NewPgVacancyRepo(pool)
	vacFileRepo := vacsrvc.NewPgVacancyFileRepo(pool)
	vacSrvc := vacsrvc.NewVacancySrvc(guard, vacRepo, vacFileRepo, bucket)

	testingRepo := testsrvc.NewPgTestingRepo(pool)
	attemptRepo := testsrvc.NewPgAttemptRepo(pool)
	theoQRepo := testsrvc.NewPgTheoQuestionRepo(pool)
	pracQRepo := testsrvc.NewPgPracQuestionRepo(pool)
	optionRepo := testsrvc.NewPgAnswerOptionRepo(pool)

	// the grader gets its own repo handle so grading never shares the
	// request path's storage session
	grader := testsrvc.NewGrader(testsrvc.NewPgAttemptRepo(pool), judgeClient)

	var queue testsrvc.GradeQueue
	if cfg.GradingSqsUrl != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			slog.Error("failed to load aws config", "error", err)
			os.Exit(1)
		}
		queue = testsrvc.NewSqsGradeQueue(sqs.NewFromConfig(awsCfg), cfg.GradingSqsUrl)
	} else {
		chanQueue := testsrvc.NewChanGradeQueue(100)
		chanQueue.StartWorkers(ctx, cfg.GradingWorkers, grader)
		queue = chanQueue
	}

	testSrvc := testsrvc.NewTestingSrvc(
		guard,
		testingRepo, attemptRepo, theoQRepo, pracQRepo, optionRepo,
		vacRepo,
		judgeClient, queue,
	)

	httpServer := http.NewHttpServer(vacSrvc, testSrvc, []byte(cfg.JwtKey))

	log.Printf("Starting server on %s", cfg.HttpAddr)
	err = httpServer.Start(cfg.HttpAddr)
	log.Printf("Server stopped with error: %v", err)
}
