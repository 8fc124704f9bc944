package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/hirelane/backend/conf"
	"github.com/hirelane/backend/judge"
	"github.com/hirelane/backend/testsrvc"
)

// The grading worker drains the SQS grade queue in a process separate from
// the API server. It only needs the judge, the queue and an attempts handle.
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
	if cfg.GradingSqsUrl == "" {
		slog.Error("GRADING_SQS_URL is not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, conf.GetPgConnStrFromEnv())
	if err != nil {
		slog.Error("failed to create pg pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		slog.Error("failed to load aws config", "error", err)
		os.Exit(1)
	}

	grader := testsrvc.NewGrader(testsrvc.NewPgAttemptRepo(pool), judge.NewClient(cfg.JudgeHost))

	slog.Info("grading worker started", "queue", cfg.GradingSqsUrl)
	err = testsrvc.StartReceivingGradeTasks(ctx, cfg.GradingSqsUrl, sqs.NewFromConfig(awsCfg), grader, slog.Default())
	if err != nil && ctx.Err() == nil {
		slog.Error("grading worker stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("grading worker stopped")
}
