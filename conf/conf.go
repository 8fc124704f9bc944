package conf

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pelletier/go-toml/v2"
)

// Config carries everything cmd/server needs to wire the services. Values
// come from the environment; a TOML file pointed to by CONFIG_PATH overrides
// whatever it sets.
type Config struct {
	HttpAddr string `toml:"http_addr"`
	JwtKey   string `toml:"jwt_key"`

	JudgeHost string `toml:"judge_host"`

	S3Region     string `toml:"s3_region"`
	S3FileBucket string `toml:"s3_file_bucket"`

	GradingSqsUrl  string `toml:"grading_sqs_url"` // empty: in-proc queue
	GradingWorkers int    `toml:"grading_workers"`
}

func ReadFromEnv() (Config, error) {
	cfg := Config{
		HttpAddr:       ":8080",
		GradingWorkers: 4,
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HttpAddr = v
	}
	cfg.JwtKey = os.Getenv("JWT_KEY")
	cfg.JudgeHost = os.Getenv("JUDGE_HOST")
	cfg.S3Region = os.Getenv("S3_REGION")
	cfg.S3FileBucket = os.Getenv("S3_FILE_BUCKET")
	cfg.GradingSqsUrl = os.Getenv("GRADING_SQS_URL")
	if v := os.Getenv("GRADING_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GRADING_WORKERS: %w", err)
		}
		cfg.GradingWorkers = n
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		body, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := toml.Unmarshal(body, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if cfg.JwtKey == "" {
		return Config{}, fmt.Errorf("JWT_KEY is not set")
	}
	if cfg.JudgeHost == "" {
		return Config{}, fmt.Errorf("JUDGE_HOST is not set")
	}
	return cfg, nil
}

// GetPgConnStrFromEnv assembles the postgres connection string. Outside of
// local development the password lives in AWS Secrets Manager.
func GetPgConnStrFromEnv() string {
	host := os.Getenv("POSTGRES_HOST")
	var pw string
	if host == "localhost" {
		pw = os.Getenv("POSTGRES_PW")
	} else {
		secretName := os.Getenv("POSTGRES_PASSWORD_SECRET_NAME")
		secretValue, err := getSecretFromAWS(secretName)
		if err != nil {
			panic(fmt.Sprintf("failed to get postgres password from AWS: %v", err))
		}
		var secret struct {
			Password string `json:"password"`
		}
		if err := json.Unmarshal([]byte(secretValue), &secret); err != nil {
			panic(fmt.Sprintf("failed to parse postgres password secret: %v", err))
		}
		pw = secret.Password
	}
	user := os.Getenv("POSTGRES_USER")
	port := os.Getenv("POSTGRES_PORT")
	db := os.Getenv("POSTGRES_DB")
	ssl := os.Getenv("POSTGRES_SSLMODE")

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pw, db, ssl)
}

func getSecretFromAWS(secretName string) (string, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", err
	}
	svc := secretsmanager.NewFromConfig(cfg)
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result, err := svc.GetSecretValue(ctx, input)
	if err != nil {
		return "", err
	}
	return *result.SecretString, nil
}
