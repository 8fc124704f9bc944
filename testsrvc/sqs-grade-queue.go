package testsrvc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/klauspost/compress/zstd"
)

// SqsGradeQueue pushes grading tasks through AWS SQS so grading can run in a
// separate process from the API. Bodies are zstd-compressed JSON, base64
// encoded to stay inside the SQS character set.
type SqsGradeQueue struct {
	client   *sqs.Client
	queueUrl string
}

func NewSqsGradeQueue(client *sqs.Client, queueUrl string) *SqsGradeQueue {
	return &SqsGradeQueue{client: client, queueUrl: queueUrl}
}

func (q *SqsGradeQueue) Enqueue(ctx context.Context, task GradeTask) error {
	jsonBody, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal grade task: %w", err)
	}

	zstdEncoder, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer zstdEncoder.Close()

	compressed := zstdEncoder.EncodeAll(jsonBody, make([]byte, 0, len(jsonBody)))
	encoded := base64.StdEncoding.EncodeToString(compressed)

	_, err = q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueUrl),
		MessageBody: aws.String(encoded),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to grade queue: %w", err)
	}
	return nil
}

// StartReceivingGradeTasks long-polls the queue until ctx is cancelled and
// feeds decoded tasks to the grader. Messages are deleted only after the
// grader returns; a crash mid-grade redelivers the task.
func StartReceivingGradeTasks(ctx context.Context, queueUrl string, client *sqs.Client, grader *Grader, logger *slog.Logger) error {
	zstdDecoder, err := zstd.NewReader(nil)
	if err != nil {
		return fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer zstdDecoder.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			output, err := client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
				QueueUrl:            aws.String(queueUrl),
				MaxNumberOfMessages: 10,
				WaitTimeSeconds:     1,
			})
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				logger.Error("failed to receive messages", "error", err)
				continue
			}

			for _, msg := range output.Messages {
				if msg.Body == nil || msg.ReceiptHandle == nil {
					logger.Error("received malformed sqs message")
					continue
				}

				compressed, err := base64.StdEncoding.DecodeString(*msg.Body)
				if err != nil {
					logger.Error("failed to decode message body", "error", err)
					continue
				}
				jsonBody, err := zstdDecoder.DecodeAll(compressed, nil)
				if err != nil {
					logger.Error("failed to decompress message body", "error", err)
					continue
				}

				var task GradeTask
				if err := json.Unmarshal(jsonBody, &task); err != nil {
					logger.Error("failed to unmarshal grade task", "error", err)
					continue
				}

				if err := grader.Grade(ctx, task); err != nil {
					logger.Error("grading task failed",
						"attempt_id", task.AttemptID, "error", err)
					continue
				}

				_, err = client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
					QueueUrl:      aws.String(queueUrl),
					ReceiptHandle: msg.ReceiptHandle,
				})
				if err != nil {
					logger.Error("failed to delete message", "error", err)
				}
			}
		}
	}
}
