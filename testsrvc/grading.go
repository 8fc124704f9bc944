package testsrvc

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hirelane/backend/judge"
)

// GradeTask is one deferred practical-grading work item: the attempt to
// patch, the question set with reference answers, and the candidate's
// submissions. It is self-contained so it survives serialization onto an
// external queue.
type GradeTask struct {
	AttemptID uuid.UUID                   `json:"attempt_id"`
	Questions []PracticalQuestion         `json:"questions"`
	Answers   []AnswerToPracticalQuestion `json:"answers"`
}

// GradeQueue accepts grading tasks. Enqueue must not block on the grading
// itself; the request that spawned the task does not wait for a result.
type GradeQueue interface {
	Enqueue(ctx context.Context, task GradeTask) error
}

// Grader runs grading tasks. It owns its repo handle: tasks execute long
// after the originating request finished, so they never borrow its storage
// session.
type Grader struct {
	logger   *slog.Logger
	attempts AttemptRepo
	judge    judge.Client
}

func NewGrader(attempts AttemptRepo, judgeClient judge.Client) *Grader {
	return &Grader{
		logger:   slog.Default().With("module", "grader"),
		attempts: attempts,
		judge:    judgeClient,
	}
}

// Grade runs every submitted answer through the judge and patches the
// attempt. Answers referencing unknown questions are skipped silently; judge
// stderr or empty stdout marks the answer incorrect. A transport failure
// (after the client's own retries) marks the attempt FAILED instead of
// leaving it frozen at zero.
func (g *Grader) Grade(ctx context.Context, task GradeTask) error {
	questionsByID := make(map[uuid.UUID]PracticalQuestion, len(task.Questions))
	for _, q := range task.Questions {
		questionsByID[q.ID] = q
	}

	correct := 0
	for _, answer := range task.Answers {
		question, ok := questionsByID[answer.QuestionID]
		if !ok {
			continue
		}
		lang, ok := judge.LanguageByTag(question.Language)
		if !ok {
			g.logger.Warn("question has unknown language, skipping",
				"question_id", question.ID, "language", question.Language)
			continue
		}

		result, err := g.judge.Submit(ctx, judge.SubmissionRequest{
			SourceCode: base64.StdEncoding.EncodeToString([]byte(answer.Answer)),
			LanguageID: lang.JudgeID,
		})
		if err != nil {
			g.logger.Error("judge unreachable, marking attempt failed",
				"attempt_id", task.AttemptID, "error", err)
			if failErr := g.attempts.SetResult(ctx, task.AttemptID, 0, AttemptFailed); failErr != nil {
				g.logger.Error("failed to mark attempt failed",
					"attempt_id", task.AttemptID, "error", failErr)
			}
			return err
		}

		if result.Stderr != nil && *result.Stderr != "" {
			continue
		}
		if result.Stdout == nil || *result.Stdout == "" {
			continue
		}
		stdout, err := base64.StdEncoding.DecodeString(*result.Stdout)
		if err != nil {
			g.logger.Warn("judge returned undecodable stdout",
				"attempt_id", task.AttemptID, "question_id", question.ID)
			continue
		}
		if stripNewlines(string(stdout)) == stripNewlines(question.Answer) {
			correct++
		}
	}

	percent := scorePercent(correct, len(task.Questions))
	if err := g.attempts.SetResult(ctx, task.AttemptID, percent, AttemptGraded); err != nil {
		g.logger.Error("failed to store grading result",
			"attempt_id", task.AttemptID, "error", err)
		return err
	}
	g.logger.Info("practical attempt graded",
		"attempt_id", task.AttemptID, "percent", percent)
	return nil
}

// stripNewlines removes every newline before comparison, matching the
// judge's normalized-equality contract.
func stripNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "")
}

// ChanGradeQueue is the in-process queue: a buffered channel drained by
// worker goroutines. It is the default transport when no external queue is
// configured.
type ChanGradeQueue struct {
	tasks chan GradeTask
}

func NewChanGradeQueue(buffer int) *ChanGradeQueue {
	return &ChanGradeQueue{tasks: make(chan GradeTask, buffer)}
}

func (q *ChanGradeQueue) Enqueue(ctx context.Context, task GradeTask) error {
	select {
	case q.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// StartWorkers spawns n goroutines draining the queue until ctx is
// cancelled. Each task gets a background-derived context: grading must not
// die with the request that enqueued it.
func (q *ChanGradeQueue) StartWorkers(ctx context.Context, n int, grader *Grader) {
	for i := 0; i < n; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case task := <-q.tasks:
					if err := grader.Grade(ctx, task); err != nil {
						grader.logger.Error("grading task failed",
							"attempt_id", task.AttemptID, "error", err)
					}
				}
			}
		}()
	}
}

// SyncGradeQueue grades inline on Enqueue. Tests use it to make grading
// deterministic.
type SyncGradeQueue struct {
	Grader *Grader
}

func (q *SyncGradeQueue) Enqueue(ctx context.Context, task GradeTask) error {
	// errors are swallowed on purpose: the enqueuing request must succeed
	// even when grading fails, same as the async paths
	_ = q.Grader.Grade(ctx, task)
	return nil
}
