package testsrvc

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/hirelane/backend/auth"
	"github.com/hirelane/backend/judge"
)

// ExecuteProgram runs a single program through the judge and reports its
// output, without touching any attempt. Test authors use it to try out
// practical questions; when answer is given, IsCorrect compares stdout to it
// with newlines stripped.
func (s *TestingSrvc) ExecuteProgram(ctx context.Context, actor auth.Actor, code string, language string, answer *string) (*ProgramResult, error) {
	if err := s.require(actor, "execute"); err != nil {
		return nil, err
	}

	lang, ok := judge.LanguageByTag(language)
	if !ok {
		return nil, ErrUnknownLanguage(language)
	}

	result, err := s.judge.Submit(ctx, judge.SubmissionRequest{
		SourceCode: base64.StdEncoding.EncodeToString([]byte(code)),
		LanguageID: lang.JudgeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute program: %w", err)
	}

	out := ProgramResult{ServiceMessage: result.Status.Description}

	if result.Stderr != nil && *result.Stderr != "" {
		decoded, err := base64.StdEncoding.DecodeString(*result.Stderr)
		if err != nil {
			return nil, fmt.Errorf("failed to decode judge stderr: %w", err)
		}
		stderr := string(decoded)
		out.Stderr = &stderr
	}

	if result.Stdout != nil && *result.Stdout != "" {
		decoded, err := base64.StdEncoding.DecodeString(*result.Stdout)
		if err != nil {
			return nil, fmt.Errorf("failed to decode judge stdout: %w", err)
		}
		stdout := string(decoded)
		out.Stdout = &stdout
		out.IsCorrect = true
	}

	if answer != nil && out.Stdout != nil {
		out.IsCorrect = stripNewlines(*out.Stdout) == stripNewlines(*answer)
	}

	return &out, nil
}
