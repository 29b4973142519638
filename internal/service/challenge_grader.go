// internal/service/challenge_grader.go
package service

import (
	"context"
	"errors"
	"strings"

	"go_roadmap_progress/internal/middleware"
	"go_roadmap_progress/internal/model"

	"github.com/pmezard/go-difflib/difflib"
)

const timeoutError = "timeout"

// GradeChallenge はテストケースを保存順に1件ずつ実行して判定します
// ctx の期限が切れた時点で未評価のケースはすべて "timeout" で失敗扱い。リトライはしない
func GradeChallenge(ctx context.Context, exec Executor, language model.Language, code string, cases []model.TestCase) ([]model.CaseResult, bool) {
	logger := middleware.GetLogger(ctx)
	details := make([]model.CaseResult, 0, len(cases))
	allPassed := len(cases) > 0

	for i, tc := range cases {
		result := model.CaseResult{Index: i + 1, ExpectedOutput: tc.ExpectedOutput}

		if ctx.Err() != nil {
			result.Error = timeoutError
			details = append(details, result)
			allPassed = false
			continue
		}

		res, err := exec.Execute(ctx, ExecutionRequest{Code: code, Language: language, Stdin: tc.Stdin})
		switch {
		case err != nil && (ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded)):
			result.Error = timeoutError
		case err != nil:
			logger.Warn("Test case execution failed", "case", i+1, "error", err)
			result.Error = "execution failed: " + err.Error()
		default:
			result.Output = res.Output
			result.Error = res.Error
			result.Passed = res.Success && outputsMatch(res.Output, tc.ExpectedOutput)
			if res.Success && !result.Passed {
				result.Diff = outputDiff(tc.ExpectedOutput, res.Output)
			}
		}

		if !result.Passed {
			allPassed = false
		}
		details = append(details, result)
	}

	return details, allPassed
}

func outputsMatch(actual, expected string) bool {
	return strings.TrimSpace(actual) == strings.TrimSpace(expected)
}

func outputDiff(expected, actual string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.TrimSpace(expected) + "\n"),
		B:        difflib.SplitLines(strings.TrimSpace(actual) + "\n"),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return ""
	}
	return diff
}
