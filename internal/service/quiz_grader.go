// internal/service/quiz_grader.go
package service

import (
	"fmt"

	"go_roadmap_progress/internal/model"
)

// QuizGrade は採点結果 (永続化前)
type QuizGrade struct {
	Score        int
	Passed       bool
	EarnedPoints int
}

// ValidateAnswerKeys は回答のキーがすべてクイズの設問IDであることを確認します
func ValidateAnswerKeys(quiz *model.Quiz, answers map[string]string) error {
	known := make(map[string]struct{}, len(quiz.Questions))
	for _, q := range quiz.Questions {
		known[q.QuestionID.String()] = struct{}{}
	}
	for key := range answers {
		if _, ok := known[key]; !ok {
			return model.NewAppError("UNKNOWN_QUESTION",
				fmt.Sprintf("設問 %s はこのクイズに含まれていません", key),
				"answers", model.ErrInvalidInput)
		}
	}
	return nil
}

// GradeQuiz は回答を採点します。一致判定は完全一致 (大文字小文字・空白の正規化なし)
// 未回答の設問は不正解扱い
func GradeQuiz(quiz *model.Quiz, answers map[string]string) (QuizGrade, error) {
	if err := ValidateAnswerKeys(quiz, answers); err != nil {
		return QuizGrade{}, err
	}

	score := 0
	for _, q := range quiz.Questions {
		answer, ok := answers[q.QuestionID.String()]
		if ok && answer == q.CorrectAnswer {
			score += q.QuestionXP
		}
	}

	return QuizGrade{
		Score:        score,
		Passed:       score >= quiz.MinXP,
		EarnedPoints: min(score, quiz.MaxXP),
	}, nil
}

// CreditDelta は最高点更新分だけを台帳に加算するための差分を返します
// prevBest は過去の提出済み受験の最高点 (hasPrev=false なら初回)
func CreditDelta(earned, prevBest int, hasPrev bool, maxXP int) int {
	prevEarned := 0
	if hasPrev {
		prevEarned = min(prevBest, maxXP)
	}
	return max(0, earned-prevEarned)
}
