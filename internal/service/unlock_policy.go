// internal/service/unlock_policy.go
package service

import (
	"go_roadmap_progress/internal/model"

	"github.com/google/uuid"
)

// LearnerProgress はアンロック判定に使う学習者の進捗スナップショットです
// 永続化層からは独立しており、サービスが組み立てて渡します
type LearnerProgress struct {
	Enrolled bool
	// CompletedLessonUnits は完了済みレッスンの LearningUnitID 集合
	CompletedLessonUnits map[uuid.UUID]bool
	// Units は対象ロードマップのユニット一覧 (順不同で可)
	Units []model.LearningUnit
}

// IsUnlocked は target ユニットが学習者に開放されているかを返します。副作用なし
//
//   - lesson / challenge: ロードマップに参加していること
//   - quiz: 参加済みかつ、target より前の位置にある lesson ユニットがすべて完了済みであること
//     (前方の quiz / challenge の合否は問わない)
func IsUnlocked(p LearnerProgress, target model.LearningUnit) bool {
	if !p.Enrolled {
		return false
	}

	switch target.UnitType {
	case model.UnitTypeQuiz:
		for _, u := range p.Units {
			if u.RoadmapID != target.RoadmapID || u.UnitType != model.UnitTypeLesson {
				continue
			}
			if u.Position < target.Position && !p.CompletedLessonUnits[u.LearningUnitID] {
				return false
			}
		}
		return true
	case model.UnitTypeLesson, model.UnitTypeChallenge:
		return true
	default:
		return false
	}
}

// FirstLockingLesson は quiz をブロックしている最初の未完了レッスンを返します (エラーメッセージ用)
func FirstLockingLesson(p LearnerProgress, target model.LearningUnit) (model.LearningUnit, bool) {
	var found model.LearningUnit
	ok := false
	for _, u := range p.Units {
		if u.RoadmapID != target.RoadmapID || u.UnitType != model.UnitTypeLesson {
			continue
		}
		if u.Position >= target.Position || p.CompletedLessonUnits[u.LearningUnitID] {
			continue
		}
		if !ok || u.Position < found.Position {
			found, ok = u, true
		}
	}
	return found, ok
}
