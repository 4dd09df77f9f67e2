package diary

import (
	"fmt"
	"strings"

	"petdiary/internal/domain"
	"petdiary/internal/scoring"
)

// Fallback builds a template diary from the observation alone. It recomputes
// the score itself and never returns an empty string.
func Fallback(obs domain.Observation) string {
	score := scoring.ForObservation(obs).Total()
	level := scoring.LevelFor(score)

	parts := []string{
		conditionLine(level, score),
		moodLine(obs.Mood),
		activityLine(obs.Activity),
		appetiteLine(obs.Appetite),
		closingLine(level),
	}
	return strings.Join(parts, "\n\n")
}

func conditionLine(level domain.EmotionLevel, score int) string {
	switch level {
	case domain.EmotionVeryGood:
		return fmt.Sprintf("오늘 컨디션 완전 최고야! 건강 점수 %d점! 🌟", score)
	case domain.EmotionGood:
		return fmt.Sprintf("오늘 몸 상태 좋아, 기분도 괜찮네! (건강 점수: %d점) 😊", score)
	case domain.EmotionNeutral:
		return fmt.Sprintf("컨디션은 그럭저럭... 나쁘진 않아. (건강: %d점)", score)
	case domain.EmotionBad:
		return fmt.Sprintf("오늘 좀 힘들어... 몸 상태가 안 좋아. (건강: %d점) 😔", score)
	default:
		return fmt.Sprintf("너무 힘들어... 컨디션 최악이야... (건강: %d점) 😰", score)
	}
}

func moodLine(mood domain.Rating) string {
	switch {
	case mood.Positive():
		return fmt.Sprintf("기분이 %s이어서 활기차게 보냈어! 🐾", mood.Label())
	case mood.Negative():
		return fmt.Sprintf("기분이 %s이라 힘든 하루였어...", mood.Label())
	default:
		return "그냥 평범한 하루였어."
	}
}

func activityLine(activity domain.Activity) string {
	switch {
	case activity.Lively():
		return fmt.Sprintf("오늘 %s하게 움직였더니 피곤하네 😅", activity.Label())
	case activity.Sluggish():
		return "별로 움직이지 않았어, 기운이 없었거든..."
	default:
		return "적당히 활동했어, 딱 좋았어."
	}
}

func appetiteLine(appetite domain.Rating) string {
	switch {
	case appetite.Positive():
		return fmt.Sprintf("식욕은 %s! 맛있게 잘 먹었어 🍖", appetite.Label())
	case appetite.Negative():
		return "식욕이 별로 없어서 조금만 먹었어..."
	default:
		return "밥은 적당히 먹었어."
	}
}

func closingLine(level domain.EmotionLevel) string {
	if level.AtLeastGood() {
		return "내일도 이렇게 좋으면 좋겠어! 😊"
	}
	return "내일은 나아지면 좋겠어..."
}
