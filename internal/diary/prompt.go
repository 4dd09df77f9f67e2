package diary

import (
	"fmt"
	"strconv"
	"strings"

	"petdiary/internal/domain"
	"petdiary/internal/persona"
)

const (
	minLength   = 200
	maxLength   = 300
	minEmoji    = 2
	maxEmoji    = 3
	promptTitle = "오늘의 건강 기록"
)

// BannedOpenings are phrases the diary must not use.
var BannedOpenings = []string{"안녕", "일기를 쓴다", "하루를 기록한다"}

// BuildPrompt renders the single generation request sent to the provider.
func BuildPrompt(obs domain.Observation, score int, profile persona.Profile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "당신은 '%s'라는 이름의 %s입니다.\n", obs.Name, obs.Breed)
	fmt.Fprintf(&sb, "당신의 MBTI는 %s이며, 다음과 같은 성격적 특징을 가지고 있습니다:\n\n", profile.Code)
	sb.WriteString(profile.Traits)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "### %s\n", promptTitle)
	fmt.Fprintf(&sb, "- 체중: %skg\n", formatNumber(obs.Weight))
	fmt.Fprintf(&sb, "- 심박수: %s bpm\n", formatNumber(obs.HeartRate))
	fmt.Fprintf(&sb, "- 스트레스 지수: %s/10\n", formatNumber(obs.StressLevel))
	fmt.Fprintf(&sb, "- 기분: %s\n", obs.Mood.Label())
	fmt.Fprintf(&sb, "- 활동량: %s\n", obs.Activity.Label())
	fmt.Fprintf(&sb, "- 식욕: %s\n\n", obs.Appetite.Label())

	sb.WriteString("### 종합 건강 상태\n")
	fmt.Fprintf(&sb, "⭐ 오늘의 건강 점수: %d점 / 100점\n", score)
	fmt.Fprintf(&sb, "📊 컨디션: %s\n\n", profile.Level.Label())

	sb.WriteString("### 작성 규칙\n")
	sb.WriteString("1. **건강 상태를 최상단에 먼저 언급**\n")
	fmt.Fprintf(&sb, "2. **MBTI %s 성격에 맞는 말투 사용**: %s\n", profile.Code, profile.Style)
	fmt.Fprintf(&sb, "3. **감정 기복 반영**: 건강 상태(%s)에 따라 감정 표현\n", profile.Level.Label())
	fmt.Fprintf(&sb, "4. **분량**: %d-%d자\n", minLength, maxLength)
	fmt.Fprintf(&sb, "5. **이모지**: %d-%d개만 자연스럽게\n\n", minEmoji, maxEmoji)

	sb.WriteString("⚠️ 금지 사항:\n")
	quoted := make([]string, 0, len(BannedOpenings))
	for _, p := range BannedOpenings {
		quoted = append(quoted, strconv.Quote(p))
	}
	fmt.Fprintf(&sb, "- %s 같은 표현 절대 금지\n", strings.Join(quoted, ", "))
	sb.WriteString("- 항상 밝지 말고, 실제 컨디션에 맞는 감정 표현\n\n")

	fmt.Fprintf(&sb, "이제 %s의 목소리로 오늘 느낀 것을 자연스럽게 말해주세요:", obs.Name)
	return sb.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
