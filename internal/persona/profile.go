package persona

import (
	"strings"

	"petdiary/internal/domain"
	"petdiary/internal/scoring"
)

// DefaultCode is used when a request carries no personality code, and its
// style table backs codes that are not valid MBTI types.
const DefaultCode = "ENFP"

const defaultTraits = "자유롭고 활발한 성격입니다."

var traitsByCode = map[string]string{
	"ENFP": "외향적이고 활발하며, 호기심이 많고 자유로운 영혼입니다.",
	"INFP": "내향적이고 감성적이며, 깊은 생각과 상상을 좋아합니다.",
	"ENTP": "외향적이고 논리적이며, 새로운 아이디어에 흥미를 느낍니다.",
	"INTP": "내향적이고 분석적이며, 조용히 관찰하는 것을 좋아합니다.",
	"ESFP": "외향적이고 즉흥적이며, 지금 이 순간을 즐기는 것을 좋아합니다.",
	"ISFP": "내향적이고 감각적이며, 평화롭고 따뜻한 것을 선호합니다.",
	"ENFJ": "다정하고 사교적이며, 가족을 챙기고 분위기를 이끄는 것을 좋아합니다.",
	"INFJ": "조용하지만 속이 깊고, 가족의 기분을 누구보다 먼저 알아챕니다.",
	"ENTJ": "당당하고 주도적이며, 산책 코스도 직접 정하고 싶어 합니다.",
	"INTJ": "독립적이고 신중하며, 혼자만의 계획과 규칙을 중요하게 여깁니다.",
	"ESFJ": "애교가 많고 배려심이 깊으며, 모두와 함께 있을 때 가장 행복합니다.",
	"ISFJ": "온순하고 성실하며, 익숙한 사람과 익숙한 장소에서 안정감을 느낍니다.",
	"ESTJ": "규칙적이고 책임감이 강하며, 밥 시간과 산책 시간을 정확히 기억합니다.",
	"ISTJ": "차분하고 꼼꼼하며, 매일 같은 루틴을 지키는 것을 좋아합니다.",
	"ESTP": "대담하고 에너지가 넘치며, 몸으로 부딪히며 세상을 배우는 것을 좋아합니다.",
	"ISTP": "침착하고 관찰력이 좋으며, 필요할 때만 조용히 움직입니다.",
}

var stylesByCode = map[string]map[domain.EmotionLevel]string{
	"ENFP": {
		domain.EmotionVeryGood: "폭발적으로 신나는 (예: 와아! 완전 최고야!)",
		domain.EmotionGood:     "밝고 활기찬 (예: 오늘 진짜 좋아!)",
		domain.EmotionNeutral:  "여전히 친근한 (예: 그럭저럭 괜찮아)",
		domain.EmotionBad:      "힘들지만 애쓰는 (예: 조금 힘들긴 한데...)",
		domain.EmotionVeryBad:  "완전히 풀이 죽은 (예: 너무 힘들어...)",
	},
	"INFP": {
		domain.EmotionVeryGood: "깊이 행복한 (예: 마음이 벅차올라...)",
		domain.EmotionGood:     "따뜻하게 기뻐하는 (예: 마음이 따뜻해져)",
		domain.EmotionNeutral:  "조용히 성찰하는 (예: 생각에 잠기게 돼)",
		domain.EmotionBad:      "우울해지는 (예: 마음이 조금 무거워...)",
		domain.EmotionVeryBad:  "깊은 슬픔에 잠긴 (예: 마음이 너무 아파...)",
	},
	"ENTP": {
		domain.EmotionVeryGood: "재치 넘치고 들뜬 (예: 오늘 내 컨디션, 이건 연구 대상이야!)",
		domain.EmotionGood:     "장난스럽고 자신감 있는 (예: 역시 난 좀 괜찮지?)",
		domain.EmotionNeutral:  "시큰둥하게 따져보는 (예: 음, 나쁘진 않은데 뭔가 부족해)",
		domain.EmotionBad:      "투덜대며 이유를 찾는 (예: 왜 이렇게 몸이 무겁지?)",
		domain.EmotionVeryBad:  "기운 빠져 말수가 줄어든 (예: 오늘은... 생각하기도 싫어)",
	},
	"INTP": {
		domain.EmotionVeryGood: "담담하지만 만족스러운 (예: 관찰 결과, 오늘은 최상이야)",
		domain.EmotionGood:     "차분하게 흡족한 (예: 꽤 괜찮은 하루였군)",
		domain.EmotionNeutral:  "무덤덤하게 분석하는 (예: 평균적인 하루라고 판단돼)",
		domain.EmotionBad:      "조용히 불편함을 기록하는 (예: 뭔가 몸이 이상해...)",
		domain.EmotionVeryBad:  "움츠러든 (예: 그냥 혼자 있고 싶어...)",
	},
	"ESFP": {
		domain.EmotionVeryGood: "신나서 들썩이는 (예: 오늘 완전 파티야!)",
		domain.EmotionGood:     "명랑하고 즐거운 (예: 오늘 재밌었다!)",
		domain.EmotionNeutral:  "심심해하는 (예: 뭐 재밌는 거 없나~)",
		domain.EmotionBad:      "시무룩한 (예: 오늘은 좀 재미없어...)",
		domain.EmotionVeryBad:  "울적하고 축 처진 (예: 아무것도 하기 싫어...)",
	},
	"ISFP": {
		domain.EmotionVeryGood: "포근하게 행복한 (예: 햇살처럼 따뜻한 하루야)",
		domain.EmotionGood:     "잔잔하게 기분 좋은 (예: 오늘은 편안했어)",
		domain.EmotionNeutral:  "조용하고 차분한 (예: 그냥 조용히 지나간 하루)",
		domain.EmotionBad:      "예민해진 (예: 오늘은 건드리지 말아줘...)",
		domain.EmotionVeryBad:  "상처받은 (예: 마음도 몸도 지쳤어...)",
	},
	"ENFJ": {
		domain.EmotionVeryGood: "다정하게 들뜬 (예: 다들 같이 있어서 너무 행복해!)",
		domain.EmotionGood:     "따뜻하게 챙겨주는 (예: 오늘은 가족 모두 기분 좋아 보여)",
		domain.EmotionNeutral:  "상냥하게 살피는 (예: 다들 오늘 괜찮았을까?)",
		domain.EmotionBad:      "걱정이 많아진 (예: 내가 힘든 티를 내면 안 될 텐데...)",
		domain.EmotionVeryBad:  "기댈 곳을 찾는 (예: 오늘은 옆에 꼭 붙어 있고 싶어...)",
	},
	"INFJ": {
		domain.EmotionVeryGood: "고요하게 충만한 (예: 모든 게 제자리에 있는 느낌이야)",
		domain.EmotionGood:     "잔잔하게 감사하는 (예: 오늘 하루가 고마워)",
		domain.EmotionNeutral:  "속으로 생각이 많은 (예: 말은 안 했지만 이것저것 느꼈어)",
		domain.EmotionBad:      "혼자 삼키는 (예: 괜찮은 척했지만 사실 좀 지쳤어...)",
		domain.EmotionVeryBad:  "마음의 문을 닫은 (예: 오늘은 조용히 숨어 있고 싶어...)",
	},
	"ENTJ": {
		domain.EmotionVeryGood: "당당하고 의기양양한 (예: 오늘 하루, 완벽하게 해냈어!)",
		domain.EmotionGood:     "자신감 있게 지휘하는 (예: 산책 코스는 역시 내가 골라야지)",
		domain.EmotionNeutral:  "다음 계획을 세우는 (예: 내일은 더 잘할 수 있어)",
		domain.EmotionBad:      "못마땅해하는 (예: 오늘 컨디션은 내 계획에 없었어...)",
		domain.EmotionVeryBad:  "자존심 상한 (예: 인정하기 싫지만 오늘은 졌어...)",
	},
	"INTJ": {
		domain.EmotionVeryGood: "절제된 만족감의 (예: 계획대로 완벽한 하루였다)",
		domain.EmotionGood:     "차분하게 인정하는 (예: 오늘은 합격점이야)",
		domain.EmotionNeutral:  "냉정하게 평가하는 (예: 특별할 것 없는 하루였다)",
		domain.EmotionBad:      "거리를 두는 (예: 오늘은 혼자 생각할 시간이 필요해...)",
		domain.EmotionVeryBad:  "굳게 입을 다문 (예: 아무도 방해하지 않았으면 해...)",
	},
	"ESFJ": {
		domain.EmotionVeryGood: "애교 가득 신나는 (예: 다 같이 있어서 최고로 좋아!)",
		domain.EmotionGood:     "살갑고 다정한 (예: 오늘 많이 쓰다듬어 줘서 좋았어)",
		domain.EmotionNeutral:  "관심을 기다리는 (예: 나 좀 더 봐주면 좋겠는데~)",
		domain.EmotionBad:      "서운해하는 (예: 오늘은 좀 외로웠어...)",
		domain.EmotionVeryBad:  "많이 속상한 (예: 안아줘... 너무 힘들어...)",
	},
	"ISFJ": {
		domain.EmotionVeryGood: "수줍게 행복한 (예: 오늘은 정말 포근하고 좋았어)",
		domain.EmotionGood:     "편안하고 안정된 (예: 익숙한 하루라서 좋았어)",
		domain.EmotionNeutral:  "묵묵히 지내는 (예: 늘 하던 대로 조용히 보냈어)",
		domain.EmotionBad:      "불안해하는 (예: 뭔가 평소랑 달라서 조금 무서워...)",
		domain.EmotionVeryBad:  "몸을 웅크린 (예: 담요 속에만 있고 싶어...)",
	},
	"ESTJ": {
		domain.EmotionVeryGood: "씩씩하고 뿌듯한 (예: 오늘 할 일 전부 완료!)",
		domain.EmotionGood:     "규칙적으로 만족하는 (예: 밥도 산책도 제시간에! 좋아)",
		domain.EmotionNeutral:  "할 일을 점검하는 (예: 오늘 일정은 무난하게 끝났어)",
		domain.EmotionBad:      "불만을 말하는 (예: 산책 시간이 밀린 건 용납 못 해...)",
		domain.EmotionVeryBad:  "기운이 꺾인 (예: 오늘은 규칙이고 뭐고 그냥 쉴래...)",
	},
	"ISTJ": {
		domain.EmotionVeryGood: "담백하게 만족하는 (예: 오늘도 루틴대로, 아주 좋았어)",
		domain.EmotionGood:     "차분하고 성실한 (예: 정해진 대로 잘 지냈어)",
		domain.EmotionNeutral:  "사실만 적는 (예: 밥 먹고, 산책하고, 잤어)",
		domain.EmotionBad:      "무뚝뚝하게 참는 (예: 컨디션이 평소 같지 않아...)",
		domain.EmotionVeryBad:  "조용히 버티는 (예: 오늘은 그냥 누워 있을게...)",
	},
	"ESTP": {
		domain.EmotionVeryGood: "거침없이 흥분한 (예: 오늘 완전 전력질주했어!)",
		domain.EmotionGood:     "활기차고 대담한 (예: 새로운 냄새 잔뜩 맡고 왔지!)",
		domain.EmotionNeutral:  "몸이 근질근질한 (예: 뭐 좀 신나는 일 없나?)",
		domain.EmotionBad:      "답답해하는 (예: 뛰고 싶은데 몸이 안 따라줘...)",
		domain.EmotionVeryBad:  "에너지가 바닥난 (예: 오늘은 꼼짝도 못 하겠어...)",
	},
	"ISTP": {
		domain.EmotionVeryGood: "쿨하게 기분 좋은 (예: 오늘, 꽤 괜찮았어)",
		domain.EmotionGood:     "여유롭고 느긋한 (예: 할 만한 하루였어)",
		domain.EmotionNeutral:  "말수 적은 (예: 별일 없었어)",
		domain.EmotionBad:      "혼자 있고 싶어하는 (예: 오늘은 좀 내버려 둬...)",
		domain.EmotionVeryBad:  "완전히 지친 (예: 아무 말도 하기 싫어...)",
	},
}

// Profile bundles everything the prompt needs to speak in character.
type Profile struct {
	Code   string
	Traits string
	Level  domain.EmotionLevel
	Style  string
}

// Resolve builds the profile for a personality code at a given health score.
func Resolve(code string, score int) Profile {
	level := scoring.LevelFor(score)
	return Profile{
		Code:   code,
		Traits: Traits(code),
		Level:  level,
		Style:  SpeakingStyle(code, level),
	}
}

func Traits(code string) string {
	if t, ok := traitsByCode[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return t
	}
	return defaultTraits
}

// SpeakingStyle looks up code, then level. Unknown codes use the DefaultCode
// table; unknown levels use the neutral entry.
func SpeakingStyle(code string, level domain.EmotionLevel) string {
	table, ok := stylesByCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		table = stylesByCode[DefaultCode]
	}
	if s, ok := table[level]; ok {
		return s
	}
	return table[domain.EmotionNeutral]
}

// NormalizeCode upper-cases the code and reports whether it is a well-formed
// four-letter MBTI type. Malformed codes are still returned so callers can
// carry them through.
func NormalizeCode(raw string) (string, bool) {
	mbti := strings.ToUpper(strings.TrimSpace(raw))
	if len(mbti) != 4 {
		return mbti, false
	}
	chars := []byte(mbti)
	if !contains(chars[0], "EI") || !contains(chars[1], "SN") || !contains(chars[2], "TF") || !contains(chars[3], "JP") {
		return mbti, false
	}
	return mbti, true
}

func contains(b byte, chars string) bool {
	return strings.ContainsRune(chars, rune(b))
}
