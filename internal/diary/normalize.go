package diary

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"petdiary/internal/domain"
	"petdiary/internal/persona"
)

const (
	DefaultName        = "반려동물"
	DefaultBreed       = "알 수 없음"
	DefaultWeight      = 5.0
	DefaultHeartRate   = 80.0
	DefaultStressLevel = 3.0
)

// DecodeRaw decodes a request body. An empty body yields the empty
// observation; anything that is not a JSON object is an error, which callers
// treat the same way.
func DecodeRaw(body []byte) (domain.RawObservation, error) {
	var raw domain.RawObservation
	if len(bytes.TrimSpace(body)) == 0 {
		return raw, nil
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.RawObservation{}, err
	}
	return raw, nil
}

// Normalize applies the neutral defaults to every missing or malformed
// field. It never fails.
func Normalize(raw domain.RawObservation) domain.Observation {
	code, _ := persona.NormalizeCode(stringField(raw.MBTI, ""))
	if code == "" {
		code = persona.DefaultCode
	}
	mood, _ := domain.ParseRating(stringField(raw.Mood, ""))
	activity, _ := domain.ParseActivity(stringField(raw.Activity, ""))
	appetite, _ := domain.ParseRating(stringField(raw.Appetite, ""))

	return domain.Observation{
		Name:        stringField(raw.PetName, DefaultName),
		Breed:       stringField(raw.Breed, DefaultBreed),
		Personality: code,
		Weight:      numberField(raw.Weight, DefaultWeight),
		HeartRate:   numberField(raw.HeartRate, DefaultHeartRate),
		StressLevel: numberField(raw.StressLevel, DefaultStressLevel),
		Mood:        mood,
		Activity:    activity,
		Appetite:    appetite,
	}
}

func stringField(raw json.RawMessage, def string) string {
	if isAbsent(raw) {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return def
	}
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

// numberField accepts JSON numbers and numeric strings.
func numberField(raw json.RawMessage, def float64) float64 {
	if isAbsent(raw) {
		return def
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return def
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return def
		}
		n = parsed
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return def
	}
	return n
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
