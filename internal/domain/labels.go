package domain

import "strings"

// Rating is the five-step scale shared by mood and appetite.
type Rating string

const (
	RatingVeryGood Rating = "very-good"
	RatingGood     Rating = "good"
	RatingNeutral  Rating = "neutral"
	RatingBad      Rating = "bad"
	RatingVeryBad  Rating = "very-bad"
)

type Activity string

const (
	ActivityVeryActive Activity = "very-active"
	ActivityActive     Activity = "active"
	ActivityNeutral    Activity = "neutral"
	ActivityQuiet      Activity = "quiet"
	ActivityVeryQuiet  Activity = "very-quiet"
)

// EmotionLevel is derived from the health score only.
type EmotionLevel string

const (
	EmotionVeryGood EmotionLevel = "very-good"
	EmotionGood     EmotionLevel = "good"
	EmotionNeutral  EmotionLevel = "neutral"
	EmotionBad      EmotionLevel = "bad"
	EmotionVeryBad  EmotionLevel = "very-bad"
)

var ratingLabels = map[Rating]string{
	RatingVeryGood: "매우 좋음",
	RatingGood:     "좋음",
	RatingNeutral:  "보통",
	RatingBad:      "나쁨",
	RatingVeryBad:  "매우 나쁨",
}

var activityLabels = map[Activity]string{
	ActivityVeryActive: "매우 활발",
	ActivityActive:     "활발",
	ActivityNeutral:    "보통",
	ActivityQuiet:      "조용",
	ActivityVeryQuiet:  "매우 조용",
}

// Label returns the Korean display label.
func (r Rating) Label() string {
	if l, ok := ratingLabels[r]; ok {
		return l
	}
	return ratingLabels[RatingNeutral]
}

func (r Rating) Positive() bool {
	return r == RatingVeryGood || r == RatingGood
}

func (r Rating) Negative() bool {
	return r == RatingBad || r == RatingVeryBad
}

func (a Activity) Label() string {
	if l, ok := activityLabels[a]; ok {
		return l
	}
	return activityLabels[ActivityNeutral]
}

func (a Activity) Lively() bool {
	return a == ActivityVeryActive || a == ActivityActive
}

func (a Activity) Sluggish() bool {
	return a == ActivityQuiet || a == ActivityVeryQuiet
}

func (e EmotionLevel) Label() string {
	return Rating(e).Label()
}

// AtLeastGood reports whether the level is good or very good.
func (e EmotionLevel) AtLeastGood() bool {
	return e == EmotionVeryGood || e == EmotionGood
}

// ParseRating accepts either the slug ("very-good") or the Korean label
// ("매우 좋음").
func ParseRating(raw string) (Rating, bool) {
	key := normalizeLabel(raw)
	for r, label := range ratingLabels {
		if key == normalizeLabel(string(r)) || key == normalizeLabel(label) {
			return r, true
		}
	}
	return RatingNeutral, false
}

func ParseActivity(raw string) (Activity, bool) {
	key := normalizeLabel(raw)
	for a, label := range activityLabels {
		if key == normalizeLabel(string(a)) || key == normalizeLabel(label) {
			return a, true
		}
	}
	return ActivityNeutral, false
}

// normalizeLabel folds case and drops separators, so "Very_Good",
// "very good" and "매우좋음" match their canonical forms.
func normalizeLabel(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.NewReplacer("-", "", "_", "", " ", "", "\t", "").Replace(s)
}
