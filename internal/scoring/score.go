package scoring

import "petdiary/internal/domain"

const (
	MaxHeartRate = 25
	MaxStress    = 25
	MaxMood      = 20
	MaxActivity  = 15
	MaxAppetite  = 15
)

var moodScores = map[domain.Rating]int{
	domain.RatingVeryGood: 20,
	domain.RatingGood:     15,
	domain.RatingNeutral:  10,
	domain.RatingBad:      5,
	domain.RatingVeryBad:  0,
}

// Both active labels score the full 15.
var activityScores = map[domain.Activity]int{
	domain.ActivityVeryActive: 15,
	domain.ActivityActive:     15,
	domain.ActivityNeutral:    15,
	domain.ActivityQuiet:      10,
	domain.ActivityVeryQuiet:  5,
}

var appetiteScores = map[domain.Rating]int{
	domain.RatingVeryGood: 15,
	domain.RatingGood:     15,
	domain.RatingNeutral:  10,
	domain.RatingBad:      5,
	domain.RatingVeryBad:  0,
}

// Breakdown holds the five capped subscores. Total is always their sum.
type Breakdown struct {
	HeartRate int `json:"heart_rate"`
	Stress    int `json:"stress"`
	Mood      int `json:"mood"`
	Activity  int `json:"activity"`
	Appetite  int `json:"appetite"`
}

func (b Breakdown) Total() int {
	return b.HeartRate + b.Stress + b.Mood + b.Activity + b.Appetite
}

// Compute scores a telemetry snapshot. Unknown labels take the neutral entry
// of their table.
func Compute(heartRate, stressLevel float64, mood domain.Rating, activity domain.Activity, appetite domain.Rating) Breakdown {
	return Breakdown{
		HeartRate: heartRateScore(heartRate),
		Stress:    stressScore(stressLevel),
		Mood:      lookup(moodScores, mood, domain.RatingNeutral),
		Activity:  lookup(activityScores, activity, domain.ActivityNeutral),
		Appetite:  lookup(appetiteScores, appetite, domain.RatingNeutral),
	}
}

// Score is Compute(...).Total().
func Score(heartRate, stressLevel float64, mood domain.Rating, activity domain.Activity, appetite domain.Rating) int {
	return Compute(heartRate, stressLevel, mood, activity, appetite).Total()
}

// ForObservation scores a normalized observation.
func ForObservation(obs domain.Observation) Breakdown {
	return Compute(obs.HeartRate, obs.StressLevel, obs.Mood, obs.Activity, obs.Appetite)
}

func heartRateScore(bpm float64) int {
	switch {
	case bpm >= 70 && bpm <= 100:
		return 25
	case (bpm >= 60 && bpm < 70) || (bpm > 100 && bpm <= 120):
		return 15
	case (bpm >= 50 && bpm < 60) || (bpm > 120 && bpm <= 140):
		return 8
	default:
		return 0
	}
}

func stressScore(level float64) int {
	switch {
	case level <= 3:
		return 25
	case level <= 6:
		return 15
	default:
		return 5
	}
}

func lookup[K comparable](table map[K]int, key, fallback K) int {
	if v, ok := table[key]; ok {
		return v
	}
	return table[fallback]
}

// LevelFor maps a health score onto the five-step emotion scale.
func LevelFor(score int) domain.EmotionLevel {
	switch {
	case score >= 80:
		return domain.EmotionVeryGood
	case score >= 60:
		return domain.EmotionGood
	case score >= 40:
		return domain.EmotionNeutral
	case score >= 20:
		return domain.EmotionBad
	default:
		return domain.EmotionVeryBad
	}
}
