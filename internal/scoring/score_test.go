package scoring

import (
	"math"
	"testing"

	"petdiary/internal/domain"
)

func TestHeartRateBands(t *testing.T) {
	tests := []struct {
		bpm  float64
		want int
	}{
		{bpm: 49, want: 0},
		{bpm: 50, want: 8},
		{bpm: 59.9, want: 8},
		{bpm: 60, want: 15},
		{bpm: 69, want: 15},
		{bpm: 70, want: 25},
		{bpm: 85, want: 25},
		{bpm: 100, want: 25},
		{bpm: 101, want: 15},
		{bpm: 120, want: 15},
		{bpm: 121, want: 8},
		{bpm: 140, want: 8},
		{bpm: 141, want: 0},
		{bpm: -5, want: 0},
	}
	for _, tt := range tests {
		got := Compute(tt.bpm, 0, domain.RatingNeutral, domain.ActivityNeutral, domain.RatingNeutral).HeartRate
		if got != tt.want {
			t.Fatalf("heart rate %.1f: got=%d want=%d", tt.bpm, got, tt.want)
		}
	}
}

func TestStressBands(t *testing.T) {
	tests := []struct {
		level float64
		want  int
	}{
		{level: 0, want: 25},
		{level: 3, want: 25},
		{level: 3.5, want: 15},
		{level: 4, want: 15},
		{level: 6, want: 15},
		{level: 7, want: 5},
		{level: 10, want: 5},
	}
	for _, tt := range tests {
		got := Compute(80, tt.level, domain.RatingNeutral, domain.ActivityNeutral, domain.RatingNeutral).Stress
		if got != tt.want {
			t.Fatalf("stress %.1f: got=%d want=%d", tt.level, got, tt.want)
		}
	}
}

func TestUnknownLabelsScoreNeutral(t *testing.T) {
	b := Compute(80, 3, domain.Rating("ecstatic"), domain.Activity("zooming"), domain.Rating(""))
	if b.Mood != 10 || b.Activity != 15 || b.Appetite != 10 {
		t.Fatalf("unknown labels: got mood=%d activity=%d appetite=%d, want 10/15/10", b.Mood, b.Activity, b.Appetite)
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name      string
		heartRate float64
		stress    float64
		mood      domain.Rating
		activity  domain.Activity
		appetite  domain.Rating
		wantScore int
		wantLevel domain.EmotionLevel
	}{
		{
			name:      "neutral day",
			heartRate: 85, stress: 3,
			mood: domain.RatingNeutral, activity: domain.ActivityNeutral, appetite: domain.RatingNeutral,
			wantScore: 85, wantLevel: domain.EmotionVeryGood,
		},
		{
			name:      "rough day",
			heartRate: 50, stress: 8,
			mood: domain.RatingBad, activity: domain.ActivityVeryQuiet, appetite: domain.RatingBad,
			wantScore: 28, wantLevel: domain.EmotionBad,
		},
		{
			name:      "best day",
			heartRate: 80, stress: 1,
			mood: domain.RatingVeryGood, activity: domain.ActivityVeryActive, appetite: domain.RatingVeryGood,
			wantScore: 100, wantLevel: domain.EmotionVeryGood,
		},
		{
			name:      "worst day",
			heartRate: 200, stress: 10,
			mood: domain.RatingVeryBad, activity: domain.ActivityVeryQuiet, appetite: domain.RatingVeryBad,
			wantScore: 10, wantLevel: domain.EmotionVeryBad,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.heartRate, tt.stress, tt.mood, tt.activity, tt.appetite)
			if got != tt.wantScore {
				t.Fatalf("score: got=%d want=%d", got, tt.wantScore)
			}
			if level := LevelFor(got); level != tt.wantLevel {
				t.Fatalf("level: got=%s want=%s", level, tt.wantLevel)
			}
		})
	}
}

func TestScoreBoundsAndSum(t *testing.T) {
	moods := []domain.Rating{domain.RatingVeryGood, domain.RatingGood, domain.RatingNeutral, domain.RatingBad, domain.RatingVeryBad, "??"}
	activities := []domain.Activity{domain.ActivityVeryActive, domain.ActivityActive, domain.ActivityNeutral, domain.ActivityQuiet, domain.ActivityVeryQuiet, "??"}
	for hr := 0.0; hr <= 200; hr += 7.5 {
		for stress := 0.0; stress <= 10; stress += 0.5 {
			for _, m := range moods {
				for _, a := range activities {
					for _, ap := range moods {
						b := Compute(hr, stress, m, a, ap)
						if b.HeartRate > MaxHeartRate || b.Stress > MaxStress || b.Mood > MaxMood || b.Activity > MaxActivity || b.Appetite > MaxAppetite {
							t.Fatalf("subscore over cap: %+v", b)
						}
						total := Score(hr, stress, m, a, ap)
						if total != b.HeartRate+b.Stress+b.Mood+b.Activity+b.Appetite {
							t.Fatalf("total %d does not equal subscore sum %+v", total, b)
						}
						if total < 0 || total > 100 {
							t.Fatalf("total out of range: %d", total)
						}
					}
				}
			}
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	first := Compute(112, 5, domain.RatingGood, domain.ActivityQuiet, domain.RatingBad)
	for i := 0; i < 50; i++ {
		if got := Compute(112, 5, domain.RatingGood, domain.ActivityQuiet, domain.RatingBad); got != first {
			t.Fatalf("run %d: got=%+v want=%+v", i, got, first)
		}
	}
}

func TestNaNInputsStayInRange(t *testing.T) {
	got := Score(math.NaN(), math.NaN(), domain.RatingNeutral, domain.ActivityNeutral, domain.RatingNeutral)
	if got < 0 || got > 100 {
		t.Fatalf("NaN inputs: got=%d", got)
	}
}

func TestLevelForThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  domain.EmotionLevel
	}{
		{100, domain.EmotionVeryGood},
		{80, domain.EmotionVeryGood},
		{79, domain.EmotionGood},
		{60, domain.EmotionGood},
		{59, domain.EmotionNeutral},
		{40, domain.EmotionNeutral},
		{39, domain.EmotionBad},
		{20, domain.EmotionBad},
		{19, domain.EmotionVeryBad},
		{0, domain.EmotionVeryBad},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score); got != tt.want {
			t.Fatalf("LevelFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
