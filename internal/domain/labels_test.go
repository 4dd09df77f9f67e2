package domain

import "testing"

func TestParseRating(t *testing.T) {
	tests := []struct {
		in     string
		want   Rating
		wantOK bool
	}{
		{"very-good", RatingVeryGood, true},
		{"Very_Good", RatingVeryGood, true},
		{"매우 좋음", RatingVeryGood, true},
		{"매우좋음", RatingVeryGood, true},
		{"good", RatingGood, true},
		{"보통", RatingNeutral, true},
		{" bad ", RatingBad, true},
		{"매우 나쁨", RatingVeryBad, true},
		{"", RatingNeutral, false},
		{"excellent", RatingNeutral, false},
	}
	for _, tt := range tests {
		got, ok := ParseRating(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("ParseRating(%q): got=(%s,%v) want=(%s,%v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseActivity(t *testing.T) {
	tests := []struct {
		in     string
		want   Activity
		wantOK bool
	}{
		{"very-active", ActivityVeryActive, true},
		{"매우 활발", ActivityVeryActive, true},
		{"ACTIVE", ActivityActive, true},
		{"조용", ActivityQuiet, true},
		{"very quiet", ActivityVeryQuiet, true},
		{"sleepy", ActivityNeutral, false},
	}
	for _, tt := range tests {
		got, ok := ParseActivity(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("ParseActivity(%q): got=(%s,%v) want=(%s,%v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLabelsFallBackToNeutral(t *testing.T) {
	if got := Rating("weird").Label(); got != "보통" {
		t.Fatalf("rating label=%q", got)
	}
	if got := Activity("weird").Label(); got != "보통" {
		t.Fatalf("activity label=%q", got)
	}
	if Rating("weird").Positive() || Rating("weird").Negative() {
		t.Fatalf("unknown rating must be neither positive nor negative")
	}
	if Activity("weird").Lively() || Activity("weird").Sluggish() {
		t.Fatalf("unknown activity must be neither lively nor sluggish")
	}
}

func TestEmotionLevelHelpers(t *testing.T) {
	if EmotionVeryBad.Label() != "매우 나쁨" || EmotionGood.Label() != "좋음" {
		t.Fatalf("emotion labels: %q %q", EmotionVeryBad.Label(), EmotionGood.Label())
	}
	if !EmotionGood.AtLeastGood() || !EmotionVeryGood.AtLeastGood() || EmotionNeutral.AtLeastGood() {
		t.Fatalf("AtLeastGood mismatch")
	}
}
