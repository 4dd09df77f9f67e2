package domain

import (
	"encoding/json"
	"time"
)

// RawObservation is the inbound telemetry exactly as decoded from the wire.
// Fields stay raw so that missing, null and wrongly typed values can all be
// defaulted during normalization instead of failing the decode.
type RawObservation struct {
	RequestID   json.RawMessage `json:"requestId,omitempty" swaggertype:"string"`
	PetName     json.RawMessage `json:"petName,omitempty" swaggertype:"string" example:"초코"`
	Breed       json.RawMessage `json:"breed,omitempty" swaggertype:"string" example:"포메라니안"`
	MBTI        json.RawMessage `json:"mbti,omitempty" swaggertype:"string" example:"ENFP"`
	Weight      json.RawMessage `json:"weight,omitempty" swaggertype:"number" example:"5.2"`
	HeartRate   json.RawMessage `json:"heartRate,omitempty" swaggertype:"number" example:"85"`
	StressLevel json.RawMessage `json:"stressLevel,omitempty" swaggertype:"number" example:"3"`
	Mood        json.RawMessage `json:"mood,omitempty" swaggertype:"string" example:"good"`
	Activity    json.RawMessage `json:"activity,omitempty" swaggertype:"string" example:"active"`
	Appetite    json.RawMessage `json:"appetite,omitempty" swaggertype:"string" example:"good"`
}

// Observation is a normalized, fully defaulted telemetry snapshot.
type Observation struct {
	Name        string
	Breed       string
	Personality string
	Weight      float64
	HeartRate   float64
	StressLevel float64
	Mood        Rating
	Activity    Activity
	Appetite    Rating
}

type DiaryResult struct {
	RequestID       string       `json:"requestId"`
	Content         string       `json:"diary"`
	HealthScore     int          `json:"healthScore"`
	EmotionLevel    EmotionLevel `json:"emotionLevel"`
	UsedFallback    bool         `json:"fallback"`
	DiagnosticError string       `json:"error,omitempty"`
	Provider        string       `json:"provider,omitempty"`
}

type ProviderStatus struct {
	Provider         string       `json:"llm_provider"`
	Model            string       `json:"model,omitempty"`
	APIKeyConfigured bool         `json:"api_key_configured"`
	Probe            *ProbeResult `json:"probe,omitempty"`
}

type ProbeResult struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
	CheckedAt string `json:"checked_at"`
	LatencyMS int64  `json:"latency_ms"`
}

// GenerationRecord is one audit row describing how a diary was produced.
// Diary content is never part of it.
type GenerationRecord struct {
	RequestID    string
	PetName      string
	Personality  string
	HealthScore  int
	EmotionLevel EmotionLevel
	UsedFallback bool
	Provider     string
	ErrorKind    string
	Error        string
	Latency      time.Duration
	CreatedAt    time.Time
}

type Message struct {
	Role    string
	Content string
}

type LLMRequest struct {
	Model       string
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

type LLMResponse struct {
	Content string
	Model   string
}
