package diary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"petdiary/internal/domain"
	"petdiary/internal/llm"
	"petdiary/internal/persona"
	"petdiary/internal/scoring"
)

const recordTimeout = 2 * time.Second

var errNoGenerator = errors.New("no text generator configured")

type Generator interface {
	Generate(ctx context.Context, prompt string) (llm.Generation, error)
	Status() domain.ProviderStatus
}

// Recorder receives one record per GenerateDiary call. Optional.
type Recorder interface {
	Record(ctx context.Context, rec domain.GenerationRecord) error
}

type Service struct {
	generator Generator
	recorder  Recorder
	logger    *slog.Logger
}

func New(generator Generator, recorder Recorder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		generator: generator,
		recorder:  recorder,
		logger:    logger,
	}
}

// GenerateDiary always returns a usable result. Any failure on the provider
// path, including a panic or a canceled context, switches to the template
// fallback and is reported in DiagnosticError.
func (s *Service) GenerateDiary(ctx context.Context, raw domain.RawObservation) domain.DiaryResult {
	start := time.Now()
	obs := Normalize(raw)
	requestID := stringField(raw.RequestID, "")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	result, err := s.generate(ctx, obs)
	if err != nil {
		s.logger.Warn("diary generation failed, using fallback",
			"request_id", requestID,
			"error_kind", llm.Kind(err),
			"error", err,
		)
		result = fallbackResult(obs, err)
	}
	result.RequestID = requestID

	latency := time.Since(start)
	s.logger.Info("diary generated",
		"request_id", requestID,
		"pet", obs.Name,
		"mbti", obs.Personality,
		"health_score", result.HealthScore,
		"emotion_level", result.EmotionLevel,
		"fallback", result.UsedFallback,
		"total_ms", latency.Milliseconds(),
	)
	s.record(ctx, obs, result, err, latency)
	return result
}

func (s *Service) Status() domain.ProviderStatus {
	if s.generator == nil {
		return domain.ProviderStatus{}
	}
	return s.generator.Status()
}

func (s *Service) generate(ctx context.Context, obs domain.Observation) (res domain.DiaryResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("diary generation panicked: %v", r)
		}
	}()

	if s.generator == nil {
		return domain.DiaryResult{}, errNoGenerator
	}

	score := scoring.ForObservation(obs).Total()
	profile := persona.Resolve(obs.Personality, score)
	prompt := BuildPrompt(obs, score, profile)

	gen, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return domain.DiaryResult{}, err
	}
	text := strings.TrimSpace(gen.Text)
	if text == "" {
		return domain.DiaryResult{}, llm.ErrEmptyResponse
	}
	return domain.DiaryResult{
		Content:      text,
		HealthScore:  score,
		EmotionLevel: profile.Level,
		Provider:     gen.Provider,
	}, nil
}

// fallbackResult reports the score of the same normalized observation the
// template was built from.
func fallbackResult(obs domain.Observation, cause error) domain.DiaryResult {
	score := scoring.ForObservation(obs).Total()
	diagnostic := cause.Error()
	if diagnostic == "" {
		diagnostic = "unknown error"
	}
	return domain.DiaryResult{
		Content:         Fallback(obs),
		HealthScore:     score,
		EmotionLevel:    scoring.LevelFor(score),
		UsedFallback:    true,
		DiagnosticError: diagnostic,
	}
}

func (s *Service) record(ctx context.Context, obs domain.Observation, result domain.DiaryResult, cause error, latency time.Duration) {
	if s.recorder == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("record generation panicked", "request_id", result.RequestID, "panic", r)
		}
	}()
	recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	rec := domain.GenerationRecord{
		RequestID:    result.RequestID,
		PetName:      obs.Name,
		Personality:  obs.Personality,
		HealthScore:  result.HealthScore,
		EmotionLevel: result.EmotionLevel,
		UsedFallback: result.UsedFallback,
		Provider:     s.Status().Provider,
		ErrorKind:    llm.Kind(cause),
		Error:        result.DiagnosticError,
		Latency:      latency,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.recorder.Record(recCtx, rec); err != nil {
		s.logger.Warn("record generation failed", "request_id", result.RequestID, "error", err)
	}
}
