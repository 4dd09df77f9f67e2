package diary

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"petdiary/internal/domain"
	"petdiary/internal/llm"
)

type fakeGenerator struct {
	text    string
	err     error
	panics  bool
	calls   int
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (llm.Generation, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.panics {
		panic("boom")
	}
	if f.err != nil {
		return llm.Generation{}, f.err
	}
	return llm.Generation{Text: f.text, Provider: llm.ProviderOpenAI, Model: "test-model"}, nil
}

func (f *fakeGenerator) Status() domain.ProviderStatus {
	return domain.ProviderStatus{Provider: llm.ProviderOpenAI, Model: "test-model", APIKeyConfigured: true}
}

type fakeRecorder struct {
	mu      sync.Mutex
	records []domain.GenerationRecord
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, rec domain.GenerationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return f.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateDiaryProviderSuccess(t *testing.T) {
	gen := &fakeGenerator{text: "  오늘은 산책을 많이 했어! 🐾  "}
	svc := New(gen, nil, quietLogger())

	raw := decode(t, `{"petName":"루나","mbti":"ENFP","heartRate":85,"stressLevel":3,"mood":"good","activity":"active","appetite":"good"}`)
	res := svc.GenerateDiary(context.Background(), raw)

	if res.UsedFallback || res.DiagnosticError != "" {
		t.Fatalf("unexpected fallback: %+v", res)
	}
	if res.Content != "오늘은 산책을 많이 했어! 🐾" {
		t.Fatalf("content not trimmed: %q", res.Content)
	}
	// 25 heart rate + 25 stress + 15 mood + 15 activity + 15 appetite
	if res.HealthScore != 95 || res.EmotionLevel != domain.EmotionVeryGood {
		t.Fatalf("score=%d level=%s, want 95/very-good", res.HealthScore, res.EmotionLevel)
	}
	if res.RequestID == "" {
		t.Fatalf("request id missing")
	}
	if gen.calls != 1 {
		t.Fatalf("generator calls=%d, want 1", gen.calls)
	}
	if !strings.Contains(gen.prompts[0], "'루나'라는 이름의") {
		t.Fatalf("prompt missing pet name:\n%s", gen.prompts[0])
	}
}

func TestGenerateDiaryKeepsCallerRequestID(t *testing.T) {
	svc := New(&fakeGenerator{text: "ok"}, nil, quietLogger())
	res := svc.GenerateDiary(context.Background(), decode(t, `{"requestId":"req-42"}`))
	if res.RequestID != "req-42" {
		t.Fatalf("request id=%q, want req-42", res.RequestID)
	}
}

func TestGenerateDiaryFallsBackOnErrors(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
	}{
		{name: "configuration", gen: &fakeGenerator{err: &llm.ConfigurationError{Provider: "openai", Err: llm.ErrMissingAPIKey}}},
		{name: "provider", gen: &fakeGenerator{err: &llm.ProviderError{Provider: "openai", StatusCode: 500, Err: errors.New("upstream down")}}},
		{name: "blank text", gen: &fakeGenerator{text: "   \n"}},
		{name: "panic", gen: &fakeGenerator{panics: true}},
		{name: "nil generator", gen: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(tt.gen, nil, quietLogger())
			res := svc.GenerateDiary(context.Background(), domain.RawObservation{})
			if !res.UsedFallback {
				t.Fatalf("expected fallback: %+v", res)
			}
			if res.DiagnosticError == "" {
				t.Fatalf("diagnostic error missing")
			}
			if res.Content != Fallback(Normalize(domain.RawObservation{})) {
				t.Fatalf("content is not the template diary:\n%s", res.Content)
			}
			if res.HealthScore != 85 || res.EmotionLevel != domain.EmotionVeryGood {
				t.Fatalf("score=%d level=%s", res.HealthScore, res.EmotionLevel)
			}
		})
	}
}

func TestGenerateDiaryWithoutCredentialNeverCallsNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	gw := llm.NewGateway(llm.Config{Provider: "openai", OpenAIBaseURL: srv.URL}, srv.Client())
	svc := New(gw, nil, quietLogger())
	res := svc.GenerateDiary(context.Background(), decode(t, `{"heartRate":50,"stressLevel":8,"mood":"bad","activity":"very-quiet","appetite":"bad"}`))

	if !res.UsedFallback {
		t.Fatalf("expected fallback without credential")
	}
	if res.HealthScore != 28 || res.EmotionLevel != domain.EmotionBad {
		t.Fatalf("score=%d level=%s", res.HealthScore, res.EmotionLevel)
	}
	if !strings.Contains(res.DiagnosticError, "API key") && !strings.Contains(res.DiagnosticError, "api key") {
		t.Fatalf("diagnostic should mention the key: %q", res.DiagnosticError)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("network was contacted %d times", hits)
	}
}

func TestGenerateDiaryCanceledContextStillAnswers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	gw := llm.NewGateway(llm.Config{Provider: "openai", APIKey: "k", OpenAIBaseURL: srv.URL}, srv.Client())
	svc := New(gw, nil, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := svc.GenerateDiary(ctx, domain.RawObservation{})
	if !res.UsedFallback || res.Content == "" {
		t.Fatalf("expected fallback diary: %+v", res)
	}
}

func TestGenerateDiaryScoreIsStableAcrossPaths(t *testing.T) {
	raw := decode(t, `{"heartRate":130,"stressLevel":5}`)
	ok := New(&fakeGenerator{text: "괜찮은 하루"}, nil, quietLogger()).GenerateDiary(context.Background(), raw)
	failed := New(&fakeGenerator{err: errors.New("nope")}, nil, quietLogger()).GenerateDiary(context.Background(), raw)
	if ok.HealthScore != failed.HealthScore || ok.EmotionLevel != failed.EmotionLevel {
		t.Fatalf("provider=%d/%s fallback=%d/%s", ok.HealthScore, ok.EmotionLevel, failed.HealthScore, failed.EmotionLevel)
	}
	if ok.HealthScore != 58 {
		t.Fatalf("score=%d, want 58", ok.HealthScore)
	}
}

func TestGenerateDiaryFallbackIsDeterministic(t *testing.T) {
	svc := New(&fakeGenerator{err: errors.New("down")}, nil, quietLogger())
	raw := decode(t, `{"requestId":"same","mood":"very-bad"}`)
	first := svc.GenerateDiary(context.Background(), raw)
	second := svc.GenerateDiary(context.Background(), raw)
	if first != second {
		t.Fatalf("results differ:\n%+v\n%+v", first, second)
	}
}

func TestGenerateDiaryRecordsOutcome(t *testing.T) {
	rec := &fakeRecorder{}
	svc := New(&fakeGenerator{err: &llm.ProviderError{Provider: "openai", StatusCode: 429, Err: errors.New("rate limited")}}, rec, quietLogger())
	res := svc.GenerateDiary(context.Background(), decode(t, `{"requestId":"r1","petName":"초코","mbti":"intp"}`))

	if len(rec.records) != 1 {
		t.Fatalf("records=%d, want 1", len(rec.records))
	}
	got := rec.records[0]
	if got.RequestID != "r1" || got.PetName != "초코" || got.Personality != "INTP" {
		t.Fatalf("record identity: %+v", got)
	}
	if !got.UsedFallback || got.ErrorKind != "provider" || got.Error != res.DiagnosticError {
		t.Fatalf("record outcome: %+v", got)
	}
	if got.HealthScore != res.HealthScore || got.Provider != llm.ProviderOpenAI {
		t.Fatalf("record score/provider: %+v", got)
	}
}

func TestGenerateDiaryIgnoresRecorderFailure(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db down")}
	svc := New(&fakeGenerator{text: "좋은 하루"}, rec, quietLogger())
	res := svc.GenerateDiary(context.Background(), domain.RawObservation{})
	if res.UsedFallback || res.Content != "좋은 하루" {
		t.Fatalf("recorder failure leaked into result: %+v", res)
	}
}

type panickingRecorder struct{}

func (panickingRecorder) Record(context.Context, domain.GenerationRecord) error {
	panic("recorder exploded")
}

func TestGenerateDiarySurvivesPanickingRecorder(t *testing.T) {
	svc := New(&fakeGenerator{text: "좋은 하루"}, panickingRecorder{}, quietLogger())
	res := svc.GenerateDiary(context.Background(), decode(t, `{"requestId":"r-9"}`))
	if res.UsedFallback || res.Content != "좋은 하루" || res.RequestID != "r-9" {
		t.Fatalf("recorder panic changed the result: %+v", res)
	}
	if res.HealthScore != 85 {
		t.Fatalf("score=%d, want 85", res.HealthScore)
	}
}

func TestStatusDelegatesToGenerator(t *testing.T) {
	st := New(&fakeGenerator{}, nil, quietLogger()).Status()
	if st.Provider != llm.ProviderOpenAI || !st.APIKeyConfigured {
		t.Fatalf("status=%+v", st)
	}
	if st := New(nil, nil, quietLogger()).Status(); st.APIKeyConfigured {
		t.Fatalf("nil generator reported a key: %+v", st)
	}
}
