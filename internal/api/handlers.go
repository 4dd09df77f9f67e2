package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"petdiary/internal/diary"
	"petdiary/internal/domain"
)

const maxBodyBytes = 1 << 20

type handler struct {
	diary  DiaryService
	probe  ProbeSource
	logger *slog.Logger
}

type GenerateResponse struct {
	Success bool `json:"success" example:"true"`
	domain.DiaryResult
}

type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"Pet Diary LLM API"`
	domain.ProviderStatus
}

// generateDiary godoc
// @Summary     Generate a pet diary entry
// @Description Always answers 200. When no provider is configured or the provider fails, a template diary is returned with fallback=true.
// @Tags        diary
// @Accept      json
// @Produce     json
// @Param       observation body     domain.RawObservation false "daily telemetry; every field is optional"
// @Success     200         {object} GenerateResponse
// @Router      /api/diary/generate [post]
func (h *handler) generateDiary(w http.ResponseWriter, r *http.Request) {
	raw := h.decodeObservation(w, r)
	if len(raw.RequestID) == 0 {
		if id := chimw.GetReqID(r.Context()); id != "" {
			raw.RequestID, _ = json.Marshal(id)
		}
	}

	res := h.diary.GenerateDiary(r.Context(), raw)
	writeJSON(w, http.StatusOK, GenerateResponse{Success: true, DiaryResult: res})
}

// decodeObservation never fails: an unreadable or non-object body becomes the
// empty observation.
func (h *handler) decodeObservation(w http.ResponseWriter, r *http.Request) domain.RawObservation {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Warn("read request body failed", "request_id", chimw.GetReqID(r.Context()), "error", err)
		return domain.RawObservation{}
	}
	raw, err := diary.DecodeRaw(body)
	if err != nil {
		h.logger.Info("invalid observation body, using defaults", "request_id", chimw.GetReqID(r.Context()), "error", err)
		return domain.RawObservation{}
	}
	return raw
}

// health godoc
// @Summary     Service health
// @Description Reports the configured provider and whether a credential is present. Never calls the provider.
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Router      /health [get]
func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	status := h.diary.Status()
	if h.probe != nil {
		status.Probe = h.probe.Last()
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:         "healthy",
		Service:        serviceName,
		ProviderStatus: status,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
