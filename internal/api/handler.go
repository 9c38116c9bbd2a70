package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tanisperez/halfstuck/internal/settings"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// initializationReporter is implemented by holders that can tell whether
// their first load has run without triggering it.
type initializationReporter interface {
	Initialized() bool
}

// Handler serves lookups against a settings.Holder.
type Handler struct {
	holder settings.Holder
	logger *zap.Logger

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithHandlerLogger sets the logger used to report initialization failures.
func WithHandlerLogger(logger *zap.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler constructs a Handler reading from holder.
func NewHandler(holder settings.Holder, opts ...HandlerOption) *Handler {
	h := &Handler{
		holder: holder,
		logger: zap.NewNop(),
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:      "ok",
		Timestamp:   h.clock(),
		Initialized: true,
	}
	if reporter, ok := h.holder.(initializationReporter); ok {
		resp.Initialized = reporter.Initialized()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListSettings(w http.ResponseWriter, r *http.Request) {
	store, ok := h.instance(w, r)
	if !ok {
		return
	}

	resp := settingsResponse{
		Settings: store.All(),
		Count:    store.Len(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	store, ok := h.instance(w, r)
	if !ok {
		return
	}

	value, found := store.Get(key)
	if !found {
		writeError(w, http.StatusNotFound, "Setting not found", fmt.Sprintf("key %q is not configured", key))
		return
	}

	writeJSON(w, http.StatusOK, settingResponse{Key: key, Value: value})
}

// instance resolves the store, answering 503 when initialization failed.
func (h *Handler) instance(w http.ResponseWriter, r *http.Request) (*settings.Store, bool) {
	store, err := h.holder.Instance()
	if err != nil {
		h.logger.Error("settings unavailable",
			zap.Error(err),
			zap.String("request_id", requestIDFromContext(r.Context())),
		)
		writeError(w, http.StatusServiceUnavailable, "Settings unavailable", err.Error())
		return nil, false
	}
	return store, true
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type settingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type settingsResponse struct {
	Settings map[string]string `json:"settings"`
	Count    int               `json:"count"`
}

type healthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Initialized bool      `json:"initialized"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}
