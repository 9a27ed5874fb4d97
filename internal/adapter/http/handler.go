package http

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/Cubey2019/insight-vtc-api/internal/domain/ports"
	"github.com/Cubey2019/insight-vtc-api/pkg/logger"
)

// callbackParam names the query parameter that switches a response to JSONP.
const callbackParam = "callback"

var callbackUnsafe = regexp.MustCompile(`[^\[\]\w$.]`)

type Handler struct {
	service ports.CurrencyService
	log     *logger.Logger
}

func NewHandler(service ports.CurrencyService, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Index serves the current rate. The request itself is not inspected beyond
// the optional JSONP callback, and the answer is always 200.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	resp := h.service.Index(r.Context())
	h.sendJSONP(w, r, resp)
}

// sendJSONP writes data as JSON, or as a guarded callback invocation when a
// callback parameter is present.
func (h *Handler) sendJSONP(w http.ResponseWriter, r *http.Request, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		h.log.Error("Failed to encode response", "error", err, "request_id", RequestID(r.Context()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	callback := callbackUnsafe.ReplaceAllString(r.URL.Query().Get(callbackParam), "")
	if callback == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			h.log.Error("Failed to write response", "error", err, "request_id", RequestID(r.Context()))
		}
		return
	}

	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	script := "/**/ typeof " + callback + " === 'function' && " + callback + "(" + string(body) + ");"
	if _, err := w.Write([]byte(script)); err != nil {
		h.log.Error("Failed to write response", "error", err, "request_id", RequestID(r.Context()))
	}
}
