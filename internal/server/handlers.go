// internal/server/handlers.go
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"ecommerce-chatbot/internal/common/metrics"
	"ecommerce-chatbot/internal/common/validation"
)

const maxRequestBody = 1 << 20 // 1 MiB

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "API is running",
		Endpoints: []string{"/chat"},
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		s.rejectInvalidMessage(w)
		return
	}

	if err := validation.ValidateChatRequest(body); err != nil {
		s.rejectInvalidMessage(w)
		return
	}

	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.rejectInvalidMessage(w)
		return
	}

	text, tag := s.chat.Respond(r.Context(), req.Message)

	metrics.ChatRequestsTotal.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	metrics.ChatRequestDuration.WithLabelValues(string(tag)).Observe(time.Since(start).Seconds())
	s.obs.RecordRequest(r.Context(), string(tag))
	s.obs.RecordRequestDuration(r.Context(), time.Since(start), string(tag))

	writeJSON(w, http.StatusOK, chatResponse{Response: text})
}

// rejectInvalidMessage answers every malformed chat request the same way.
// Client errors are counted but not logged as server errors.
func (s *Server) rejectInvalidMessage(w http.ResponseWriter) {
	metrics.ChatRequestsTotal.WithLabelValues(strconv.Itoa(http.StatusBadRequest)).Inc()
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid message"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
