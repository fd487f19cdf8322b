package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"quizforge-backend/internal/models"
	"quizforge-backend/internal/services"
)

// QuizGenerator produces a validated question set for a topic.
type QuizGenerator interface {
	Generate(ctx context.Context, topic string) ([]models.QuizQuestion, error)
}

type QuizHandler struct {
	generator     QuizGenerator
	serviceName   string
	questionCount int
}

func NewQuizHandler(generator QuizGenerator, serviceName string, questionCount int) *QuizHandler {
	return &QuizHandler{
		generator:     generator,
		serviceName:   serviceName,
		questionCount: questionCount,
	}
}

func (h *QuizHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Service:   h.serviceName,
		Questions: h.questionCount,
		Timestamp: time.Now().UTC(),
	})
}

func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	topic, err := services.ValidateTopic(req.Topic)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp(err.Error()))
		return
	}

	questions, err := h.generator.Generate(r.Context(), topic)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.QuizResponse{
		Success:   true,
		Topic:     topic,
		Total:     len(questions),
		Questions: questions,
	})
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Success: false, Error: message}
}

// handleServiceError maps an error kind to an HTTP status. The mapping is
// total over the taxonomy; message text is never inspected.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindValidation:
		status = http.StatusBadRequest
	case services.KindTimeout:
		status = http.StatusGatewayTimeout
	case services.KindRateLimited:
		status = http.StatusTooManyRequests
	}

	log.Printf("generate failed: request_id=%s err=%v", r.Header.Get("X-Request-ID"), err)
	writeJSON(w, status, errorResp(err.Error()))
}
