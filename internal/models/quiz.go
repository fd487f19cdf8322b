package models

import "time"

// QuizQuestion is one multiple-choice question in a generated set.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// GenerateQuizRequest is the body of POST /generate. Topic is decoded as any
// so a missing or non-string value can be reported precisely instead of
// failing the whole decode.
type GenerateQuizRequest struct {
	Topic any `json:"topic"`
}

type QuizResponse struct {
	Success   bool           `json:"success"`
	Topic     string         `json:"topic"`
	Total     int            `json:"total"`
	Questions []QuizQuestion `json:"questions"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Questions int       `json:"questions"`
	Timestamp time.Time `json:"timestamp"`
}
