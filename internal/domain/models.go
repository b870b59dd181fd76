package domain

import "time"

// PredictRequest is the JSON payload for the predict API.
type PredictRequest struct {
	URL string `json:"url"`
}

// Prediction is the result of classifying a single URL.
type Prediction struct {
	URL           string    `json:"url"`
	Label         int       `json:"prediction"` // 0 = legitimate, 1 = phishing
	Meaning       string    `json:"meaning"`
	Probabilities []float64 `json:"probabilities,omitempty"`
	Cached        bool      `json:"cached,omitempty"`
}

// HistoryEntry is a stored past prediction, returned by the history API.
type HistoryEntry struct {
	URL         string    `json:"url"`
	Label       int       `json:"prediction"`
	Probability float64   `json:"probability"`
	CreatedAt   time.Time `json:"created_at"`
}
