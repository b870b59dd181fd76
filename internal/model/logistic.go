package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// Logistic is a binary logistic regression over the ordered feature vector:
// P(phishing) = sigmoid(Intercept + Coef . features).
type Logistic struct {
	Intercept float64   `json:"intercept"`
	Coef      []float64 `json:"coef"`
}

func loadLogistic(data []byte) (*Logistic, error) {
	var l Logistic
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode logistic regression: %w", err)
	}
	if len(l.Coef) == 0 {
		return nil, fmt.Errorf("logistic regression: no coefficients")
	}
	return &l, nil
}

// Predict returns 1 when the phishing probability reaches 0.5.
func (l *Logistic) Predict(features []float64) (int, error) {
	proba, err := l.PredictProba(features)
	if err != nil {
		return 0, err
	}
	if proba[1] >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

// PredictProba returns [P(legitimate), P(phishing)].
func (l *Logistic) PredictProba(features []float64) ([]float64, error) {
	if len(features) != len(l.Coef) {
		return nil, fmt.Errorf("logistic regression: got %d features, want %d", len(features), len(l.Coef))
	}
	z := l.Intercept
	for i, v := range features {
		z += l.Coef[i] * v
	}
	p := 1 / (1 + math.Exp(-z))
	return []float64{1 - p, p}, nil
}
