package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Classifier is the minimal contract of a loaded model: feature vector in,
// class label out.
type Classifier interface {
	Predict(features []float64) (int, error)
}

// ProbabilityEstimator is implemented by classifiers that can also report
// per-class probabilities. Callers probe for it with a type assertion.
type ProbabilityEstimator interface {
	PredictProba(features []float64) ([]float64, error)
}

// LoadClassifier reads a model artifact from disk and decodes it according to
// its model_type field. The artifact is loaded once at startup and shared
// read-only afterwards.
func LoadClassifier(path string) (Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var header struct {
		ModelType string `json:"model_type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("decode model artifact %q: %w", path, err)
	}

	switch header.ModelType {
	case "random_forest":
		return loadForest(data)
	case "logistic_regression":
		return loadLogistic(data)
	default:
		return nil, fmt.Errorf("unsupported model_type %q in %q", header.ModelType, path)
	}
}
