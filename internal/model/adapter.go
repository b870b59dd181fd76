package model

import (
	"encoding/json"
	"fmt"
	"os"

	"phishguard/internal/domain"
	"phishguard/internal/features"
)

// Meta describes what the loaded classifier expects: the ordered feature list
// and a per-feature median used as a fallback for features the extractor
// cannot derive from the URL alone.
type Meta struct {
	Features []string           `json:"features"`
	Medians  map[string]float64 `json:"medians"`
}

// LoadMeta reads the model metadata document. A missing or malformed file is
// a startup-time failure; the service must not serve without it.
func LoadMeta(path string) (*Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model metadata: %w", err)
	}
	var m Meta
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model metadata %q: %w", path, err)
	}
	if len(m.Features) == 0 {
		return nil, fmt.Errorf("model metadata %q declares no features", path)
	}
	return &m, nil
}

// Adapter joins the feature extractor, the metadata, and the classifier into
// a single predict-for-URL operation. It is immutable after construction and
// safe for concurrent use.
type Adapter struct {
	clf  Classifier
	meta *Meta
}

func NewAdapter(clf Classifier, meta *Meta) *Adapter {
	return &Adapter{clf: clf, meta: meta}
}

// Vectorize assembles the ordered feature row the classifier expects from the
// extracted superset. Features the extractor does not produce fall back to
// the metadata median, or 0.0 when no median is recorded.
func (a *Adapter) Vectorize(superset map[string]float64) []float64 {
	row := make([]float64, len(a.meta.Features))
	for i, name := range a.meta.Features {
		if v, ok := superset[name]; ok {
			row[i] = v
		} else if v, ok := a.meta.Medians[name]; ok {
			row[i] = v
		}
	}
	return row
}

// Predict classifies a single URL. Probabilities are included only when the
// classifier supports them.
func (a *Adapter) Predict(rawURL string) (*domain.Prediction, error) {
	row := a.Vectorize(features.Extract(rawURL))

	label, err := a.clf.Predict(row)
	if err != nil {
		return nil, fmt.Errorf("predict %q: %w", rawURL, err)
	}

	pred := &domain.Prediction{
		URL:     rawURL,
		Label:   label,
		Meaning: Meaning(label),
	}
	if pe, ok := a.clf.(ProbabilityEstimator); ok {
		proba, err := pe.PredictProba(row)
		if err != nil {
			return nil, fmt.Errorf("predict probabilities for %q: %w", rawURL, err)
		}
		pred.Probabilities = proba
	}
	return pred, nil
}

// Meaning maps a class label to its human-readable form.
func Meaning(label int) string {
	if label == 1 {
		return "phishing"
	}
	return "legitimate"
}
