package model

import (
	"encoding/json"
	"fmt"
)

// Tree is a single decision tree in flat-array form: node i branches left when
// features[Feature[i]] <= Threshold[i]. Leaves carry Feature[i] == -1 and a
// per-class sample count in Value[i].
type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// Forest is an ensemble of decision trees. The predicted distribution is the
// mean of the normalized leaf distributions across trees; the label is its
// argmax.
type Forest struct {
	NClasses int    `json:"n_classes"`
	Trees    []Tree `json:"trees"`
}

func loadForest(data []byte) (*Forest, error) {
	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode random forest: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Forest) validate() error {
	if f.NClasses < 2 {
		return fmt.Errorf("random forest: n_classes must be at least 2, got %d", f.NClasses)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("random forest: no trees")
	}
	for ti, t := range f.Trees {
		n := len(t.Feature)
		if n == 0 || len(t.ChildrenLeft) != n || len(t.ChildrenRight) != n ||
			len(t.Threshold) != n || len(t.Value) != n {
			return fmt.Errorf("random forest: tree %d has inconsistent node arrays", ti)
		}
		for i := 0; i < n; i++ {
			if t.Feature[i] < 0 && len(t.Value[i]) != f.NClasses {
				return fmt.Errorf("random forest: tree %d leaf %d has %d classes, want %d",
					ti, i, len(t.Value[i]), f.NClasses)
			}
		}
	}
	return nil
}

// Predict returns the majority class for the feature vector.
func (f *Forest) Predict(features []float64) (int, error) {
	proba, err := f.PredictProba(features)
	if err != nil {
		return 0, err
	}
	return argmax(proba), nil
}

// PredictProba returns the mean class distribution across all trees.
func (f *Forest) PredictProba(features []float64) ([]float64, error) {
	proba := make([]float64, f.NClasses)
	for ti := range f.Trees {
		leaf, err := f.Trees[ti].walk(features)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", ti, err)
		}
		total := 0.0
		for _, v := range leaf {
			total += v
		}
		if total == 0 {
			continue
		}
		for c, v := range leaf {
			proba[c] += v / total
		}
	}
	for c := range proba {
		proba[c] /= float64(len(f.Trees))
	}
	return proba, nil
}

// walk descends from the root to a leaf and returns the leaf's class counts.
func (t *Tree) walk(features []float64) ([]float64, error) {
	n := len(t.Feature)
	node := 0
	for steps := 0; steps <= n; steps++ {
		if node < 0 || node >= n {
			return nil, fmt.Errorf("node index %d out of range", node)
		}
		fi := t.Feature[node]
		if fi < 0 {
			return t.Value[node], nil
		}
		if fi >= len(features) {
			return nil, fmt.Errorf("feature index %d exceeds vector length %d", fi, len(features))
		}
		if features[fi] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return nil, fmt.Errorf("no leaf reached after %d steps", n)
}

func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
