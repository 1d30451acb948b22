// Package classifier loads the exported scaler and tree-ensemble artifacts
// and serves predictions from an immutable in-memory handle. Both artifacts
// are read once at process start; a missing or malformed file is fatal and
// the service refuses to come up without them.
package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
)

// FeatureCount is the fixed width of the measurement vector:
// [pregnancies, glucose, bp, skin, insulin, bmi, dpf, age].
const FeatureCount = 8

const (
	LabelNormal   = "Normal"
	LabelDiabetic = "Diabetic"
)

var (
	ErrBadArtifact = errors.New("classifier artifact is invalid")
	ErrBadVector   = errors.New("measurement vector has wrong width")
)

// scaler mirrors sklearn's fitted MinMaxScaler: transform(x) = x*scale + min.
type scaler struct {
	Min   []float64 `json:"min"`
	Scale []float64 `json:"scale"`
}

func (s *scaler) transform(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)
	floats.Mul(out, s.Scale)
	floats.Add(out, s.Min)
	return out
}

// node is one decision node. Leaves carry Feature == -1 and a two-class
// count vector in Value.
type node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value"`
}

type tree struct {
	Nodes []node `json:"nodes"`
}

// classProbs walks the tree and returns the normalized class distribution of
// the reached leaf.
func (t *tree) classProbs(v []float64) []float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Feature < 0 {
			probs := make([]float64, len(n.Value))
			copy(probs, n.Value)
			if sum := floats.Sum(probs); sum > 0 {
				floats.Scale(1/sum, probs)
			}
			return probs
		}
		if v[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

type ensemble struct {
	Trees []tree `json:"trees"`
}

// Classifier is the shared prediction handle. Safe for concurrent use; it is
// never mutated after Load.
type Classifier struct {
	scaler   scaler
	ensemble ensemble
}

// Prediction is the outcome of one classification. ProbNeg+ProbPos == 1.
type Prediction struct {
	Label   string
	ProbNeg float64
	ProbPos float64
}

// ProbWin is the probability of the winning class, used for the cosmetic
// confidence display.
func (p Prediction) ProbWin() float64 {
	if p.Label == LabelDiabetic {
		return p.ProbPos
	}
	return p.ProbNeg
}

// Load reads and validates both artifacts. Errors here are startup-fatal for
// the caller.
func Load(modelPath, scalerPath string) (*Classifier, error) {
	c := &Classifier{}

	if err := readJSON(scalerPath, &c.scaler); err != nil {
		return nil, fmt.Errorf("load scaler %q: %w", scalerPath, err)
	}
	if len(c.scaler.Min) != FeatureCount || len(c.scaler.Scale) != FeatureCount {
		return nil, fmt.Errorf("%w: scaler %q must carry %d min/scale entries", ErrBadArtifact, scalerPath, FeatureCount)
	}

	if err := readJSON(modelPath, &c.ensemble); err != nil {
		return nil, fmt.Errorf("load model %q: %w", modelPath, err)
	}
	if len(c.ensemble.Trees) == 0 {
		return nil, fmt.Errorf("%w: model %q has no trees", ErrBadArtifact, modelPath)
	}
	for ti, t := range c.ensemble.Trees {
		if len(t.Nodes) == 0 {
			return nil, fmt.Errorf("%w: model %q tree %d is empty", ErrBadArtifact, modelPath, ti)
		}
		for ni, n := range t.Nodes {
			if n.Feature >= FeatureCount {
				return nil, fmt.Errorf("%w: model %q tree %d node %d references feature %d", ErrBadArtifact, modelPath, ti, ni, n.Feature)
			}
			if n.Feature < 0 && len(n.Value) != 2 {
				return nil, fmt.Errorf("%w: model %q tree %d node %d leaf is not two-class", ErrBadArtifact, modelPath, ti, ni)
			}
			if n.Feature >= 0 && (n.Left < 0 || n.Left >= len(t.Nodes) || n.Right < 0 || n.Right >= len(t.Nodes)) {
				return nil, fmt.Errorf("%w: model %q tree %d node %d child out of range", ErrBadArtifact, modelPath, ti, ni)
			}
		}
	}

	return c, nil
}

func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// Predict scales the raw measurement vector and averages the per-tree class
// distributions, matching sklearn's soft-voting predict_proba. Ties resolve
// to Normal.
func (c *Classifier) Predict(features []float64) (Prediction, error) {
	if len(features) != FeatureCount {
		return Prediction{}, fmt.Errorf("%w: got %d, want %d", ErrBadVector, len(features), FeatureCount)
	}

	scaled := c.scaler.transform(features)

	agg := make([]float64, 2)
	for i := range c.ensemble.Trees {
		floats.Add(agg, c.ensemble.Trees[i].classProbs(scaled))
	}
	floats.Scale(1/float64(len(c.ensemble.Trees)), agg)

	label := LabelNormal
	if agg[1] > agg[0] {
		label = LabelDiabetic
	}

	return Prediction{Label: label, ProbNeg: agg[0], ProbPos: agg[1]}, nil
}
