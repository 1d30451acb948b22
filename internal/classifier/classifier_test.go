package classifier

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// identityScaler leaves the vector untouched (scale=1, min=0).
const identityScaler = `{
	"min":   [0, 0, 0, 0, 0, 0, 0, 0],
	"scale": [1, 1, 1, 1, 1, 1, 1, 1]
}`

// twoTreeModel splits on glucose (feature 1): one tree splits at 120, the
// other at 140. Leaf values are raw class counts.
const twoTreeModel = `{
	"trees": [
		{
			"nodes": [
				{"feature": 1, "threshold": 120, "left": 1, "right": 2},
				{"feature": -1, "left": -1, "right": -1, "value": [9, 1]},
				{"feature": -1, "left": -1, "right": -1, "value": [2, 8]}
			]
		},
		{
			"nodes": [
				{"feature": 1, "threshold": 140, "left": 1, "right": 2},
				{"feature": -1, "left": -1, "right": -1, "value": [8, 2]},
				{"feature": -1, "left": -1, "right": -1, "value": [1, 9]}
			]
		}
	]
}`

func writeArtifacts(t *testing.T, modelJSON, scalerJSON string) (modelPath, scalerPath string) {
	t.Helper()
	dir := t.TempDir()
	modelPath = filepath.Join(dir, "model.json")
	scalerPath = filepath.Join(dir, "scaler.json")
	if err := os.WriteFile(modelPath, []byte(modelJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(scalerPath, []byte(scalerJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return modelPath, scalerPath
}

func vectorWithGlucose(g float64) []float64 {
	return []float64{0, g, 70, 20, 80, 25, 0.47, 30}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing model file", func(t *testing.T) {
		_, scalerPath := writeArtifacts(t, twoTreeModel, identityScaler)
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"), scalerPath)
		if err == nil {
			t.Fatal("expected error for missing model")
		}
	})

	t.Run("missing scaler file", func(t *testing.T) {
		modelPath, _ := writeArtifacts(t, twoTreeModel, identityScaler)
		_, err := Load(modelPath, filepath.Join(t.TempDir(), "absent.json"))
		if err == nil {
			t.Fatal("expected error for missing scaler")
		}
	})

	t.Run("scaler with wrong width", func(t *testing.T) {
		modelPath, scalerPath := writeArtifacts(t, twoTreeModel, `{"min": [0], "scale": [1]}`)
		_, err := Load(modelPath, scalerPath)
		if !errors.Is(err, ErrBadArtifact) {
			t.Fatalf("expected ErrBadArtifact, got %v", err)
		}
	})

	t.Run("model with no trees", func(t *testing.T) {
		modelPath, scalerPath := writeArtifacts(t, `{"trees": []}`, identityScaler)
		_, err := Load(modelPath, scalerPath)
		if !errors.Is(err, ErrBadArtifact) {
			t.Fatalf("expected ErrBadArtifact, got %v", err)
		}
	})

	t.Run("node referencing unknown feature", func(t *testing.T) {
		bad := `{"trees": [{"nodes": [{"feature": 8, "threshold": 1, "left": 0, "right": 0}]}]}`
		modelPath, scalerPath := writeArtifacts(t, bad, identityScaler)
		_, err := Load(modelPath, scalerPath)
		if !errors.Is(err, ErrBadArtifact) {
			t.Fatalf("expected ErrBadArtifact, got %v", err)
		}
	})
}

func TestPredict(t *testing.T) {
	modelPath, scalerPath := writeArtifacts(t, twoTreeModel, identityScaler)
	c, err := Load(modelPath, scalerPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	t.Run("low glucose is normal", func(t *testing.T) {
		p, err := c.Predict(vectorWithGlucose(100))
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if p.Label != LabelNormal {
			t.Errorf("expected %q, got %q", LabelNormal, p.Label)
		}
		// Both trees land on their low leaf: mean of [0.9,0.1] and [0.8,0.2].
		if math.Abs(p.ProbNeg-0.85) > 1e-9 || math.Abs(p.ProbPos-0.15) > 1e-9 {
			t.Errorf("unexpected probabilities: %v / %v", p.ProbNeg, p.ProbPos)
		}
		if p.ProbWin() != p.ProbNeg {
			t.Errorf("ProbWin should be the negative-class probability")
		}
	})

	t.Run("high glucose is diabetic", func(t *testing.T) {
		p, err := c.Predict(vectorWithGlucose(180))
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if p.Label != LabelDiabetic {
			t.Errorf("expected %q, got %q", LabelDiabetic, p.Label)
		}
		// Mean of [0.2,0.8] and [0.1,0.9].
		if math.Abs(p.ProbPos-0.85) > 1e-9 {
			t.Errorf("unexpected ProbPos: %v", p.ProbPos)
		}
		if p.ProbWin() != p.ProbPos {
			t.Errorf("ProbWin should be the positive-class probability")
		}
	})

	t.Run("probabilities sum to one", func(t *testing.T) {
		p, err := c.Predict(vectorWithGlucose(130))
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if math.Abs(p.ProbNeg+p.ProbPos-1) > 1e-9 {
			t.Errorf("probabilities do not sum to 1: %v + %v", p.ProbNeg, p.ProbPos)
		}
	})

	t.Run("rejects wrong vector width", func(t *testing.T) {
		_, err := c.Predict([]float64{1, 2, 3})
		if !errors.Is(err, ErrBadVector) {
			t.Fatalf("expected ErrBadVector, got %v", err)
		}
	})
}

func TestPredictAppliesScaler(t *testing.T) {
	// Halving scale moves a 180 glucose reading to 90, flipping the outcome.
	halfScaler := `{
		"min":   [0, 0, 0, 0, 0, 0, 0, 0],
		"scale": [1, 0.5, 1, 1, 1, 1, 1, 1]
	}`
	modelPath, scalerPath := writeArtifacts(t, twoTreeModel, halfScaler)
	c, err := Load(modelPath, scalerPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	p, err := c.Predict(vectorWithGlucose(180))
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if p.Label != LabelNormal {
		t.Errorf("expected scaled-down reading to classify %q, got %q", LabelNormal, p.Label)
	}
}
