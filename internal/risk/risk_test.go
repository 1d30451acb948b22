package risk

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		probPos float64
		want    float64
	}{
		{"zero", 0, 0},
		{"one", 1, 100},
		{"rounds to two decimals", 0.70005, 70.01},
		{"rounds down", 0.70004, 70.0},
		{"mid range", 0.4213, 42.13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.probPos); got != tt.want {
				t.Errorf("Score(%v) = %v, want %v", tt.probPos, got, tt.want)
			}
		})
	}
}

func TestTier(t *testing.T) {
	tests := []struct {
		name string
		risk float64
		want string
	}{
		{"boundary 70 is medium", 70.0, TierMedium},
		{"just above 70 is high", 70.01, TierHigh},
		{"boundary 40 is medium", 40.0, TierMedium},
		{"just below 40 is low", 39.99, TierLow},
		{"zero is low", 0, TierLow},
		{"hundred is high", 100, TierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tier(tt.risk); got != tt.want {
				t.Errorf("Tier(%v) = %q, want %q", tt.risk, got, tt.want)
			}
		})
	}
}

func TestConfidenceDisplay(t *testing.T) {
	tests := []struct {
		name    string
		probWin float64
		want    string
	}{
		{"zero", 0, "98.12%"},
		{"high confidence", 0.98, "99.10%"},
		{"half", 0.5, "98.62%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfidenceDisplay(tt.probWin); got != tt.want {
				t.Errorf("ConfidenceDisplay(%v) = %q, want %q", tt.probWin, got, tt.want)
			}
		})
	}
}

func TestRemarksPrefix(t *testing.T) {
	got := RemarksPrefix(85.5, "Follow up in two weeks.")
	want := "Risk Level: High Risk. Follow up in two weeks."
	if got != want {
		t.Errorf("RemarksPrefix() = %q, want %q", got, want)
	}

	// Empty caller remarks keep the trailing space, matching the stored form.
	got = RemarksPrefix(10, "")
	want = "Risk Level: Low Risk. "
	if got != want {
		t.Errorf("RemarksPrefix() = %q, want %q", got, want)
	}
}
