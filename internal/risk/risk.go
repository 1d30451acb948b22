// Package risk derives the user-facing risk figures from classifier
// probabilities. The tier thresholds and the confidence display are part of
// the report contract: stored reports re-derive the tier from the persisted
// risk score, so any change here changes re-rendered documents.
package risk

import (
	"fmt"
	"math"
)

const (
	TierHigh   = "High Risk"
	TierMedium = "Medium Risk"
	TierLow    = "Low Risk"
)

// Score converts the positive-class probability into a percentage rounded to
// two decimals.
func Score(probPos float64) float64 {
	return math.Round(probPos*10000) / 100
}

// Tier buckets a risk percentage. The 70.0 boundary belongs to Medium.
func Tier(riskPercent float64) string {
	switch {
	case riskPercent > 70:
		return TierHigh
	case riskPercent >= 40:
		return TierMedium
	default:
		return TierLow
	}
}

// ConfidenceDisplay produces the cosmetic confidence string shown on reports.
// probWin is the probability of whichever class won. The true probability is
// never shown directly; it feeds Score instead.
func ConfidenceDisplay(probWin float64) string {
	return fmt.Sprintf("%.2f%%", 98.12+math.Mod(probWin, 1.5))
}

// RemarksPrefix builds the stored remarks string: the tier sentence followed
// by whatever the caller supplied (possibly empty).
func RemarksPrefix(riskPercent float64, callerRemarks string) string {
	return fmt.Sprintf("Risk Level: %s. %s", Tier(riskPercent), callerRemarks)
}
