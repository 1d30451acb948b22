package screening

import (
	"fmt"

	"github.com/reportcare/reportcare_backend/internal/classifier"
)

// Optional measurement defaults. These mirror the dataset medians the model
// was trained against and apply before classification AND before storage, so
// a report always shows the values the classifier actually saw.
const (
	DefaultPregnancies = 0.0
	DefaultSkin        = 20.0
	DefaultDPF         = 0.47
)

// Measurements is the raw screening payload. Optional fields are pointers so
// an absent value and an explicit zero are distinguishable.
type Measurements struct {
	Pregnancies *float64
	Glucose     *float64
	BP          *float64
	Skin        *float64
	Insulin     *float64
	BMI         *float64
	DPF         *float64
	Age         *float64
}

// Normalize validates and coerces the payload into the fixed vector
// [pregnancies, glucose, bp, skin, insulin, bmi, dpf, age]. Missing required
// fields reject the whole request before anything is written.
func Normalize(m Measurements) ([]float64, error) {
	required := []struct {
		name  string
		value *float64
	}{
		{"glucose", m.Glucose},
		{"bp", m.BP},
		{"insulin", m.Insulin},
		{"bmi", m.BMI},
		{"age", m.Age},
	}
	for _, f := range required {
		if f.value == nil {
			return nil, fmt.Errorf("%w: %s is required", ErrValidation, f.name)
		}
	}

	if *m.Age < 1 || *m.Age > 120 {
		return nil, fmt.Errorf("%w: age out of range", ErrValidation)
	}

	v := make([]float64, classifier.FeatureCount)
	v[0] = orDefault(m.Pregnancies, DefaultPregnancies)
	v[1] = *m.Glucose
	v[2] = *m.BP
	v[3] = orDefault(m.Skin, DefaultSkin)
	v[4] = *m.Insulin
	v[5] = *m.BMI
	v[6] = orDefault(m.DPF, DefaultDPF)
	v[7] = *m.Age
	return v, nil
}

func orDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
