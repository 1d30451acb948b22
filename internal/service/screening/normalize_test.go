package screening

import (
	"errors"
	"testing"
)

func fp(v float64) *float64 { return &v }

func fullMeasurements() Measurements {
	return Measurements{
		Pregnancies: fp(3),
		Glucose:     fp(148),
		BP:          fp(72),
		Skin:        fp(35),
		Insulin:     fp(94),
		BMI:         fp(33.6),
		DPF:         fp(0.627),
		Age:         fp(50),
	}
}

func TestNormalizeVectorOrder(t *testing.T) {
	v, err := Normalize(fullMeasurements())
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	want := []float64{3, 148, 72, 35, 94, 33.6, 0.627, 50}
	if len(v) != len(want) {
		t.Fatalf("vector width %d, want %d", len(v), len(want))
	}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("v[%d] = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestNormalizeDefaults(t *testing.T) {
	m := fullMeasurements()
	m.Pregnancies = nil
	m.Skin = nil
	m.DPF = nil

	v, err := Normalize(m)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if v[0] != DefaultPregnancies {
		t.Errorf("pregnancies default = %v, want %v", v[0], DefaultPregnancies)
	}
	if v[3] != DefaultSkin {
		t.Errorf("skin default = %v, want %v", v[3], DefaultSkin)
	}
	if v[6] != DefaultDPF {
		t.Errorf("dpf default = %v, want %v", v[6], DefaultDPF)
	}
}

func TestNormalizeExplicitZeroIsKept(t *testing.T) {
	m := fullMeasurements()
	m.Skin = fp(0)

	v, err := Normalize(m)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if v[3] != 0 {
		t.Errorf("explicit zero skin = %v, want 0", v[3])
	}
}

func TestNormalizeRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Measurements)
	}{
		{"missing glucose", func(m *Measurements) { m.Glucose = nil }},
		{"missing bp", func(m *Measurements) { m.BP = nil }},
		{"missing insulin", func(m *Measurements) { m.Insulin = nil }},
		{"missing bmi", func(m *Measurements) { m.BMI = nil }},
		{"missing age", func(m *Measurements) { m.Age = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fullMeasurements()
			tt.mutate(&m)

			_, err := Normalize(m)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNormalizeAgeRange(t *testing.T) {
	for _, age := range []float64{0, 121, -5} {
		m := fullMeasurements()
		m.Age = fp(age)
		if _, err := Normalize(m); !errors.Is(err, ErrValidation) {
			t.Errorf("age %v: expected ErrValidation, got %v", age, err)
		}
	}
}
