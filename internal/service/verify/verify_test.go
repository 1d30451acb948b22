package verify

import (
	"errors"
	"testing"

	"github.com/reportcare/reportcare_backend/internal/service/report"
)

func TestParsePublicID(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"PAT-001", 1},
		{"PAT-042", 42},
		{"pat-7", 7},
		{"Pat-1234", 1234},
		{"  PAT-5  ", 5},
		{"19", 19},
	}
	for _, tt := range tests {
		got, err := ParsePublicID(tt.raw)
		if err != nil {
			t.Errorf("ParsePublicID(%q) error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePublicID(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParsePublicIDRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "PAT-", "PAT-abc", "abc", "-3", "PAT--3", "0"} {
		if _, err := ParsePublicID(raw); !errors.Is(err, ErrInvalidID) {
			t.Errorf("ParsePublicID(%q): expected ErrInvalidID, got %v", raw, err)
		}
	}
}

func TestParsePublicIDRoundTrip(t *testing.T) {
	for _, id := range []int{1, 42, 999, 1234} {
		got, err := ParsePublicID(report.PublicID(id))
		if err != nil {
			t.Fatalf("round trip %d: %v", id, err)
		}
		if got != id {
			t.Errorf("round trip %d: got %d", id, got)
		}
	}
}
