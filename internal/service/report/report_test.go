package report

import "testing"

func TestPublicID(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{1, "PAT-001"},
		{12, "PAT-012"},
		{123, "PAT-123"},
		{1234, "PAT-1234"}, // padding is a minimum width, digits are never lost
	}

	for _, tt := range tests {
		if got := PublicID(tt.id); got != tt.want {
			t.Errorf("PublicID(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
