package middleware

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

func TestExtractUserID(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    uint
		wantErr bool
	}{
		{"float64", jwt.MapClaims{"id": float64(42)}, 42, false},
		{"string", jwt.MapClaims{"id": "42"}, 42, false},
		{"int", jwt.MapClaims{"id": 42}, 42, false},
		{"missing", jwt.MapClaims{}, 0, true},
		{"bad string", jwt.MapClaims{"id": "abc"}, 0, true},
		{"unsupported", jwt.MapClaims{"id": []string{"42"}}, 0, true},
	}

	for _, tt := range tests {
		got, err := extractUserID(tt.claims)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got id %d", tt.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestExtractRole(t *testing.T) {
	role, err := extractRole(jwt.MapClaims{"role": "doctor"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != "doctor" {
		t.Errorf("expected doctor, got %q", role)
	}

	if _, err := extractRole(jwt.MapClaims{}); err == nil {
		t.Error("expected error for missing role claim")
	}

	if _, err := extractRole(jwt.MapClaims{"role": 3}); err == nil {
		t.Error("expected error for non-string role claim")
	}
}
