// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple", "pw123"},
		{"long", strings.Repeat("a", 70)},
		{"unicode", "비밀번호123"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if err != nil {
				t.Fatalf("HashPassword() error = %v", err)
			}
			if hash == tt.password {
				t.Error("HashPassword() returned the plaintext password")
			}
			if !strings.HasPrefix(hash, "$2") {
				t.Errorf("HashPassword() = %q, expected a bcrypt hash", hash)
			}
			if !VerifyPassword(hash, tt.password) {
				t.Error("VerifyPassword() rejected the correct password")
			}
		})
	}
}

func TestHashPasswordSalted(t *testing.T) {
	// Two hashes of the same password must differ (random salt).
	h1, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if h1 == h2 {
		t.Error("HashPassword() produced identical hashes for the same password")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{"correct password", hash, "pw123", true},
		{"wrong password", hash, "wrong", false},
		{"empty password", hash, "", false},
		{"garbage hash", "not-a-hash", "pw123", false},
		{"empty hash", "", "pw123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyPassword(tt.hash, tt.password); got != tt.want {
				t.Errorf("VerifyPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}
