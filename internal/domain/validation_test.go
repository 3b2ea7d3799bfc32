package domain

import (
	"fmt"
	"testing"
	"time"
)

func TestIsAlphanumericUsername(t *testing.T) {
	valid := []string{"alice", "alice42", "42", "AliceSmith"}
	invalid := []string{"", "alice smith", "alice_smith", "alice-smith", "alice!"}

	for _, s := range valid {
		if !IsAlphanumericUsername(s) {
			t.Errorf("Expected username %q to be valid", s)
		}
	}

	for _, s := range invalid {
		if IsAlphanumericUsername(s) {
			t.Errorf("Expected username %q to be invalid", s)
		}
	}
}

func TestIsPasswordLongEnough(t *testing.T) {
	if IsPasswordLongEnough("Abc1234") {
		t.Error("Expected 7-character password to be too short")
	}
	if !IsPasswordLongEnough("Abc12345") {
		t.Error("Expected 8-character password to be long enough")
	}
}

func TestHasUpperAndDigit(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Password1", true},
		{"PASSWORD1", true},
		{"password1", false},
		{"Password", false},
		{"12345678", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasUpperAndDigit(tt.password); got != tt.want {
			t.Errorf("HasUpperAndDigit(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"user.name@example.com",
		"user+tag@example.com",
		"user_%-@sub.example.co",
	}
	invalid := []string{
		"",
		"userexample.com",
		"user@",
		"@example.com",
		"user@example",
		"user@example.c",
		"user@example.c0m",
	}

	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("Expected email %q to be valid", email)
		}
	}

	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("Expected email %q to be invalid", email)
		}
	}
}

func TestIsISODate(t *testing.T) {
	valid := []string{"1990-01-01", "2024-12-31", "9999-99-99"}
	invalid := []string{"", "1990-1-1", "01-01-1990", "1990/01/01", "1990-01-01T00:00:00"}

	for _, s := range valid {
		if !IsISODate(s) {
			t.Errorf("Expected date %q to match the YYYY-MM-DD shape", s)
		}
	}

	for _, s := range invalid {
		if IsISODate(s) {
			t.Errorf("Expected date %q not to match the YYYY-MM-DD shape", s)
		}
	}
}

func TestIsAtLeast18At(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthdate string
		want      bool
	}{
		{"adult", "1990-01-01", true},
		{"child", "2020-01-01", false},
		{"future birthdate", "2030-01-01", false},
		{"malformed", "not-a-date", false},
		{"shape ok but not a calendar date", "9999-99-99", false},
		// 18*365 days before the reference time, the floor(days/365)
		// approximation flips to 18 regardless of leap years.
		{
			"exactly 18*365 days old",
			now.AddDate(0, 0, -18*365).Format("2006-01-02"),
			true,
		},
		{
			"one day short of 18*365 days",
			now.AddDate(0, 0, -18*365+1).Format("2006-01-02"),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAtLeast18At(tt.birthdate, now); got != tt.want {
				t.Errorf("isAtLeast18At(%q) = %v, want %v", tt.birthdate, got, tt.want)
			}
		})
	}
}

func TestIsValidCardNumber(t *testing.T) {
	tests := []struct {
		ccNumber string
		want     bool
	}{
		{"1234567890123456", true},
		{"123456789012345", false},
		{"12345678901234567", false},
		{"123456789012345a", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidCardNumber(tt.ccNumber); got != tt.want {
			t.Errorf("IsValidCardNumber(%q) = %v, want %v", tt.ccNumber, got, tt.want)
		}
	}
}

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		amount int
		want   bool
	}{
		{99, false},
		{100, true},
		{999, true},
		{1000, false},
		{0, false},
		{-100, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("amount=%d", tt.amount), func(t *testing.T) {
			if got := IsValidAmount(tt.amount); got != tt.want {
				t.Errorf("IsValidAmount(%d) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}

func TestUserHasCreditCard(t *testing.T) {
	withCard := User{Username: "alice", CCNumber: "1234567890123456"}
	withoutCard := User{Username: "bob"}

	if !withCard.HasCreditCard() {
		t.Error("Expected user with ccNumber to have a credit card")
	}
	if withoutCard.HasCreditCard() {
		t.Error("Expected user without ccNumber to have no credit card")
	}
}
