package utils

import (
	"strings"
	"testing"
	"time"
)

func TestParseClockAcceptsBothLayouts(t *testing.T) {
	got, err := ParseClock("08:30")
	if err != nil || got != "08:30:00" {
		t.Fatalf("ParseClock(08:30) = %q, %v", got, err)
	}
	got, err = ParseClock("23:59:59")
	if err != nil || got != "23:59:59" {
		t.Fatalf("ParseClock(23:59:59) = %q, %v", got, err)
	}
	if _, err := ParseClock("25:00"); err == nil {
		t.Fatalf("ParseClock(25:00) should fail")
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2026, 1, 1, 23, 59, 59, 0, time.UTC)
	date := time.Date(2026, 1, 2, 0, 0, 1, 0, time.UTC)
	if got := DaysUntil(today, date); got != 1 {
		t.Fatalf("DaysUntil = %d, want 1", got)
	}

	past := time.Date(2025, 12, 30, 12, 0, 0, 0, time.UTC)
	if got := DaysUntil(today, past); got != -2 {
		t.Fatalf("DaysUntil past = %d, want -2", got)
	}
}

func TestNewReferenceShape(t *testing.T) {
	ref := NewReference("BK")
	if !strings.HasPrefix(ref, "BK-") || len(ref) != len("BK-")+16 {
		t.Fatalf("unexpected reference %q", ref)
	}
	if ref == NewReference("BK") {
		t.Fatalf("two references should not collide")
	}
}

func TestSlugify(t *testing.T) {
	if got := Slugify("  Terms & Conditions  "); got != "terms-conditions" {
		t.Fatalf("Slugify = %q", got)
	}
	if got := Slugify("Privacy Policy 2.0"); got != "privacy-policy-2-0" {
		t.Fatalf("Slugify = %q", got)
	}
}

func TestValidEmail(t *testing.T) {
	if !ValidEmail("user@example.com") {
		t.Fatalf("valid address rejected")
	}
	for _, bad := range []string{"", "user", "user@", "@example.com", "a b@c.d", "user@host"} {
		if ValidEmail(bad) {
			t.Fatalf("invalid address accepted: %q", bad)
		}
	}
}

func TestRoundMoney(t *testing.T) {
	if got := RoundMoney(33.333333); got != 33.33 {
		t.Fatalf("RoundMoney = %v", got)
	}
	if got := RoundMoney(66.666666); got != 66.67 {
		t.Fatalf("RoundMoney = %v", got)
	}
}
