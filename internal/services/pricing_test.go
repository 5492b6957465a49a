package services

import (
	"testing"

	"travelbackend/internal/domain"
)

func TestDiscountPercentTiers(t *testing.T) {
	cases := []struct {
		days int
		want int
	}{
		{120, 30},
		{91, 30},
		{90, 20},
		{80, 20},
		{79, 10},
		{60, 10},
		{59, 5},
		{45, 5},
		{44, 0},
		{1, 0},
		{0, 0},
		{-10, 0},
	}
	for _, tc := range cases {
		if got := DiscountPercent(tc.days); got != tc.want {
			t.Fatalf("DiscountPercent(%d) = %d, want %d", tc.days, got, tc.want)
		}
	}
}

func TestModeFare(t *testing.T) {
	base := 300.0
	if got := ModeFare(domain.ModeAir, base); got != 300 {
		t.Fatalf("air fare = %v, want 300", got)
	}
	if got := ModeFare(domain.ModeCoach, base); got != 100 {
		t.Fatalf("coach fare = %v, want 100", got)
	}
	if got := ModeFare(domain.ModeTrain, base); got != 900 {
		t.Fatalf("train fare = %v, want 900", got)
	}
}

func TestModeCapacity(t *testing.T) {
	if got := ModeCapacity(domain.ModeAir); got != 140 {
		t.Fatalf("air capacity = %d, want 140", got)
	}
	if got := ModeCapacity(domain.ModeCoach); got != 50 {
		t.Fatalf("coach capacity = %d, want 50", got)
	}
	if got := ModeCapacity(domain.ModeTrain); got != 240 {
		t.Fatalf("train capacity = %d, want 240", got)
	}
}

func TestClassPricesRatioAndDiscount(t *testing.T) {
	eco, biz, first := ClassPrices(100, 30)
	if eco != 70 || biz != 140 || first != 210 {
		t.Fatalf("discounted prices = %v/%v/%v, want 70/140/210", eco, biz, first)
	}

	eco, biz, first = ClassPrices(100, 0)
	if eco != 100 || biz != 200 || first != 300 {
		t.Fatalf("undiscounted prices = %v/%v/%v, want 100/200/300", eco, biz, first)
	}
}

func TestClassSeatsSplit(t *testing.T) {
	eco, biz, first := ClassSeats(140)
	if eco != 84 || biz != 28 || first != 28 {
		t.Fatalf("seats for 140 = %d/%d/%d, want 84/28/28", eco, biz, first)
	}

	// Each share floors independently; the total may undershoot.
	eco, biz, first = ClassSeats(7)
	if eco != 4 || biz != 1 || first != 1 {
		t.Fatalf("seats for 7 = %d/%d/%d, want 4/1/1", eco, biz, first)
	}
}

func TestRefundPercentSchedule(t *testing.T) {
	cases := []struct {
		days int
		want float64
	}{
		{90, 1.0},
		{61, 1.0},
		{60, 0.0},
		{51, 0.0},
		{50, 0.6},
		{40, 0.6},
		{39, 0.0},
		{0, 0.0},
		{-3, 0.0},
	}
	for _, tc := range cases {
		if got := RefundPercent(tc.days); got != tc.want {
			t.Fatalf("RefundPercent(%d) = %v, want %v", tc.days, got, tc.want)
		}
	}
}
