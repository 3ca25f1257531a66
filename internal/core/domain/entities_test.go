package domain

import "testing"

func TestIsValidDealStatus(t *testing.T) {
	for _, status := range AllDealStatuses() {
		if !IsValidDealStatus(string(status)) {
			t.Errorf("IsValidDealStatus(%q) = false", status)
		}
	}
	for _, s := range []string{"", "normal", "UNKNOWN"} {
		if IsValidDealStatus(s) {
			t.Errorf("IsValidDealStatus(%q) = true", s)
		}
	}
}

func TestGradeLabel(t *testing.T) {
	tests := []struct {
		grade DealGrade
		want  string
	}{
		{GradeAPlus, "A+"},
		{GradeBPlus, "B+"},
		{GradeA, "A"},
		{GradeD, "D"},
	}
	for _, tt := range tests {
		if got := tt.grade.Label(); got != tt.want {
			t.Errorf("%s.Label() = %q, want %q", tt.grade, got, tt.want)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		category DealCategory
		want     string
	}{
		{CategoryMortgage, "부동산 담보"},
		{CategoryPersonal, "개인 신용"},
		{CategoryCorporate, "법인 신용"},
	}
	for _, tt := range tests {
		if got := tt.category.Label(); got != tt.want {
			t.Errorf("%s.Label() = %q, want %q", tt.category, got, tt.want)
		}
	}
}
