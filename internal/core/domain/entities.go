package domain

// DealStatus represents the lifecycle state of a deal
type DealStatus string

const (
	DealApplying             DealStatus = "APPLYING"
	DealNormal               DealStatus = "NORMAL"
	DealDelay                DealStatus = "DELAY"
	DealOverdue              DealStatus = "OVERDUE"
	DealNonperform           DealStatus = "NONPERFORM"
	DealNonperformCompletion DealStatus = "NONPERFORM_COMPLETION"
	DealCompletion           DealStatus = "COMPLETION"
)

// AllDealStatuses returns the closed set of deal statuses.
// Summary buckets iterate over this slice, so every status gets a
// bucket even when the user holds nothing in it.
func AllDealStatuses() []DealStatus {
	return []DealStatus{
		DealApplying,
		DealNormal,
		DealDelay,
		DealOverdue,
		DealNonperform,
		DealNonperformCompletion,
		DealCompletion,
	}
}

// IsValidDealStatus reports whether s is a known deal status
func IsValidDealStatus(s string) bool {
	for _, status := range AllDealStatuses() {
		if string(status) == s {
			return true
		}
	}
	return false
}

// DealCategory represents the collateral category of a deal
type DealCategory string

const (
	CategoryMortgage  DealCategory = "MORTGAGE"
	CategoryPersonal  DealCategory = "PERSONAL"
	CategoryCorporate DealCategory = "CORPORATE"
)

// Label returns the display label for a category
func (c DealCategory) Label() string {
	switch c {
	case CategoryMortgage:
		return "부동산 담보"
	case CategoryPersonal:
		return "개인 신용"
	case CategoryCorporate:
		return "법인 신용"
	default:
		return string(c)
	}
}

// DealGrade represents the risk grade assigned to a deal
type DealGrade string

const (
	GradeAPlus DealGrade = "A_PLUS"
	GradeA     DealGrade = "A"
	GradeBPlus DealGrade = "B_PLUS"
	GradeB     DealGrade = "B"
	GradeC     DealGrade = "C"
	GradeD     DealGrade = "D"
)

// Label returns the display label for a grade
func (g DealGrade) Label() string {
	switch g {
	case GradeAPlus:
		return "A+"
	case GradeBPlus:
		return "B+"
	default:
		return string(g)
	}
}

// PaybackState represents the settlement state of a payback row
type PaybackState string

const (
	PaybackToBePaid PaybackState = "TO_BE_PAID"
	PaybackPaid     PaybackState = "PAID"
)
