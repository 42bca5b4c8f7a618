package vacation

import "time"

// Company vacation policy. Fixed for every employee.
const (
	// DaysPerMonth is credited on the first of each month, so January
	// already carries DaysPerMonth days.
	DaysPerMonth = 2

	// BirthdayBonusDays is granted once per calendar year and can only be
	// taken during the birthday month. It does not carry over.
	BirthdayBonusDays = 1
)

// AccruedAsOf returns the regular days credited in asOf's year up to and
// including asOf's month.
func AccruedAsOf(asOf Date) int {
	return DaysPerMonth * monthsCredited(asOf.Month())
}

// monthsCredited counts January..m inclusive.
func monthsCredited(m time.Month) int {
	return int(m-time.January) + 1
}
