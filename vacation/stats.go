/*
stats.go - Vacation balance calculation

PURPOSE:
  Derives an employee's vacation position for a reference date. Nothing is
  cached or persisted: the same employee and date always yield the same
  Stats, so callers may compute stats for many employees concurrently.

RULES:
  Accrual:   DaysPerMonth credited at the start of each month (Jan = 2, Feb = 4)
  Expiry:    Only requests dated in the reference year count
  Bonus:     The first positive birthday-month request of the year has one
             day covered by the bonus instead of regular days
  Available: The bonus is claimable only during the birthday month, and only
             while unused

BALANCES:
  RegularBalance = RegularAccrued - RegularUsed   (may be negative)
  TotalBalance   = RegularBalance + BonusAvailable

EXAMPLE:
  emp := Employee{Birthday: MonthDay{Month: time.February, Day: 10}}
  stats := ComputeStats(emp, NewDate(2024, time.February, 15))
  // stats.RegularAccrued == 4, stats.BonusAvailable == 1, stats.TotalBalance == 5
*/
package vacation

import "strconv"

// Stats is an employee's vacation position as of a reference date.
type Stats struct {
	RegularAccrued     int
	RegularUsed        int
	RegularBalance     int
	BonusUsed          bool
	BonusAvailable     int
	TotalBalance       int
	IsBirthdayMonthNow bool
}

// ComputeStats calculates emp's balance as of asOf.
//
// emp.Birthday must be a valid MonthDay; request dates must be valid dates.
// Request order only decides which birthday-month request absorbs the bonus,
// never the totals.
func ComputeStats(emp Employee, asOf Date) Stats {
	stats := Stats{RegularAccrued: AccruedAsOf(asOf)}

	for _, req := range emp.Requests {
		if req.Date.Year() != asOf.Year() {
			continue
		}

		deduct := req.Days
		if req.Date.Month() == emp.Birthday.Month && !stats.BonusUsed && deduct > 0 {
			deduct -= BirthdayBonusDays
			stats.BonusUsed = true
		}
		stats.RegularUsed += deduct
	}

	stats.IsBirthdayMonthNow = asOf.Month() == emp.Birthday.Month
	if stats.IsBirthdayMonthNow && !stats.BonusUsed {
		stats.BonusAvailable = BirthdayBonusDays
	}

	stats.RegularBalance = stats.RegularAccrued - stats.RegularUsed
	stats.TotalBalance = stats.RegularBalance + stats.BonusAvailable
	return stats
}

// FormatBalance renders n with an explicit "+" when positive: 4 -> "+4",
// 0 -> "0", -3 -> "-3".
func FormatBalance(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
