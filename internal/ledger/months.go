package ledger

import "time"

var monthNames = [12]string{
	"Январь",
	"Февраль",
	"Март",
	"Апрель",
	"Май",
	"Июнь",
	"Июль",
	"Август",
	"Сентябрь",
	"Октябрь",
	"Ноябрь",
	"Декабрь",
}

// MonthName returns the Russian month label for a period key. Out of range
// keys are clamped.
func MonthName(key int) string {
	return monthNames[clampPeriod(key)]
}

// MonthNames returns all month labels indexed by period key.
func MonthNames() []string {
	names := monthNames
	return names[:]
}

// CurrentPeriod returns the period key of now.
func CurrentPeriod(now time.Time) int {
	return PeriodKey(now)
}
