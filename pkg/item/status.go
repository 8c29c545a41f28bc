package item

import (
	"time"

	"fridgify/domain"
)

const dateLayout = "2006-01-02"

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DetermineStatus classifies an item by its expiry date. No expiry date means
// fresh; a date before today is expired; a date within expiringDays of today
// (inclusive) is expiring. Comparison is date-granular.
func DetermineStatus(expiryDate *time.Time, today time.Time, expiringDays int) string {
	if expiryDate == nil {
		return domain.StatusFresh
	}

	expiry := truncateToDay(*expiryDate)
	day := truncateToDay(today)

	if expiry.Before(day) {
		return domain.StatusExpired
	}
	if int(expiry.Sub(day).Hours()/24) <= expiringDays {
		return domain.StatusExpiring
	}
	return domain.StatusFresh
}
