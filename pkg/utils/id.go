package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID generates a new random identifier for stored entities.
func NewID() string {
	return uuid.NewString()
}

// Today returns the current date as an ISO "YYYY-MM-DD" string, the
// format every stored date uses.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// CurrentPeriod returns the current month as a "YYYY-MM" period string.
func CurrentPeriod() string {
	return time.Now().Format("2006-01")
}

// ValidPeriod reports whether s is a well-formed "YYYY-MM" period.
func ValidPeriod(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// AddDays shifts an ISO date string by n days. Invalid inputs return
// the input unchanged.
func AddDays(isoDate string, n int) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.AddDate(0, 0, n).Format("2006-01-02")
}

// NewSaleNo generates a human-readable receipt number.
func NewSaleNo() string {
	return fmt.Sprintf("SALE-%s", time.Now().Format("20060102-150405"))
}
