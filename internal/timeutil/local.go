// Package timeutil pins report timestamps and date-range arithmetic to the
// shop's local timezone, configured with SHOP_TIMEZONE.
package timeutil

import (
	"os"
	"time"
)

// Shop is the shop's local timezone.
var Shop *time.Location

func init() {
	name := os.Getenv("SHOP_TIMEZONE")
	if name == "" {
		Shop = time.Local
		return
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		Shop = time.Local
		return
	}
	Shop = loc
}

// Now returns the current time in the shop timezone
func Now() time.Time {
	return time.Now().In(Shop)
}

// ParseDate parses a YYYY-MM-DD date string in the shop timezone
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, Shop)
}

// StartOfDay returns the start of day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	local := t.In(Shop)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Shop)
}

// EndOfDay returns the end of day (23:59:59) for the given time
func EndOfDay(t time.Time) time.Time {
	local := t.In(Shop)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999999999, Shop)
}

// Common layouts for display formatting
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
