package engine

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Celebration pairs a contact name with the date a birthday greeting would
// actually be sent (the next occurrence, shifted off the weekend).
type Celebration struct {
	Name           string
	Congratulation time.Time
}

// Planner is the core service computing upcoming birthdays and calendar data.
type Planner struct {
	Clock Clock // Interface for time mocking.

	// FormatSummary allows the caller to inject localized calendar summaries.
	FormatSummary func(name string) string
}

// Upcoming selects the contacts whose birthday falls within the inclusive
// 7-day forward window from "today". Per contact with a birthday set:
//
//  1. project the birthday into the current year (Feb 29 collapses to Feb 28
//     in non-leap years),
//  2. roll one year forward when that projection is already past,
//  3. keep it when 0 <= whole days from today <= 7,
//  4. shift a Saturday or Sunday result to the following Monday.
//
// The weekend shift is applied after the window test and is not re-validated,
// so a boundary date may be greeted just outside the window. Results keep the
// book's insertion order; they are not sorted by date.
func (p *Planner) Upcoming(b *book.AddressBook) []Celebration {
	start := time.Now()
	today := dateOnly(p.Clock.Now())

	stats := struct{ total, withBday, upcoming int }{}
	var out []Celebration

	for _, rec := range b.All() {
		stats.total++
		birthday, ok := rec.Birthday()
		if !ok {
			continue
		}
		stats.withBday++

		occurrence, ok := nextOccurrence(today, birthday)
		if !ok {
			continue
		}
		stats.upcoming++

		out = append(out, Celebration{
			Name:           rec.Name(),
			Congratulation: shiftFromWeekend(occurrence),
		})
	}

	slog.Info(config.MsgScanUpcoming,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.total),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeyUpcoming, stats.upcoming),
		),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return out
}

// nextOccurrence projects the birthday to its next occurrence relative to
// today and reports whether it lands inside the proximity window.
func nextOccurrence(today, birthday time.Time) (time.Time, bool) {
	occurrence := occurrenceInYear(today.Year(), birthday)
	if occurrence.Before(today) {
		occurrence = occurrenceInYear(today.Year()+1, birthday)
	}

	// Both dates are midnight UTC, so the division is exact.
	days := int(occurrence.Sub(today).Hours() / 24)
	if days < 0 || days > config.UpcomingWindowDays {
		return time.Time{}, false
	}
	return occurrence, true
}

// occurrenceInYear places the birthday's month and day into the given year.
// February 29th collapses to February 28th when the year is not a leap year;
// relying on time.Date normalization would give March 1st instead.
func occurrenceInYear(year int, birthday time.Time) time.Time {
	month, day := birthday.Month(), birthday.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = config.LeapDaySubstDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// shiftFromWeekend moves a Saturday or Sunday date to the following Monday.
func shiftFromWeekend(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, 2)
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	}
	return t
}

// dateOnly truncates a timestamp to its calendar date at midnight UTC.
// Date arithmetic is done in UTC to keep day differences exact across DST.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
