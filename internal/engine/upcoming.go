package engine

import (
	"sort"
	"time"

	"github.com/vkovtun/go-assistant/internal/config"
)

// BirthdayEntry is the minimal view of a contact the calendar logic needs:
// a name and a birth date. It decouples the engine from the record model.
type BirthdayEntry struct {
	Name        string
	DateOfBirth time.Time
}

// CongratulationGroup collects the contacts to congratulate on one date.
// Names are sorted lexicographically ascending.
type CongratulationGroup struct {
	Date  time.Time
	Names []string
}

// midnight normalizes a moment to a pure UTC calendar date. All window
// arithmetic runs on UTC midnights so day deltas are exact integers
// regardless of the caller's timezone or DST transitions.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextOccurrence determines the next date the birthday occurs, relative to
// today. A birthday falling on today counts as occurring today. Go's
// time.Date normalizes Feb 29 to March 1 in non-leap years.
func NextOccurrence(today, birthDate time.Time) time.Time {
	todayStart := midnight(today)
	candidate := time.Date(today.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(todayStart) {
		candidate = time.Date(today.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	}
	return candidate
}

// ShiftToBusinessDay moves a date landing on a weekend forward to the next
// Monday. With Monday as weekday index 0, Saturday (5) advances two days and
// Sunday (6) advances one.
func ShiftToBusinessDay(d time.Time) time.Time {
	idx := (int(d.Weekday()) + config.DaysInWeek - 1) % config.DaysInWeek
	if idx >= config.WeekendIndex {
		return d.AddDate(0, 0, config.DaysInWeek-idx)
	}
	return d
}

// Upcoming returns the contacts whose next birthday falls within
// [today, today+6], grouped by their weekend-shifted congratulation date.
// Groups are ordered by date ascending; names within a group are sorted.
// An empty result means no upcoming birthdays.
func Upcoming(today time.Time, entries []BirthdayEntry) []CongratulationGroup {
	todayStart := midnight(today)
	grouped := make(map[time.Time][]string)

	for _, entry := range entries {
		candidate := NextOccurrence(today, entry.DateOfBirth)
		delta := int(candidate.Sub(todayStart).Hours() / config.HoursPerDay)
		if delta < 0 || delta >= config.UpcomingWindowDays {
			continue
		}
		congratulation := ShiftToBusinessDay(candidate)
		grouped[congratulation] = append(grouped[congratulation], entry.Name)
	}

	groups := make([]CongratulationGroup, 0, len(grouped))
	for date, names := range grouped {
		sort.Strings(names)
		groups = append(groups, CongratulationGroup{Date: date, Names: names})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups
}
