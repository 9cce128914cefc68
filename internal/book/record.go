package book

import (
	"fmt"
	"strings"
	"time"

	"github.com/vkovtun/go-assistant/internal/config"
)

// Record is one contact: an immutable name, an ordered phone sequence
// (duplicates allowed, order is insertion order) and an optional birthday.
// Every stored field has passed validation; mutation goes through the
// Add/Remove/Edit/Set methods, which validate before touching state.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for the given name.
func NewRecord(rawName string) (*Record, error) {
	name, err := NewName(rawName)
	if err != nil {
		return nil, err
	}
	return &Record{name: name}, nil
}

// Name returns the contact's name string.
func (r *Record) Name() string { return r.name.String() }

// Phones returns the digit strings in insertion order.
func (r *Record) Phones() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.String()
	}
	return out
}

// AddPhone validates and appends a phone number. Duplicates are permitted.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone deletes the first phone equal to raw.
func (r *Record) RemovePhone(raw string) error {
	idx := r.indexOf(raw)
	if idx < 0 {
		return ErrPhoneNotFound
	}
	r.phones = append(r.phones[:idx], r.phones[idx+1:]...)
	return nil
}

// EditPhone replaces the first phone equal to oldRaw with a newly validated
// value, preserving its position. On any failure the sequence is unchanged.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	idx := r.indexOf(oldRaw)
	if idx < 0 {
		return ErrPhoneToEditNotFound
	}
	phone, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	r.phones[idx] = phone
	return nil
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	if idx := r.indexOf(raw); idx >= 0 {
		return r.phones[idx], true
	}
	return Phone{}, false
}

func (r *Record) indexOf(raw string) int {
	for i, p := range r.phones {
		if p.String() == raw {
			return i
		}
	}
	return -1
}

// SetBirthday parses and stores the birthday, overwriting any previous value.
// A failed parse leaves the previous birthday in place.
func (r *Record) SetBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// SetBirthdayDate stores an already-valid date, overwriting any previous value.
func (r *Record) SetBirthdayDate(t time.Time) {
	birthday := BirthdayFromTime(t)
	r.birthday = &birthday
}

// Birthday returns the stored birthday, if any.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// DaysUntilBirthday reports the non-negative day count until the next
// occurrence of the birthday, relative to today. The second return is false
// when no birthday is set. Read-only: repeated calls with the same today
// yield the same result.
func (r *Record) DaysUntilBirthday(today time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}
	b := r.birthday.Time()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	candidate := time.Date(today.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(todayStart) {
		candidate = time.Date(today.Year()+1, b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(candidate.Sub(todayStart).Hours() / config.HoursPerDay), true
}

// String renders the contact as a single line. The birthday clause is
// omitted entirely when no birthday is set.
func (r *Record) String() string {
	clause := ""
	if r.birthday != nil {
		clause = fmt.Sprintf(config.RecordBirthdayFmt, r.birthday)
	}
	return fmt.Sprintf(config.RecordFmt, r.name, strings.Join(r.Phones(), config.PhoneSeparator), clause)
}
