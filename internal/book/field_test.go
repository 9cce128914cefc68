package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkovtun/go-assistant/internal/book"
)

func TestNewName(t *testing.T) {
	t.Run("rejects empty", func(t *testing.T) {
		_, err := book.NewName("")
		assert.ErrorIs(t, err, book.ErrEmptyName)
	})

	t.Run("accepts any non-empty string", func(t *testing.T) {
		name, err := book.NewName("Alice")
		require.NoError(t, err)
		assert.Equal(t, "Alice", name.String())
	})
}

// TestNewPhone covers the ten-digit contract: exactly ten ASCII decimal
// digits on the raw string, no normalization of separators.
func TestNewPhone(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"Exactly ten digits", "0123456789", true},
		{"All zeros", "0000000000", true},
		{"Nine digits", "123456789", false},
		{"Eleven digits", "12345678901", false},
		{"Letters mixed in", "12345abcde", false},
		{"Dashes not stripped", "050-123-45", false},
		{"Leading space", " 0123456789", false},
		{"Plus prefix", "+123456789", false},
		{"Empty", "", false},
		{"Unicode digits rejected", "٠١٢٣٤٥٦٧٨٩", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := book.NewPhone(tt.raw)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.raw, phone.String(), "valid phone must round-trip unchanged")
			} else {
				assert.ErrorIs(t, err, book.ErrInvalidPhone)
			}
		})
	}
}

// TestNewBirthday covers DD.MM.YYYY parsing, including impossible calendar
// dates that are syntactically well-formed.
func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"Standard date", "15.03.1990", true},
		{"Leap day in leap year", "29.02.2024", true},
		{"First of January", "01.01.2000", true},
		{"Leap day in non-leap year", "29.02.2023", false},
		{"Impossible date", "31.02.2024", false},
		{"ISO separators", "1990-03-15", false},
		{"Slash separators", "15/03/1990", false},
		{"Non-numeric", "aa.bb.cccc", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			birthday, err := book.NewBirthday(tt.raw)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.raw, birthday.String(), "valid date must re-render identically")
			} else {
				assert.ErrorIs(t, err, book.ErrInvalidDate)
			}
		})
	}
}

func TestBirthdayFromTime(t *testing.T) {
	date := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)
	birthday := book.BirthdayFromTime(date)

	assert.Equal(t, "15.03.1990", birthday.String())
	assert.Equal(t, date, birthday.Time())
}
