package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkovtun/go-assistant/internal/book"
)

func newRecord(t *testing.T, name string) *book.Record {
	t.Helper()
	record, err := book.NewRecord(name)
	require.NoError(t, err)
	return record
}

func TestRecord_AddPhone(t *testing.T) {
	record := newRecord(t, "Alice")

	require.NoError(t, record.AddPhone("0123456789"))
	require.NoError(t, record.AddPhone("9876543210"))
	// Duplicates are permitted; insertion order is preserved.
	require.NoError(t, record.AddPhone("0123456789"))

	assert.Equal(t, []string{"0123456789", "9876543210", "0123456789"}, record.Phones())

	assert.ErrorIs(t, record.AddPhone("123"), book.ErrInvalidPhone)
	assert.Len(t, record.Phones(), 3, "failed add must not modify the sequence")
}

func TestRecord_RemovePhone(t *testing.T) {
	record := newRecord(t, "Alice")
	require.NoError(t, record.AddPhone("0123456789"))
	require.NoError(t, record.AddPhone("9876543210"))
	require.NoError(t, record.AddPhone("0123456789"))

	// Only the first matching entry is removed.
	require.NoError(t, record.RemovePhone("0123456789"))
	assert.Equal(t, []string{"9876543210", "0123456789"}, record.Phones())

	assert.ErrorIs(t, record.RemovePhone("5555555555"), book.ErrPhoneNotFound)
	assert.Len(t, record.Phones(), 2)
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("replaces in place preserving position", func(t *testing.T) {
		record := newRecord(t, "Alice")
		require.NoError(t, record.AddPhone("0123456789"))
		require.NoError(t, record.AddPhone("9876543210"))

		require.NoError(t, record.EditPhone("0123456789", "5555555555"))
		assert.Equal(t, []string{"5555555555", "9876543210"}, record.Phones())
	})

	t.Run("old number missing leaves sequence unchanged", func(t *testing.T) {
		record := newRecord(t, "Alice")
		require.NoError(t, record.AddPhone("0123456789"))

		err := record.EditPhone("1111111111", "5555555555")
		assert.ErrorIs(t, err, book.ErrPhoneToEditNotFound)
		assert.Equal(t, []string{"0123456789"}, record.Phones())
	})

	t.Run("invalid new number leaves old in place", func(t *testing.T) {
		record := newRecord(t, "Alice")
		require.NoError(t, record.AddPhone("0123456789"))

		err := record.EditPhone("0123456789", "not-a-phone")
		assert.ErrorIs(t, err, book.ErrInvalidPhone)
		assert.Equal(t, []string{"0123456789"}, record.Phones())
	})
}

func TestRecord_FindPhone(t *testing.T) {
	record := newRecord(t, "Alice")
	require.NoError(t, record.AddPhone("0123456789"))

	phone, ok := record.FindPhone("0123456789")
	assert.True(t, ok)
	assert.Equal(t, "0123456789", phone.String())

	_, ok = record.FindPhone("9999999999")
	assert.False(t, ok)
}

func TestRecord_SetBirthday(t *testing.T) {
	record := newRecord(t, "Alice")

	_, ok := record.Birthday()
	assert.False(t, ok, "new record has no birthday")

	require.NoError(t, record.SetBirthday("15.03.1990"))
	birthday, ok := record.Birthday()
	require.True(t, ok)
	assert.Equal(t, "15.03.1990", birthday.String())

	// Last write wins.
	require.NoError(t, record.SetBirthday("01.01.2000"))
	birthday, _ = record.Birthday()
	assert.Equal(t, "01.01.2000", birthday.String())

	// A failed parse keeps the previous value.
	assert.ErrorIs(t, record.SetBirthday("31.02.2024"), book.ErrInvalidDate)
	birthday, _ = record.Birthday()
	assert.Equal(t, "01.01.2000", birthday.String())
}

func TestRecord_DaysUntilBirthday(t *testing.T) {
	// Reference "today": June 15th, 2025.
	today := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday string
		expected int
	}{
		{"Birthday today", "15.06.1990", 0},
		{"Birthday tomorrow", "16.06.1990", 1},
		{"Six days out", "21.06.1990", 6},
		{"Passed yesterday wraps to next year", "14.06.1990", 364},
		{"End of year", "31.12.1990", 199},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := newRecord(t, "Alice")
			require.NoError(t, record.SetBirthday(tt.birthday))

			days, ok := record.DaysUntilBirthday(today)
			require.True(t, ok)
			assert.Equal(t, tt.expected, days)
			assert.GreaterOrEqual(t, days, 0, "day count is never negative")

			// Pure query: a second call yields the same result.
			again, _ := record.DaysUntilBirthday(today)
			assert.Equal(t, days, again)
		})
	}

	t.Run("absent without birthday", func(t *testing.T) {
		record := newRecord(t, "Bob")
		_, ok := record.DaysUntilBirthday(today)
		assert.False(t, ok)
	})
}

func TestRecord_String(t *testing.T) {
	record := newRecord(t, "Alice")
	require.NoError(t, record.AddPhone("0123456789"))
	require.NoError(t, record.AddPhone("9876543210"))

	assert.Equal(t,
		"Contact name: Alice, phones: 0123456789; 9876543210",
		record.String(),
		"birthday clause omitted entirely when unset")

	require.NoError(t, record.SetBirthday("15.03.1990"))
	assert.Equal(t,
		"Contact name: Alice, phones: 0123456789; 9876543210, birthday: 15.03.1990",
		record.String())
}
