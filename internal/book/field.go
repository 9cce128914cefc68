package book

import (
	"regexp"
	"time"

	"github.com/vkovtun/go-assistant/internal/config"
)

// phonePattern is compiled once at package init. The check runs against the
// raw input string as given: separators are not stripped.
var phonePattern = regexp.MustCompile(config.PhonePattern)

// Name is the non-empty display name of a contact.
// Always valid in memory; use NewName to construct.
type Name struct {
	value string
}

// NewName validates that the raw name is not empty.
func NewName(raw string) (Name, error) {
	if raw == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }

// Phone is a value object holding exactly ten decimal digits.
// Always valid in memory; use NewPhone to construct. Equality is value
// equality on the digit string, so Phone values compare with ==.
type Phone struct {
	value string
}

// NewPhone validates the raw string against the ten-digit format.
func NewPhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a full calendar date. An absent birthday is modeled as the
// absence of the value on the Record, not as a zero Birthday.
type Birthday struct {
	value time.Time
}

// NewBirthday parses a DD.MM.YYYY string. Impossible calendar dates
// (31.02.2024) are rejected by time.Parse along with malformed input.
func NewBirthday(raw string) (Birthday, error) {
	parsed, err := time.Parse(config.DateLayoutDisplay, raw)
	if err != nil {
		return Birthday{}, ErrInvalidDate
	}
	return Birthday{value: parsed}, nil
}

// BirthdayFromTime constructs a Birthday directly from an already-valid date.
// Used when converting back from interchange formats.
func BirthdayFromTime(t time.Time) Birthday {
	return Birthday{value: t}
}

// Time returns the underlying date.
func (b Birthday) Time() time.Time { return b.value }

// String renders the date back in DD.MM.YYYY form.
func (b Birthday) String() string {
	return b.value.Format(config.DateLayoutDisplay)
}
