package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/vkovtun/go-assistant/internal/config"
)

// BuildCalendar renders one all-day VEVENT per entry at the birthday's next
// occurrence relative to today. It returns the encoded iCalendar bytes and
// the event count. With no entries a minimal valid VCALENDAR stub is
// returned so calendar clients never see an invalid feed.
func BuildCalendar(today time.Time, entries []BirthdayEntry) ([]byte, int, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Stamp with UTC; the event dates themselves are pure calendar dates.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(today.UTC())

	for _, entry := range entries {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, eventUID(entry))
		event.Props.SetText(config.PropSummary, fmt.Sprintf(config.EventSummary, entry.Name))

		occurrence := NextOccurrence(today, entry.DateOfBirth)
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(occurrence)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), len(cal.Children), nil
}

// eventUID derives a deterministic UID from the contact's identity so
// repeated exports produce stable identifiers.
func eventUID(entry BirthdayEntry) string {
	input := fmt.Sprintf(config.FormatHashInput,
		entry.Name, entry.DateOfBirth.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	base := fmt.Sprintf("%x", hash[:config.UIDHashLength])
	return fmt.Sprintf(config.FormatUID, base, entry.DateOfBirth.Year(), config.ICalDomain)
}
