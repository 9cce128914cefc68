package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/vkovtun/go-assistant/internal/book"
	"github.com/vkovtun/go-assistant/internal/config"
)

// ExportVCards writes each record as a vCard 4.0 card (FN, one TEL per
// phone, BDAY in basic format when a birthday is set). Returns the number of
// cards written.
func ExportVCards(w io.Writer, records []*book.Record) (int, error) {
	enc := vcard.NewEncoder(w)
	written := 0

	for _, record := range records {
		card := make(vcard.Card)
		card.SetValue(config.VCardFN, record.Name())
		for _, phone := range record.Phones() {
			card.AddValue(config.VCardTEL, phone)
		}
		if birthday, ok := record.Birthday(); ok {
			card.SetValue(config.VCardBDAY, birthday.Time().Format(config.DateLayoutFullBasic))
		}
		vcard.ToV4(card)

		if err := enc.Encode(card); err != nil {
			return written, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
		written++
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, written,
	)
	return written, nil
}

// ImportVCards decodes a vCard stream into records. Recovery policy: a
// malformed card, a card without a usable name, an invalid phone or an
// unparseable birthday is skipped with a structured warning and the rest of
// the stream is processed, to maximize data recovery.
func ImportVCards(r io.Reader) ([]*book.Record, error) {
	decoder := vcard.NewDecoder(r)
	var records []*book.Record

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err,
			)
			continue
		}

		fn := card.Get(config.VCardFN)
		if fn == nil || fn.Value == "" {
			slog.Warn(config.MsgSkippedNoFN, config.LogKeyComponent, config.CompEngine)
			continue
		}

		record, err := book.NewRecord(fn.Value)
		if err != nil {
			slog.Warn(config.MsgSkippedNoFN,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err,
			)
			continue
		}

		for _, tel := range card.Values(config.VCardTEL) {
			if err := record.AddPhone(tel); err != nil {
				slog.Warn(config.MsgSkippedPhone,
					config.LogKeyComponent, config.CompEngine,
					config.LogKeyName, record.Name(),
					config.LogKeyValue, tel,
				)
			}
		}

		if bday := card.Get(config.VCardBDAY); bday != nil && bday.Value != "" {
			if date, err := parseVCardDate(bday.Value); err == nil {
				record.SetBirthdayDate(date)
			} else {
				slog.Debug(config.MsgSkippedDate,
					config.LogKeyComponent, config.CompEngine,
					config.LogKeyName, record.Name(),
					config.LogKeyValue, bday.Value,
				)
			}
		}

		records = append(records, record)
	}

	slog.Info(config.MsgImportDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, len(records),
	)
	return records, nil
}

// parseVCardDate handles the full-date vCard BDAY formats. Truncated
// no-year forms (--MM-DD) are rejected: the record model stores full dates.
func parseVCardDate(value string) (time.Time, error) {
	layouts := []string{
		config.DateLayoutFullDash,
		config.DateLayoutFullBasic,
		config.DateLayoutRFC3339,
		config.DateLayoutFullT,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, book.ErrInvalidDate
}
