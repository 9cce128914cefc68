package repl

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vkovtun/go-assistant/internal/book"
	"github.com/vkovtun/go-assistant/internal/config"
	"github.com/vkovtun/go-assistant/internal/engine"
)

// Handlers return recoverable errors only; the dispatch boundary renders the
// error's message text as the command's output. Validation and lookup
// failures carry the user-facing message themselves (see book sentinels),
// arity failures are built here from the command's usage template.

// AddContact creates or reuses the named contact and appends the phone.
// The record is inserted before the phone is validated, so a bad phone
// leaves a phone-less contact behind; a follow-up add completes it.
func AddContact(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf(config.ErrMissingArgsFmt, config.TplAdd)
	}
	name, phone := args[0], args[1]

	record, ok := bk.Find(name)
	message := config.MsgContactUpdated
	if !ok {
		created, err := book.NewRecord(name)
		if err != nil {
			return "", err
		}
		bk.Add(created)
		record = created
		message = config.MsgContactAdded
	}

	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	return message, nil
}

// ChangePhone replaces an existing phone on an existing contact.
func ChangePhone(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 3 {
		return "", fmt.Errorf(config.ErrMissingArgsFmt, config.TplChange)
	}
	record, ok := bk.Find(args[0])
	if !ok {
		return "", book.ErrNameNotFound
	}
	if err := record.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return config.MsgPhoneUpdated, nil
}

// ShowPhone lists a contact's phones joined with "; ".
func ShowPhone(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf(config.ErrMissingNameFmt, config.TplPhone)
	}
	record, ok := bk.Find(args[0])
	if !ok {
		return "", book.ErrNameNotFound
	}
	phones := record.Phones()
	if len(phones) == 0 {
		return config.MsgNoPhones, nil
	}
	return strings.Join(phones, config.PhoneSeparator), nil
}

// ShowAll lists every contact, one rendered record per line, in insertion
// order.
func ShowAll(args []string, bk *book.AddressBook) (string, error) {
	if len(args) > 0 {
		return "", fmt.Errorf(config.ErrNoArgsFmt, config.TplAll)
	}
	if bk.Len() == 0 {
		return config.MsgBookEmpty, nil
	}
	lines := make([]string, 0, bk.Len())
	for _, record := range bk.Records() {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n"), nil
}

// AddBirthday creates or reuses the named contact and sets its birthday,
// overwriting any previous value. Like AddContact, the record is inserted
// before the date is validated.
func AddBirthday(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf(config.ErrMissingArgsFmt, config.TplAddBirthday)
	}
	name := args[0]

	record, ok := bk.Find(name)
	if !ok {
		created, err := book.NewRecord(name)
		if err != nil {
			return "", err
		}
		bk.Add(created)
		record = created
	}

	if err := record.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return config.MsgBirthdayAdded, nil
}

// ShowBirthday prints the stored birthday in DD.MM.YYYY form.
func ShowBirthday(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf(config.ErrMissingNameFmt, config.TplShowBirthday)
	}
	record, ok := bk.Find(args[0])
	if !ok {
		return "", book.ErrNameNotFound
	}
	birthday, ok := record.Birthday()
	if !ok {
		return config.MsgBirthdayNotSet, nil
	}
	return birthday.String(), nil
}

// UpcomingBirthdays renders the 7-day birthday report, one line per
// congratulation date.
func UpcomingBirthdays(args []string, bk *book.AddressBook, today time.Time) (string, error) {
	if len(args) > 0 {
		return "", fmt.Errorf(config.ErrNoArgsFmt, config.TplBirthdays)
	}
	groups := engine.Upcoming(today, birthdayEntries(bk))
	if len(groups) == 0 {
		return config.MsgNoUpcoming, nil
	}
	lines := make([]string, 0, len(groups))
	for _, group := range groups {
		lines = append(lines, fmt.Sprintf(config.GroupLineFmt,
			group.Date.Format(config.DateLayoutDisplay),
			strings.Join(group.Names, config.NameSeparator)))
	}
	return strings.Join(lines, "\n"), nil
}

// DeleteContact removes a contact from the book.
func DeleteContact(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf(config.ErrMissingNameFmt, config.TplDelete)
	}
	if err := bk.Delete(args[0]); err != nil {
		return "", err
	}
	return config.MsgContactDeleted, nil
}

// Hello returns the fixed greeting without touching the book.
func Hello(_ []string, _ *book.AddressBook) (string, error) {
	return config.MsgHello, nil
}

// ShowCommands lists every command template.
func ShowCommands(args []string, _ *book.AddressBook) (string, error) {
	if len(args) > 0 {
		return "", fmt.Errorf(config.ErrNoArgsFmt, config.TplHelp)
	}
	return config.MsgCommandsHeader + "\n" + usageSummary(), nil
}

// ExportContacts writes the whole book to a vCard file.
func ExportContacts(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf(config.ErrMissingFileFmt, config.TplExport)
	}
	path := args[0]
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	count, err := engine.ExportVCards(f, bk.Records())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(config.MsgExportDoneFmt, count, path), nil
}

// ImportContacts loads a vCard file into the book. An imported contact
// replaces any stored contact with the same name.
func ImportContacts(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf(config.ErrMissingFileFmt, config.TplImport)
	}
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	records, err := engine.ImportVCards(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}
	for _, record := range records {
		bk.Add(record)
	}
	return fmt.Sprintf(config.MsgImportDoneFmt, len(records), path), nil
}

// WriteCalendar writes an iCalendar file with one event per contact
// birthday at its next occurrence.
func WriteCalendar(args []string, bk *book.AddressBook, today time.Time) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf(config.ErrMissingFileFmt, config.TplCalendar)
	}
	path := args[0]
	data, count, err := engine.BuildCalendar(today, birthdayEntries(bk))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return "", err
	}
	return fmt.Sprintf(config.MsgCalendarFmt, count, path), nil
}

// birthdayEntries projects the book onto the engine's minimal contact view,
// keeping only contacts with a birthday set.
func birthdayEntries(bk *book.AddressBook) []engine.BirthdayEntry {
	var entries []engine.BirthdayEntry
	for _, record := range bk.Records() {
		if birthday, ok := record.Birthday(); ok {
			entries = append(entries, engine.BirthdayEntry{
				Name:        record.Name(),
				DateOfBirth: birthday.Time(),
			})
		}
	}
	return entries
}
