package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Assistant"
	AppID       = "com.github.vkovtun.go-assistant"
	BinaryName  = "assistant"
	LogFileName = "assistant.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs and exported files.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the log directory.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDebug        = "debug"
	FlagDescDebug    = "Enable debug logging to stderr"
	CmdVersionUse    = "version"
	CmdVersionShort  = "Show application version and exit"
	RootShort        = "An interactive address book assistant"
	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"
)

// -----------------------------------------------------------------------------
// Command Keywords
// -----------------------------------------------------------------------------

const (
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdExport       = "export"
	CmdImport       = "import"
	CmdCalendar     = "calendar"
	CmdHello        = "hello"
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Command Argument Templates
// -----------------------------------------------------------------------------

// The templates double as the usage help text. The order they appear in the
// help output is fixed by the command table in the repl package.
const (
	TplAdd          = "add <name> <10-digit phone>"
	TplChange       = "change <name> <old-phone> <new-phone>"
	TplPhone        = "phone <name>"
	TplAll          = "all"
	TplAddBirthday  = "add-birthday <name> <DD.MM.YYYY>"
	TplShowBirthday = "show-birthday <name>"
	TplBirthdays    = "birthdays"
	TplDelete       = "delete <name>"
	TplExport       = "export <file.vcf>"
	TplImport       = "import <file.vcf>"
	TplCalendar     = "calendar <file.ics>"
	TplHello        = "hello"
	TplHelp         = "help"
	TplClose        = "close"
	TplExit         = "exit"
)

// -----------------------------------------------------------------------------
// User-Visible Messages (REPL contract)
// -----------------------------------------------------------------------------

// These strings are the user-visible contract of the assistant. Tests assert
// on them verbatim; change them only together with their tests.
const (
	MsgWelcome        = "Welcome to the assistant bot!"
	MsgPrompt         = "Enter a command: "
	MsgGoodbye        = "Good bye!"
	MsgHello          = "How can I help you?"
	MsgEmptyInput     = "Please enter a command. Example: " + TplAdd
	MsgContactAdded   = "Contact added."
	MsgContactUpdated = "Contact updated."
	MsgContactDeleted = "Contact deleted."
	MsgPhoneUpdated   = "Phone number updated."
	MsgNoPhones       = "No phone numbers for this contact."
	MsgBookEmpty      = "Address book is empty."
	MsgBirthdayAdded  = "Birthday added."
	MsgBirthdayNotSet = "Birthday not set."
	MsgNoUpcoming     = "No upcoming birthdays."
	MsgCommandsHeader = "Available commands:"
	MsgUsageHeader    = "Use one of the following patterns:"
	MsgUnknownFmt     = "Unknown command '%s'."
	MsgUnknown        = "Unknown command."
	MsgExportDoneFmt  = "Exported %d contact(s) to %s."
	MsgImportDoneFmt  = "Imported %d contact(s) from %s."
	MsgCalendarFmt    = "Calendar with %d event(s) written to %s."
	UsageItemPrefix   = "- "
)

// -----------------------------------------------------------------------------
// Error Messages (user-visible validation & lookup failures)
// -----------------------------------------------------------------------------

const (
	ErrNameEmpty         = "Name cannot be empty."
	ErrPhoneFormat       = "Phone number must contain exactly 10 digits."
	ErrDateFormat        = "Invalid date format. Use DD.MM.YYYY"
	ErrPhoneNotFound     = "Phone number not found."
	ErrPhoneEditNotFound = "Phone number to edit not found."
	ErrContactNotFound   = "Contact not found."
)

// Arity error formats. The single argument is the command's usage template.
const (
	ErrMissingArgsFmt = "Missing arguments. Usage: %s"
	ErrMissingNameFmt = "Missing contact name. Usage: %s"
	ErrMissingFileFmt = "Missing file path. Usage: %s"
	ErrNoArgsFmt      = "No extra arguments expected. Usage: %s"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrAppFailed   = "application failed unexpectedly"
	ErrLogFile     = "failed to open log file"
	ErrCacheDir    = "could not determine user cache dir"
	ErrCreateDir   = "could not create app cache dir"
	ErrVCardEncode = "failed to encode vCard"
	ErrICalEncode  = "failed to encode iCalendar data"

	MsgLogWarning   = "Warning: %s at %s: %v\n"
	MsgSkippedCard  = "Skipping malformed vCard"
	MsgSkippedNoFN  = "Skipping vCard without a usable name"
	MsgSkippedPhone = "Skipping invalid phone number"
	MsgSkippedDate  = "Skipping invalid date format"
	MsgImportDone   = "vCard import finished"
	MsgExportDone   = "vCard export finished"
	MsgCalBuilt     = "Calendar generation successful"
	MsgAppStarting  = "Starting application"
	MsgAppStop      = "Application stopped gracefully"
	MsgLoopStart    = "Command loop started"
	MsgLoopStop     = "Command loop stopped"
	MsgDispatch     = "Dispatching command"
)

// -----------------------------------------------------------------------------
// Validation Patterns & Date Layouts
// -----------------------------------------------------------------------------

const (
	// PhonePattern matches exactly ten ASCII decimal digits, applied to the
	// raw input with no normalization.
	PhonePattern = `^[0-9]{10}$`

	// DateLayoutDisplay is the DD.MM.YYYY layout used for input and display.
	DateLayoutDisplay = "02.01.2006"

	// Date layouts accepted when parsing vCard BDAY fields.
	DateLayoutFullDash  = "2006-01-02"
	DateLayoutFullBasic = "20060102"
	DateLayoutRFC3339   = time.RFC3339
	DateLayoutFullT     = "2006-01-02T15:04:05Z"
)

// -----------------------------------------------------------------------------
// Rendering Formats
// -----------------------------------------------------------------------------

const (
	// RecordFmt renders one contact. The third verb is the optional
	// birthday clause (empty string when no birthday is set).
	RecordFmt         = "Contact name: %s, phones: %s%s"
	RecordBirthdayFmt = ", birthday: %s"
	PhoneSeparator    = "; "
	NameSeparator     = ", "

	// GroupLineFmt renders one congratulation group: "DD.MM.YYYY: names".
	GroupLineFmt = "%s: %s"
)

// -----------------------------------------------------------------------------
// Upcoming-Birthday Window
// -----------------------------------------------------------------------------

const (
	// UpcomingWindowDays is the forward window [today, today+6]; a birthday
	// exactly seven days out is excluded.
	UpcomingWindowDays = 7

	// DaysInWeek and WeekendIndex drive the weekend shift: with Monday as
	// index 0, indexes >= WeekendIndex advance by DaysInWeek-index days.
	DaysInWeek   = 7
	WeekendIndex = 5

	HoursPerDay = 24
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion  = "2.0"
	ICalProdid   = "-//Go Assistant//Engine//EN"
	ICalCalName  = "Birthdays"
	ICalMethod   = "PUBLISH"
	ICalScale    = "GREGORIAN"
	ICalDomain   = "goassistant"
	EventSummary = "Birthday: %s"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	// vCard Fields
	VCardFN   = "FN"
	VCardTEL  = "TEL"
	VCardBDAY = "BDAY"

	// UID Generation
	UIDSalt         = "go-assistant-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// File Extensions
	ExtVCF = ".vcf"
	ExtICS = ".ics"

	// StubVCalendar is the minimal valid iCalendar object used when no
	// contact has a birthday. Keeping it a constant guarantees that the
	// calendar command always writes a valid VCALENDAR.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyName      = "name"
	LogKeyCount     = "count"
	LogKeyFile      = "file"
	LogKeyValue     = "value"
	LogKeyCommand   = "command"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain   = "main"
	CompCLI    = "cli"
	CompRepl   = "repl"
	CompEngine = "engine"
)
