package config

import "io/fs"

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
	AppName     = "Go Contacts"
	AppID       = "com.github.tartampluch.go-contacts"
	LogFileName = "app.log"
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
	// Used for logs and exported contact data.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the app cache directory.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLang         = "lang"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging"
	FlagDescLang     = "UI language code (en, fr)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Business Rules & Defaults
// -----------------------------------------------------------------------------

const (
	// PhoneLength is the exact number of decimal digits a phone number must have.
	PhoneLength = 10

	// UpcomingWindowDays is the inclusive forward window (from "today") used to
	// select upcoming birthdays.
	UpcomingWindowDays = 7

	// LeapDaySubstDay replaces February 29th in non-leap years.
	LeapDaySubstDay = 28

	DefaultLanguage = "en"

	UIDSalt = "go-contacts-v1-" // Salt for deterministic UID generation
)

// -----------------------------------------------------------------------------
// Date Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatInput is the only accepted user-facing layout (DD-MM-YYYY).
	DateFormatInput = "02-01-2006"

	// DateSeparator distinguishes "wrong format" from "impossible date" on
	// parse failure: without it the input is not even shaped like a date.
	DateSeparator = "-"

	// Date layouts accepted for vCard BDAY fields (RFC 6350).
	DateFormatVCard      = "2006-01-02"
	DateFormatVCardBasic = "20060102"
)

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
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
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome        = "welcome"
	TKeyPrompt         = "prompt"
	TKeyGoodbye        = "goodbye"
	TKeyHello          = "hello"
	TKeyInvalidCommand = "invalid_command"
	TKeyUnexpected     = "unexpected_error"

	TKeyContactAdded    = "contact_added"
	TKeyContactUpdated  = "contact_updated"
	TKeyContactDeleted  = "contact_deleted"
	TKeyPhoneChanged    = "phone_changed"
	TKeyPhones          = "phones"
	TKeyBirthdayAdded   = "birthday_added"
	TKeyBirthdayUpdated = "birthday_updated"
	TKeyBirthdayNotSet  = "birthday_not_set"
	TKeyBookEmpty       = "book_empty"
	TKeyNoUpcoming      = "no_upcoming"
	TKeyExported        = "exported"
	TKeyImported        = "imported"
	TKeyCalendarSaved   = "calendar_saved"
	TKeyHelp            = "help_text"
	TKeyEvtSummary      = "event_summary"

	TKeyErrPhoneInvalid   = "err_phone_invalid"
	TKeyErrPhoneDuplicate = "err_phone_duplicate"
	TKeyErrPhoneNotFound  = "err_phone_not_found"
	TKeyErrContactMissing = "err_contact_not_found"
	TKeyErrDateFormat     = "err_date_format"
	TKeyErrDateValue      = "err_date_value"

	TKeyUsageAdd          = "usage_add"
	TKeyUsageChange       = "usage_change"
	TKeyUsagePhone        = "usage_phone"
	TKeyUsageAddBirthday  = "usage_add_birthday"
	TKeyUsageShowBirthday = "usage_show_birthday"
	TKeyUsageDelete       = "usage_delete"
	TKeyUsageExport       = "usage_export"
	TKeyUsageImport       = "usage_import"
	TKeyUsageCalendar     = "usage_calendar"

	TKeyColName     = "col_name"
	TKeyColPhone    = "col_phone"
	TKeyColCongrats = "col_congrats"
	TKeyNoPhones    = "no_phones"
)

// -----------------------------------------------------------------------------
// Table Layout
// -----------------------------------------------------------------------------

const (
	TableColWidth       = 21
	TableSeparatorWidth = 45
	TableColDivider     = " | "
	TableRuleChar       = "-"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Contacts//Engine//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gocontacts"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
	VCardTEL  = "TEL"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// FallbackSummary is used when no localized event summary is injected.
	FallbackSummary = "Birthday: %s"
	FallbackName    = "Unknown"

	// StubVCalendar is the minimal valid iCalendar object used when the book
	// holds no birthdays, so the exported file is still a valid VCALENDAR.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrPhoneFormat   = "Phone number must be a 10-digit number."
	ErrPhoneDup      = "Phone already exists"
	ErrDateFormatMsg = "Invalid date format. Use DD-MM-YYYY."
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrVCardEncode   = "failed to encode vCard data"
	ErrVCardParse    = "failed to parse vCard stream"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrStdinRead     = "failed to read standard input"

	// Format strings for parameterized error messages.
	FormatErrPhoneMissing   = "Phone %s not found in this contact."
	FormatErrContactMissing = "Contact '%s' not found."
	FormatErrDateValue      = "Invalid date: '%s' does not exist."
	MsgLogWarning           = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down REPL"
	MsgSessionStart  = "Interactive session started"
	MsgSessionEnd    = "Interactive session ended"
	MsgCmdDispatch   = "Dispatching command"
	MsgCmdPanic      = "Command handler panicked"
	MsgScanUpcoming  = "Upcoming birthday scan finished"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgSkippedPhone  = "Skipping invalid phone number"
	MsgExportDone    = "Contacts exported"
	MsgImportDone    = "Contacts imported"
	MsgCalendarDone  = "Calendar generation successful"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCommand   = "command"
	LogKeyArgs      = "arg_count"
	LogKeyName      = "name"
	LogKeyValue     = "value"
	LogKeyCount     = "count"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyUpcoming  = "birthdays_upcoming"
	LogKeyStats     = "stats"
	LogKeyDuration  = "duration_ms"
	LogKeyPanic     = "panic"

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
	CompEngine = "engine"
	CompBot    = "bot"
	CompMain   = "main"
	CompI18n   = "i18n"
)
