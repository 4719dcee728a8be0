package bot

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// addContact adds a new contact with a name and phone number, or another
// phone number to an existing contact.
func (bot *Bot) addContact(args []string) (string, error) {
	if len(args) < 2 {
		return bot.GetMsg(config.TKeyUsageAdd), nil
	}
	name, phone := args[0], args[1]

	rec, ok := bot.Book.Find(name)
	if !ok {
		rec = book.NewRecord(name)
		if err := rec.AddPhone(phone); err != nil {
			// Validation failed; the record is never added to the book.
			return "", err
		}
		bot.Book.Add(rec)
		return bot.GetMsg(config.TKeyContactAdded), nil
	}

	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	return bot.GetMsg(config.TKeyContactUpdated), nil
}

// changePhone replaces one phone number of an existing contact.
func (bot *Bot) changePhone(args []string) (string, error) {
	if len(args) < 3 {
		return bot.GetMsg(config.TKeyUsageChange), nil
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, ok := bot.Book.Find(name)
	if !ok {
		return "", &book.ContactNotFoundError{Name: name}
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return bot.GetMsg(config.TKeyPhoneChanged), nil
}

// showPhones lists the phone numbers of one contact.
func (bot *Bot) showPhones(args []string) (string, error) {
	if len(args) < 1 {
		return bot.GetMsg(config.TKeyUsagePhone), nil
	}
	name := args[0]

	rec, ok := bot.Book.Find(name)
	if !ok {
		return "", &book.ContactNotFoundError{Name: name}
	}
	return bot.Localize(config.TKeyPhones, map[string]any{
		"Phones": strings.Join(rec.Phones(), "; "),
	}), nil
}

// showAll renders the whole book as a table.
func (bot *Bot) showAll() string {
	return bot.contactsTable()
}

// addBirthday sets or replaces the date of birth for a contact.
func (bot *Bot) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return bot.GetMsg(config.TKeyUsageAddBirthday), nil
	}
	name, date := args[0], args[1]

	rec, ok := bot.Book.Find(name)
	if !ok {
		return "", &book.ContactNotFoundError{Name: name}
	}
	updated, err := rec.SetBirthday(date)
	if err != nil {
		return "", err
	}
	if updated {
		return bot.GetMsg(config.TKeyBirthdayUpdated), nil
	}
	return bot.GetMsg(config.TKeyBirthdayAdded), nil
}

// showBirthday displays the date of birth for a contact.
func (bot *Bot) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return bot.GetMsg(config.TKeyUsageShowBirthday), nil
	}
	name := args[0]

	rec, ok := bot.Book.Find(name)
	if !ok {
		return "", &book.ContactNotFoundError{Name: name}
	}
	birthday, ok := rec.Birthday()
	if !ok {
		return bot.GetMsg(config.TKeyBirthdayNotSet), nil
	}
	return birthday.Format(config.DateFormatInput), nil
}

// showUpcoming renders the contacts with a birthday in the proximity window.
func (bot *Bot) showUpcoming() string {
	return bot.birthdaysTable(bot.Planner.Upcoming(bot.Book))
}

// deleteContact removes a contact from the book.
func (bot *Bot) deleteContact(args []string) (string, error) {
	if len(args) < 1 {
		return bot.GetMsg(config.TKeyUsageDelete), nil
	}
	if err := bot.Book.Delete(args[0]); err != nil {
		return "", err
	}
	return bot.GetMsg(config.TKeyContactDeleted), nil
}

// exportContacts writes the book to a vCard file.
func (bot *Bot) exportContacts(args []string) (string, error) {
	if len(args) < 1 {
		return bot.GetMsg(config.TKeyUsageExport), nil
	}
	path := args[0]

	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return "", err
	}
	count, err := engine.ExportVCards(f, bot.Book)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}
	return bot.Localize(config.TKeyExported, map[string]any{
		"Count": count,
		"Path":  path,
	}), nil
}

// importContacts merges a vCard file into the book.
func (bot *Bot) importContacts(args []string) (string, error) {
	if len(args) < 1 {
		return bot.GetMsg(config.TKeyUsageImport), nil
	}
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	count, err := engine.ImportVCards(f, bot.Book)
	if err != nil {
		return "", err
	}
	return bot.Localize(config.TKeyImported, map[string]any{
		"Count": count,
		"Path":  path,
	}), nil
}

// saveCalendar writes the stored birthdays to an iCalendar file.
func (bot *Bot) saveCalendar(args []string) (string, error) {
	if len(args) < 1 {
		return bot.GetMsg(config.TKeyUsageCalendar), nil
	}
	path := args[0]

	data, _, err := bot.Planner.Calendar(bot.Book)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return "", err
	}
	return bot.Localize(config.TKeyCalendarSaved, map[string]any{
		"Path": path,
	}), nil
}

// errorReply converts a handler error into the single-line localized message
// shown to the user. Unknown errors fall into the generic bucket; they end
// the current command only, never the session.
func (bot *Bot) errorReply(err error) string {
	var phoneMissing *book.PhoneNotFoundError
	var contactMissing *book.ContactNotFoundError
	var dateValue *book.DateValueError

	switch {
	case errors.Is(err, book.ErrPhoneInvalid):
		return bot.GetMsg(config.TKeyErrPhoneInvalid)
	case errors.Is(err, book.ErrPhoneDuplicate):
		return bot.GetMsg(config.TKeyErrPhoneDuplicate)
	case errors.Is(err, book.ErrDateFormat):
		return bot.GetMsg(config.TKeyErrDateFormat)
	case errors.As(err, &phoneMissing):
		return bot.Localize(config.TKeyErrPhoneNotFound, map[string]any{"Phone": phoneMissing.Phone})
	case errors.As(err, &contactMissing):
		return bot.Localize(config.TKeyErrContactMissing, map[string]any{"Name": contactMissing.Name})
	case errors.As(err, &dateValue):
		return bot.Localize(config.TKeyErrDateValue, map[string]any{"Value": dateValue.Value})
	default:
		return bot.Localize(config.TKeyUnexpected, map[string]any{"Error": fmt.Sprint(err)})
	}
}
