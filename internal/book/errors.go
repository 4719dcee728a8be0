package book

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Sentinel errors for failures that carry no extra data.
// Callers match them with errors.Is.
var (
	// ErrPhoneInvalid reports a phone value that is not exactly ten decimal digits.
	ErrPhoneInvalid = errors.New(config.ErrPhoneFormat)

	// ErrPhoneDuplicate reports an attempt to add a phone that the record already holds.
	ErrPhoneDuplicate = errors.New(config.ErrPhoneDup)

	// ErrDateFormat reports a birthday string that is not even shaped like a date.
	ErrDateFormat = errors.New(config.ErrDateFormatMsg)
)

// PhoneNotFoundError reports a lookup miss for a phone on a record.
type PhoneNotFoundError struct {
	Phone string
}

func (e *PhoneNotFoundError) Error() string {
	return fmt.Sprintf(config.FormatErrPhoneMissing, e.Phone)
}

// ContactNotFoundError reports a lookup miss for a name in the address book.
type ContactNotFoundError struct {
	Name string
}

func (e *ContactNotFoundError) Error() string {
	return fmt.Sprintf(config.FormatErrContactMissing, e.Name)
}

// DateValueError reports a birthday string with the right shape but an
// impossible day/month/year combination (e.g. 31-02-1990).
type DateValueError struct {
	Value string
}

func (e *DateValueError) Error() string {
	return fmt.Sprintf(config.FormatErrDateValue, e.Value)
}
