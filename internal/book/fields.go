package book

import (
	"strings"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// ValidatePhone checks that the value is exactly ten ASCII decimal digits.
func ValidatePhone(phone string) error {
	if len(phone) != config.PhoneLength {
		return ErrPhoneInvalid
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return ErrPhoneInvalid
		}
	}
	return nil
}

// ParseBirthday parses a DD-MM-YYYY date of birth.
//
// Failures are split into two kinds: a string without the date separator is
// rejected as ErrDateFormat, while a correctly shaped string naming a day that
// does not exist on the calendar is rejected as DateValueError.
func ParseBirthday(value string) (time.Time, error) {
	t, err := time.Parse(config.DateFormatInput, value)
	if err != nil {
		if !strings.Contains(value, config.DateSeparator) {
			return time.Time{}, ErrDateFormat
		}
		return time.Time{}, &DateValueError{Value: value}
	}
	return t, nil
}
