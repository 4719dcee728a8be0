package book_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"Valid 10 digits", "1234567890", true},
		{"All zeros", "0000000000", true},
		{"Too short", "123456789", false},
		{"Too long", "12345678901", false},
		{"Empty", "", false},
		{"Letters mixed in", "12345abcde", false},
		{"Spaces", "123 456 78", false},
		{"Plus prefix", "+123456789", false},
		{"Unicode digits", "１２３４５６７８９０", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := book.ValidatePhone(tt.phone)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, book.ErrPhoneInvalid)
			}
		})
	}
}

func TestParseBirthday_Valid(t *testing.T) {
	d, err := book.ParseBirthday("15-06-1990")
	require.NoError(t, err)
	assert.Equal(t, 1990, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 15, d.Day())
}

func TestParseBirthday_LeapDay(t *testing.T) {
	// Feb 29 exists in 2024 but not in 2023.
	_, err := book.ParseBirthday("29-02-2024")
	assert.NoError(t, err)

	_, err = book.ParseBirthday("29-02-2023")
	var dateValue *book.DateValueError
	require.ErrorAs(t, err, &dateValue)
	assert.Equal(t, "29-02-2023", dateValue.Value)
	assert.Equal(t, "Invalid date: '29-02-2023' does not exist.", err.Error())
}

func TestParseBirthday_Failures(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantFormat bool // true: format error, false: value error
	}{
		{"Slash separator", "2020/01/01", true},
		{"Free text", "yesterday", true},
		{"Empty", "", true},
		{"Month 13", "31-13-2020", false},
		{"Day 31 in February", "31-02-1990", false},
		{"Day zero", "00-01-2020", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := book.ParseBirthday(tt.value)
			require.Error(t, err)
			if tt.wantFormat {
				assert.ErrorIs(t, err, book.ErrDateFormat)
			} else {
				var dateValue *book.DateValueError
				assert.ErrorAs(t, err, &dateValue)
			}
		})
	}
}

func TestErrorMessages_Wording(t *testing.T) {
	// These strings are part of the user-facing contract.
	assert.Equal(t, "Phone number must be a 10-digit number.", book.ErrPhoneInvalid.Error())
	assert.Equal(t, "Invalid date format. Use DD-MM-YYYY.", book.ErrDateFormat.Error())

	assert.Equal(t, "Phone 1234567890 not found in this contact.",
		(&book.PhoneNotFoundError{Phone: "1234567890"}).Error())
	assert.Equal(t, "Contact 'John' not found.",
		(&book.ContactNotFoundError{Name: "John"}).Error())
}

func TestParseBirthday_ErrorsAreDistinct(t *testing.T) {
	_, formatErr := book.ParseBirthday("19900615")
	_, valueErr := book.ParseBirthday("31-02-1990")

	assert.ErrorIs(t, formatErr, book.ErrDateFormat)
	assert.False(t, errors.Is(valueErr, book.ErrDateFormat))
}
