package engine_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/engine"
)

func TestExportVCards(t *testing.T) {
	b := book.NewAddressBook()
	rec := book.NewRecord("John Doe")
	require.NoError(t, rec.AddPhone("1234567890"))
	require.NoError(t, rec.AddPhone("0987654321"))
	_, err := rec.SetBirthday("15-06-1990")
	require.NoError(t, err)
	b.Add(rec)

	var buf bytes.Buffer
	count, err := engine.ExportVCards(&buf, b)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCARD")
	assert.Contains(t, out, "FN:John Doe")
	assert.Contains(t, out, "TEL:1234567890")
	assert.Contains(t, out, "TEL:0987654321")
	assert.Contains(t, out, "BDAY:1990-06-15")
	assert.Contains(t, out, "END:VCARD")
}

func TestImportVCards(t *testing.T) {
	input := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Jane Doe\r\nTEL:1234567890\r\nBDAY:1990-06-15\r\nEND:VCARD\r\n"

	b := book.NewAddressBook()
	count, err := engine.ImportVCards(strings.NewReader(input), b)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rec, ok := b.Find("Jane Doe")
	require.True(t, ok)
	assert.Equal(t, []string{"1234567890"}, rec.Phones())

	birthday, ok := rec.Birthday()
	require.True(t, ok)
	assert.Equal(t, 15, birthday.Day())
}

func TestImportVCards_SkipsInvalidData(t *testing.T) {
	// The phone is not 10 digits and the date is garbage: the card still
	// imports as a name-only record.
	input := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Broken\r\nTEL:+33 1 23\r\nBDAY:unknown\r\nEND:VCARD\r\n"

	b := book.NewAddressBook()
	count, err := engine.ImportVCards(strings.NewReader(input), b)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rec, ok := b.Find("Broken")
	require.True(t, ok)
	assert.Empty(t, rec.Phones())
	_, ok = rec.Birthday()
	assert.False(t, ok)
}

func TestImportVCards_MergesIntoExistingRecord(t *testing.T) {
	b := book.NewAddressBook()
	rec := book.NewRecord("John Doe")
	require.NoError(t, rec.AddPhone("1234567890"))
	b.Add(rec)

	input := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:John Doe\r\nTEL:0987654321\r\nEND:VCARD\r\n"
	_, err := engine.ImportVCards(strings.NewReader(input), b)
	require.NoError(t, err)

	assert.Equal(t, 1, b.Len())
	got, _ := b.Find("John Doe")
	assert.Equal(t, []string{"1234567890", "0987654321"}, got.Phones())
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := book.NewAddressBook()
	for _, c := range []struct{ name, phone, birthday string }{
		{"Alice", "1111111111", "01-01-1990"},
		{"Bob", "2222222222", ""},
	} {
		rec := book.NewRecord(c.name)
		require.NoError(t, rec.AddPhone(c.phone))
		if c.birthday != "" {
			_, err := rec.SetBirthday(c.birthday)
			require.NoError(t, err)
		}
		src.Add(rec)
	}

	var buf bytes.Buffer
	_, err := engine.ExportVCards(&buf, src)
	require.NoError(t, err)

	dst := book.NewAddressBook()
	count, err := engine.ImportVCards(&buf, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	alice, ok := dst.Find("Alice")
	require.True(t, ok)
	assert.Equal(t, []string{"1111111111"}, alice.Phones())
	birthday, ok := alice.Birthday()
	require.True(t, ok)
	assert.Equal(t, 1990, birthday.Year())

	bob, ok := dst.Find("Bob")
	require.True(t, ok)
	_, ok = bob.Birthday()
	assert.False(t, ok)
}
