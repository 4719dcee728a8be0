package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
)

func TestAddressBook_AddFind(t *testing.T) {
	b := book.NewAddressBook()
	assert.Equal(t, 0, b.Len())

	b.Add(book.NewRecord("John"))

	rec, ok := b.Find("John")
	require.True(t, ok)
	assert.Equal(t, "John", rec.Name())

	// Lookups are exact and case-sensitive.
	_, ok = b.Find("john")
	assert.False(t, ok)
}

func TestAddressBook_AllPreservesInsertionOrder(t *testing.T) {
	b := book.NewAddressBook()
	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		b.Add(book.NewRecord(name))
	}

	var names []string
	for _, rec := range b.All() {
		names = append(names, rec.Name())
	}
	assert.Equal(t, []string{"Charlie", "Alice", "Bob"}, names)
}

func TestAddressBook_AllIsASnapshot(t *testing.T) {
	b := book.NewAddressBook()
	b.Add(book.NewRecord("John"))

	first := b.All()
	b.Add(book.NewRecord("Jane"))
	second := b.All()

	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
}

func TestAddressBook_AddOverwritesKeepingPosition(t *testing.T) {
	b := book.NewAddressBook()
	b.Add(book.NewRecord("John"))
	b.Add(book.NewRecord("Jane"))

	replacement := book.NewRecord("John")
	require.NoError(t, replacement.AddPhone("1234567890"))
	b.Add(replacement)

	all := b.All()
	require.Len(t, all, 2)
	assert.Equal(t, "John", all[0].Name(), "Replaced entry keeps its original position")
	assert.Len(t, all[0].Phones(), 1)
}

func TestAddressBook_Delete(t *testing.T) {
	b := book.NewAddressBook()
	b.Add(book.NewRecord("John"))

	require.NoError(t, b.Delete("John"))
	assert.Equal(t, 0, b.Len())
	_, ok := b.Find("John")
	assert.False(t, ok)

	err := b.Delete("John")
	var missing *book.ContactNotFoundError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "John", missing.Name)
}
