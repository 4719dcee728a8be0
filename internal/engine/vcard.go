package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// ExportVCards writes every record of the book to w as a vCard 4.0 object.
// It returns the number of cards written.
func ExportVCards(w io.Writer, b *book.AddressBook) (int, error) {
	enc := vcard.NewEncoder(w)
	count := 0

	for _, rec := range b.All() {
		card := make(vcard.Card)
		card.SetValue(config.VCardFN, rec.Name())
		for _, phone := range rec.Phones() {
			card.AddValue(config.VCardTEL, phone)
		}
		if birthday, ok := rec.Birthday(); ok {
			card.SetValue(config.VCardBDAY, birthday.Format(config.DateFormatVCard))
		}
		vcard.ToV4(card)

		if err := enc.Encode(card); err != nil {
			return count, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
		count++
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, count,
	)
	return count, nil
}

// ImportVCards decodes a vCard stream and merges the cards into the book.
// Cards matching an existing name merge into that record. Invalid phones and
// unparseable birthdays are skipped, not fatal, to maximize data recovery.
// It returns the number of cards merged.
func ImportVCards(r io.Reader, b *book.AddressBook) (int, error) {
	log := slog.With(config.LogKeyComponent, config.CompEngine)
	decoder := vcard.NewDecoder(r)
	imported := 0

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}

		rec, ok := b.Find(name)
		if !ok {
			rec = book.NewRecord(name)
			b.Add(rec)
		}

		for _, tel := range card.Values(config.VCardTEL) {
			if err := rec.AddPhone(tel); err != nil {
				log.Debug(config.MsgSkippedPhone,
					config.LogKeyName, name,
					config.LogKeyValue, tel,
					config.LogKeyError, err,
				)
			}
		}

		if bday := card.Get(config.VCardBDAY); bday != nil && bday.Value != "" {
			if t, err := parseVCardDate(bday.Value); err != nil {
				log.Debug(config.MsgSkippedDate,
					config.LogKeyName, name,
					config.LogKeyValue, bday.Value,
				)
			} else if _, err := rec.SetBirthday(t.Format(config.DateFormatInput)); err != nil {
				log.Debug(config.MsgSkippedDate,
					config.LogKeyName, name,
					config.LogKeyValue, bday.Value,
				)
			}
		}

		imported++
	}

	log.Info(config.MsgImportDone, config.LogKeyCount, imported)
	return imported, nil
}
