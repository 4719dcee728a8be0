package engine

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Calendar renders the next occurrence of every stored birthday as an
// iCalendar object. It returns the ICS data and the number of events.
//
// UIDs are derived from a salted hash of the contact so that repeated exports
// stay stable for calendar clients.
func (p *Planner) Calendar(b *book.AddressBook) ([]byte, int, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Birthdays are defined by the local calendar date, so "today" is derived
	// from local time; only the ICS stamp uses UTC.
	now := p.Clock.Now()
	today := dateOnly(now)
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	events := 0
	for _, rec := range b.All() {
		birthday, ok := rec.Birthday()
		if !ok {
			continue
		}

		occurrence := occurrenceInYear(today.Year(), birthday)
		if occurrence.Before(today) {
			occurrence = occurrenceInYear(today.Year()+1, birthday)
		}

		input := fmt.Sprintf(config.FormatHashInput,
			rec.Name(), birthday.Format(time.RFC3339), config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

		summary := fmt.Sprintf(config.FallbackSummary, rec.Name())
		if p.FormatSummary != nil {
			summary = p.FormatSummary(rec.Name())
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID,
			fmt.Sprintf(config.FormatUID, uidBase, occurrence.Year(), config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(occurrence)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
		events++
	}

	// A calendar with no events would fail validation in most clients;
	// fall back to the minimal valid VCALENDAR stub.
	if events == 0 {
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgCalendarDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, events,
	)
	return buf.Bytes(), events, nil
}

// parseVCardDate handles the date layouts allowed for vCard BDAY values.
func parseVCardDate(value string) (time.Time, error) {
	formats := []string{
		config.DateFormatVCard,
		config.DateFormatVCardBasic,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(config.ErrVCardParse)
}
