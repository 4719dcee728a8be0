package bot

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// tableRow renders one fixed-width two-column row.
func tableRow(left, right string) string {
	return fmt.Sprintf("%-*s%s%-*s",
		config.TableColWidth, left,
		config.TableColDivider,
		config.TableColWidth, right,
	)
}

// tableRule is the horizontal separator between rows.
func tableRule() string {
	return strings.Repeat(config.TableRuleChar, config.TableSeparatorWidth)
}

// contactsTable renders every record as a name/phone table. Records with
// several phones repeat the phone column under a blank name cell; an empty
// book yields the fixed empty-book message instead of an empty table.
func (bot *Bot) contactsTable() string {
	if bot.Book.Len() == 0 {
		return bot.GetMsg(config.TKeyBookEmpty)
	}

	rule := tableRule()
	lines := []string{
		rule,
		tableRow(bot.GetMsg(config.TKeyColName), bot.GetMsg(config.TKeyColPhone)),
		rule,
	}

	for _, rec := range bot.Book.All() {
		phones := rec.Phones()
		first := bot.GetMsg(config.TKeyNoPhones)
		if len(phones) > 0 {
			first = phones[0]
		}
		lines = append(lines, tableRow(rec.Name(), first))
		if len(phones) > 1 {
			for _, phone := range phones[1:] {
				lines = append(lines, tableRow("", phone))
			}
		}
		lines = append(lines, rule)
	}

	return strings.Join(lines, "\n")
}

// birthdaysTable renders upcoming celebrations as a name/date table, or the
// fixed no-upcoming message when the window is empty.
func (bot *Bot) birthdaysTable(upcoming []engine.Celebration) string {
	if len(upcoming) == 0 {
		return bot.GetMsg(config.TKeyNoUpcoming)
	}

	rule := tableRule()
	lines := []string{
		rule,
		tableRow(bot.GetMsg(config.TKeyColName), bot.GetMsg(config.TKeyColCongrats)),
		rule,
	}

	for _, c := range upcoming {
		lines = append(lines, tableRow(c.Name, c.Congratulation.Format(config.DateFormatInput)))
		lines = append(lines, rule)
	}

	return strings.Join(lines, "\n")
}
