package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// Bot is the interactive console assistant. It owns the command dispatch and
// the rendering of every user-visible message; the address book and planner
// are injected so tests can drive it with fixed state and a mock clock.
type Bot struct {
	Book    *book.AddressBook
	Planner *engine.Planner

	In  io.Reader
	Out io.Writer

	Language           string
	SupportedLanguages []string
	I18nBundle         *i18n.Bundle
	Localizer          *i18n.Localizer
}

// New wires a bot over the given book and planner and loads the embedded
// message catalog for the requested language.
func New(b *book.AddressBook, p *engine.Planner, in io.Reader, out io.Writer, lang string) *Bot {
	bot := &Bot{
		Book:     b,
		Planner:  p,
		In:       in,
		Out:      out,
		Language: lang,
	}
	bot.SetupI18n()

	// Calendar event summaries follow the session language.
	p.FormatSummary = func(name string) string {
		return bot.Localize(config.TKeyEvtSummary, map[string]any{"Name": name})
	}
	return bot
}

// Run executes the read-eval-print loop until close/exit, end of input, or
// context cancellation. An interrupt during the blocking read is a graceful
// shutdown, not an error: the bot says goodbye and returns nil.
func (bot *Bot) Run(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompBot)
	log.Info(config.MsgSessionStart, config.LogKeyLang, bot.Language)

	fmt.Fprintln(bot.Out, bot.GetMsg(config.TKeyWelcome))

	// Reading happens on its own goroutine so the loop can observe ctx while
	// blocked on stdin.
	lines := make(chan string, config.ChannelBufferSize)
	errs := make(chan error, config.ChannelBufferSize)
	go func() {
		scanner := bufio.NewScanner(bot.In)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			errs <- fmt.Errorf("%s: %w", config.ErrStdinRead, err)
			return
		}
		close(lines)
	}()

	for {
		fmt.Fprint(bot.Out, bot.GetMsg(config.TKeyPrompt))

		select {
		case <-ctx.Done():
			fmt.Fprintln(bot.Out)
			fmt.Fprintln(bot.Out, bot.GetMsg(config.TKeyGoodbye))
			log.Info(config.MsgCtxCancel)
			return nil
		case err := <-errs:
			return err
		case line, ok := <-lines:
			if !ok {
				// End of input behaves like close.
				fmt.Fprintln(bot.Out, bot.GetMsg(config.TKeyGoodbye))
				log.Info(config.MsgSessionEnd)
				return nil
			}
			reply, quit := bot.Dispatch(line)
			if reply != "" {
				fmt.Fprintln(bot.Out, reply)
			}
			if quit {
				log.Info(config.MsgSessionEnd)
				return nil
			}
		}
	}
}

// Dispatch routes one input line to its command handler and returns the
// rendered reply plus whether the session should end. Blank lines produce
// an empty reply. Errors never escape: they are converted to a single-line
// message and the session continues.
func (bot *Bot) Dispatch(line string) (reply string, quit bool) {
	command, args := ParseInput(line)
	if command == "" {
		return "", false
	}

	slog.Debug(config.MsgCmdDispatch,
		config.LogKeyComponent, config.CompBot,
		config.LogKeyCommand, command,
		config.LogKeyArgs, len(args),
	)

	// A handler bug must not kill the session.
	defer func() {
		if r := recover(); r != nil {
			slog.Error(config.MsgCmdPanic,
				config.LogKeyComponent, config.CompBot,
				config.LogKeyCommand, command,
				config.LogKeyPanic, r,
			)
			reply = bot.Localize(config.TKeyUnexpected, map[string]any{"Error": fmt.Sprint(r)})
			quit = false
		}
	}()

	switch command {
	case config.CmdClose, config.CmdExit:
		return bot.GetMsg(config.TKeyGoodbye), true
	case config.CmdHello:
		return bot.GetMsg(config.TKeyHello), false
	case config.CmdAdd:
		return bot.reply(bot.addContact(args)), false
	case config.CmdChange:
		return bot.reply(bot.changePhone(args)), false
	case config.CmdPhone:
		return bot.reply(bot.showPhones(args)), false
	case config.CmdAll:
		return bot.showAll(), false
	case config.CmdAddBirthday:
		return bot.reply(bot.addBirthday(args)), false
	case config.CmdShowBirthday:
		return bot.reply(bot.showBirthday(args)), false
	case config.CmdBirthdays:
		return bot.showUpcoming(), false
	case config.CmdDelete:
		return bot.reply(bot.deleteContact(args)), false
	case config.CmdExport:
		return bot.reply(bot.exportContacts(args)), false
	case config.CmdImport:
		return bot.reply(bot.importContacts(args)), false
	case config.CmdCalendar:
		return bot.reply(bot.saveCalendar(args)), false
	case config.CmdHelp:
		return bot.GetMsg(config.TKeyHelp), false
	default:
		return bot.GetMsg(config.TKeyInvalidCommand), false
	}
}

// reply collapses a handler result into the single-line response: the
// success message, or the error rendered for the user.
func (bot *Bot) reply(msg string, err error) string {
	if err != nil {
		return bot.errorReply(err)
	}
	return msg
}
