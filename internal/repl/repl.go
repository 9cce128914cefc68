package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/vkovtun/go-assistant/internal/book"
	"github.com/vkovtun/go-assistant/internal/config"
	"github.com/vkovtun/go-assistant/internal/engine"
)

// REPL runs the read-eval-print loop over an injected input source and
// output sink. All state lives in the embedded AddressBook for the lifetime
// of one Run; nothing is persisted.
type REPL struct {
	book     *book.AddressBook
	clock    engine.Clock
	in       io.Reader
	out      io.Writer
	handlers map[string]HandlerFunc
}

// New wires an empty book with the full command table. The clock drives
// every date-dependent command so tests can pin "today".
func New(in io.Reader, out io.Writer, clock engine.Clock) *REPL {
	r := &REPL{
		book:  book.NewAddressBook(),
		clock: clock,
		in:    in,
		out:   out,
	}
	r.handlers = map[string]HandlerFunc{
		config.CmdAdd:          AddContact,
		config.CmdChange:       ChangePhone,
		config.CmdPhone:        ShowPhone,
		config.CmdAll:          ShowAll,
		config.CmdAddBirthday:  AddBirthday,
		config.CmdShowBirthday: ShowBirthday,
		config.CmdBirthdays: func(args []string, bk *book.AddressBook) (string, error) {
			return UpcomingBirthdays(args, bk, r.clock.Now())
		},
		config.CmdDelete: DeleteContact,
		config.CmdExport: ExportContacts,
		config.CmdImport: ImportContacts,
		config.CmdCalendar: func(args []string, bk *book.AddressBook) (string, error) {
			return WriteCalendar(args, bk, r.clock.Now())
		},
		config.CmdHello: Hello,
		config.CmdHelp:  ShowCommands,
	}
	return r
}

// Book exposes the underlying address book.
func (r *REPL) Book() *book.AddressBook { return r.book }

// Run blocks reading one line per prompt until close/exit, end of input, or
// context cancellation. It never returns a user mistake as an error: those
// are rendered to the output sink and the loop continues.
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	fmt.Fprintln(r.out, config.MsgWelcome)
	slog.Info(config.MsgLoopStart, config.LogKeyComponent, config.CompRepl)

	for {
		if ctx.Err() != nil {
			slog.Info(config.MsgLoopStop, config.LogKeyComponent, config.CompRepl)
			return nil
		}

		fmt.Fprint(r.out, config.MsgPrompt)
		if !scanner.Scan() {
			// End of input behaves like an explicit exit.
			fmt.Fprintln(r.out, config.MsgGoodbye)
			slog.Info(config.MsgLoopStop, config.LogKeyComponent, config.CompRepl)
			return scanner.Err()
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(r.out, config.MsgEmptyInput)
			continue
		}

		keyword, args, raw := Tokenize(line)
		if keyword == config.CmdClose || keyword == config.CmdExit {
			fmt.Fprintln(r.out, config.MsgGoodbye)
			slog.Info(config.MsgLoopStop, config.LogKeyComponent, config.CompRepl)
			return nil
		}

		fmt.Fprintln(r.out, r.Dispatch(keyword, args, raw))
	}
}

// Dispatch runs one command and renders the outcome as text. This is the
// single error-to-text boundary: any error a handler returns is converted to
// its message here and never propagates further.
func (r *REPL) Dispatch(keyword string, args []string, raw string) string {
	handler, ok := r.handlers[keyword]
	if !ok {
		return UnknownCommand(raw)
	}

	start := time.Now()
	out, err := handler(args, r.book)
	slog.Debug(config.MsgDispatch,
		config.LogKeyComponent, config.CompRepl,
		config.LogKeyCommand, keyword,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)

	if err != nil {
		return err.Error()
	}
	return out
}
