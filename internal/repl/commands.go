package repl

import (
	"fmt"
	"strings"

	"github.com/vkovtun/go-assistant/internal/book"
	"github.com/vkovtun/go-assistant/internal/config"
)

// HandlerFunc is the uniform handler contract: positional arguments and the
// book in, one response text or a recoverable error out.
type HandlerFunc func(args []string, bk *book.AddressBook) (string, error)

// commandTemplates lists every recognized command's argument template in the
// order the help output presents them.
var commandTemplates = []string{
	config.TplAdd,
	config.TplChange,
	config.TplPhone,
	config.TplAll,
	config.TplAddBirthday,
	config.TplShowBirthday,
	config.TplBirthdays,
	config.TplDelete,
	config.TplExport,
	config.TplImport,
	config.TplCalendar,
	config.TplHello,
	config.TplHelp,
	config.TplClose,
	config.TplExit,
}

// usageSummary renders one "- template" line per recognized command.
func usageSummary() string {
	var b strings.Builder
	for i, tpl := range commandTemplates {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(config.UsageItemPrefix)
		b.WriteString(tpl)
	}
	return b.String()
}

// UnknownCommand builds the usage-help message for an unrecognized first
// token, naming the token as typed.
func UnknownCommand(raw string) string {
	prefix := config.MsgUnknown
	if raw != "" {
		prefix = fmt.Sprintf(config.MsgUnknownFmt, raw)
	}
	return prefix + "\n" + config.MsgUsageHeader + "\n" + usageSummary()
}
