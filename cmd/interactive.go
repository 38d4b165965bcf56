// interactive.go - Befehlsverarbeitung fuer die interaktive Eingabe
// Jede abgeschickte Zeile landet in handle, das ueber den Status entscheidet,
// wie die Schleife weitermacht.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/7blacky7/easycli/envconfig"
	"github.com/7blacky7/easycli/logutil"
	"github.com/7blacky7/easycli/readline"
)

// maxCredentialLen begrenzt Benutzername und Passwort beim Login
const maxCredentialLen = 32

// errLoginFailed wird gesammelt und rot unter der Eingabe ausgegeben
var errLoginFailed = errors.New("login failed")

type repl struct {
	rl       *readline.Instance
	out      io.Writer
	user     string
	password string
	loggedIn string
}

func newREPL(rl *readline.Instance) *repl {
	return &repl{
		rl:       rl,
		out:      readline.NewlineWriter(rl.Terminal),
		user:     envconfig.DemoUser(),
		password: envconfig.DemoPassword(),
	}
}

// Run startet die Schleife bis exit, Ctrl+C oder Ctrl+D
func (r *repl) Run(ctx context.Context) error {
	if err := r.rl.Print("Type 'help' for a list of commands."); err != nil {
		return err
	}
	return r.rl.Run(ctx, r.handle)
}

func (r *repl) handle(ctx context.Context, line string) (readline.Status, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return readline.StatusNop, nil
	}

	logutil.Trace("command received", "command", args[0], "args", len(args)-1)

	switch args[0] {
	case "exit", "quit", "bye":
		return readline.StatusExit, nil
	case "help", "?":
		usage(r.out)
		return readline.StatusNop, nil
	case "login":
		return r.login()
	case "logout":
		r.loggedIn = ""
		return readline.StatusNop, r.rl.Print("Logged out.")
	case "whoami":
		if r.loggedIn == "" {
			return readline.StatusNop, r.rl.Print("Not logged in.")
		}
		return readline.StatusNop, r.rl.Print(r.loggedIn)
	case "echo":
		// kein Zeilenumbruch hier, den schreibt die Schleife bei StatusContinue
		fmt.Fprint(r.out, strings.Join(args[1:], " "))
		return readline.StatusContinue, nil
	case "history":
		r.history()
		return readline.StatusNop, nil
	case "set":
		return r.set(args[1:])
	case "clear":
		return readline.StatusNop, r.rl.ClearScreen()
	default:
		return readline.StatusNop, r.rl.Print(fmt.Sprintf("Unknown command '%s'. Type help for help.", args[0]))
	}
}

// login fragt Benutzername und verdecktes Passwort ab
func (r *repl) login() (readline.Status, error) {
	user, err := r.rl.Ask("username: ", maxCredentialLen, false)
	if err != nil {
		slog.Debug("login aborted", "error", err)
		return readline.StatusNop, nil
	}

	password, err := r.rl.Ask("password: ", maxCredentialLen, true)
	if err != nil {
		slog.Debug("login aborted", "error", err)
		return readline.StatusNop, nil
	}

	if user != r.user || password != r.password {
		slog.Info("login rejected", "user", user)
		return readline.StatusNop, fmt.Errorf("%w for user '%s'", errLoginFailed, user)
	}

	r.loggedIn = user
	slog.Info("login accepted", "user", user)
	return readline.StatusNop, r.rl.Print(fmt.Sprintf("Welcome %s!", user))
}

// history zeigt den Verlauf als Tabelle, aeltester Eintrag zuerst
func (r *repl) history() {
	var data [][]string
	for i, entry := range r.rl.History.Entries() {
		data = append(data, []string{strconv.Itoa(i + 1), entry})
	}

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"#", "COMMAND"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
}

func (r *repl) set(args []string) (readline.Status, error) {
	if len(args) == 0 {
		usageSet(r.out)
		return readline.StatusNop, nil
	}

	switch args[0] {
	case "history":
		r.rl.HistoryEnable()
		return readline.StatusNop, r.rl.Print("Set 'history' mode.")
	case "nohistory":
		r.rl.HistoryDisable()
		return readline.StatusNop, r.rl.Print("Set 'nohistory' mode.")
	}

	return readline.StatusNop, r.rl.Print(fmt.Sprintf("Unknown command 'set %s'. Type help for help.", args[0]))
}
