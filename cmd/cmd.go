// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs, RunHandler, EnvHandler
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"slices"

	"github.com/containerd/console"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/7blacky7/easycli/envconfig"
	"github.com/7blacky7/easycli/logutil"
	"github.com/7blacky7/easycli/readline"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// sortedEnvVars liefert alle Variablen nach Namen sortiert
func sortedEnvVars() []envconfig.EnvVar {
	envs := envconfig.AsMap()
	names := make([]string, 0, len(envs))
	for name := range envs {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]envconfig.EnvVar, 0, len(names))
	for _, name := range names {
		out = append(out, envs[name])
	}
	return out
}

// newLogger - Baut den Logger nach EASYCLI_LOG_FILE und EASYCLI_DEBUG
// "-" schreibt nach stderr ohne Closer, sonst in eine rotierende Datei.
func newLogger() (*slog.Logger, io.Closer) {
	path := envconfig.LogFile()
	if path == "-" {
		return logutil.NewLogger(os.Stderr, envconfig.LogLevel()), nil
	}

	w := logutil.NewFileWriter(path)
	return logutil.NewLogger(w, envconfig.LogLevel()), w
}

// RunHandler - Startet die interaktive Eingabeschleife
func RunHandler(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("%w: easycli needs an interactive terminal on stdin and stdout", readline.ErrResourceUnavailable)
	}

	logger, closer := newLogger()
	if closer != nil {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	prompt, err := cmd.Flags().GetString("prompt")
	if err != nil {
		return err
	}
	maxLen, err := cmd.Flags().GetUint("max-len")
	if err != nil {
		return err
	}
	historySize, err := cmd.Flags().GetUint("history-size")
	if err != nil {
		return err
	}
	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return err
	}

	rl, err := readline.New(readline.Config{
		Prompt:      prompt,
		MaxInputLen: int(maxLen),
		HistorySize: int(historySize),
		MaskChar:    envconfig.MaskChar(),
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	if noHistory {
		rl.HistoryDisable()
	}

	slog.Debug("starting interactive session", "prompt", prompt, "max_len", maxLen, "history_size", historySize, "no_history", noHistory)
	return newREPL(rl).Run(cmd.Context())
}

// EnvHandler - Zeigt alle Umgebungsvariablen mit aktuellem Wert
func EnvHandler(cmd *cobra.Command, args []string) error {
	var data [][]string
	for _, e := range sortedEnvVars() {
		data = append(data, []string{e.Name, fmt.Sprintf("%v", e.Value), e.Description})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "VALUE", "DESCRIPTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()

	return nil
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "easycli",
		Short:         "Interactive single-line command prompt",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: RunHandler,
	}

	rootCmd.Flags().String("prompt", envconfig.Prompt(), "Prompt shown in front of the input")
	rootCmd.Flags().Uint("max-len", envconfig.MaxInputLen(), "Maximum number of characters per line")
	rootCmd.Flags().Uint("history-size", envconfig.HistorySize(), "Number of history entries kept")
	rootCmd.Flags().Bool("no-history", envconfig.NoHistory(), "Do not keep a command history")

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show environment configuration",
		Args:  cobra.NoArgs,
		RunE:  EnvHandler,
	}

	envs := sortedEnvVars()
	appendEnvDocs(rootCmd, envs)
	appendEnvDocs(envCmd, envs)

	rootCmd.AddCommand(envCmd)

	return rootCmd
}
