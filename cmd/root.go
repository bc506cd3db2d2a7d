package cmd

import (
	"os"

	"github.com/alantheprice/termline/pkg/console"
	"github.com/alantheprice/termline/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	capacity int    // edit buffer size for prompts
	logFile  string // rotating diagnostics log, empty disables logging
	jsonLogs bool   // structured log records

	logger  *utils.Logger
	cleanup *console.CleanupHandler
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "termline",
	Short: "Single-line terminal prompts with live status output",
	Long: `Termline drives the terminal directly with ANSI escape sequences.
It reads keystrokes in raw mode to edit one line in place, and can print
status lines above an open prompt without corrupting what is being typed.

Available commands:
  ask    - ask one question and print the answer
  chat   - prompt in a loop while background status lines are printed
  color  - print text in a 24-bit color
  drown  - scroll everything on screen out of view
  clear  - clear the screen`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := utils.LoggerConfigFromEnv(logFile)
		cfg.JSON = cfg.JSON || jsonLogs
		logger = utils.NewLogger(cfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	cleanup = console.NewCleanupHandler()
	defer cleanup.Stop()
	defer cleanup.EnsureCleanup()
	defer func() {
		if err := logger.Close(); err != nil {
			os.Stderr.WriteString("Error closing logger: " + err.Error() + "\n")
		}
	}()

	err := rootCmd.Execute()
	logger.LogError(err)
	return err
}

func init() {
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", console.DefaultCapacity, "Maximum number of bytes a prompt accepts")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write diagnostics to this rotating log file")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Write log records as JSON (also TERMLINE_JSON_LOGS=1)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(drownCmd)
	rootCmd.AddCommand(clearCmd)
}

// newConsole builds a console over the command's input and output streams.
// A real stdin gets raw mode and a cleanup hook; anything else is read as is.
func newConsole(cmd *cobra.Command) *console.Console {
	var src console.InputSource
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		stdin := console.NewStdinSource(f, logger)
		if cleanup != nil {
			cleanup.Register(stdin.Restore)
		}
		src = stdin
	} else {
		src = console.NewReaderSource(cmd.InOrStdin())
	}

	return console.New(
		console.WithInput(src),
		console.WithOutput(cmd.OutOrStdout()),
		console.WithCapacity(capacity),
		console.WithLogger(logger),
	)
}
