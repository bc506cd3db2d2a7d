package cmd

import (
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and print the answer",
	Long: `Shows the question as a prompt, edits the answer in place and prints
it on its own line once Enter is pressed. Closing input (Ctrl+D on an
empty pipe) confirms whatever was typed; Ctrl+C aborts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := "> "
		if len(args) == 1 {
			question = args[0]
		}

		c := newConsole(cmd)
		answer, err := c.Prompt(question)
		if err != nil {
			return err
		}
		return c.Print(answer)
	},
}
