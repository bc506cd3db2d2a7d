package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	chatPrompt   string
	chatInterval time.Duration
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Prompt repeatedly while status lines are printed in the background",
	Long: `Opens a prompt in a loop. A background ticker prints a status line at
each interval; the line appears above the prompt and the partially typed
input is redrawn underneath it. An empty line or /quit ends the session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newConsole(cmd)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		if chatInterval > 0 {
			go func() {
				ticker := time.NewTicker(chatInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case t := <-ticker.C:
						status := c.Color(t.Format("15:04:05"), 120, 120, 120) + " still here"
						if err := c.Print(status); err != nil {
							logger.LogError(err)
							return
						}
					}
				}
			}()
		}

		for turn := 1; ; turn++ {
			line, err := c.PromptContext(ctx, chatPrompt)
			if err != nil {
				return err
			}
			if line == "" || line == "/quit" {
				return nil
			}
			reply := fmt.Sprintf("%s %s", c.Color(fmt.Sprintf("#%d", turn), 80, 200, 120), line)
			if err := c.Print(reply); err != nil {
				return err
			}
		}
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatPrompt, "prompt", "> ", "Prompt text")
	chatCmd.Flags().DurationVar(&chatInterval, "interval", 2*time.Second, "Status line interval (0 disables)")
}
