package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var colorCmd = &cobra.Command{
	Use:   "color <r> <g> <b> <text>",
	Short: "Print text in a 24-bit foreground color",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		var rgb [3]int
		for i := range rgb {
			v, err := strconv.Atoi(args[i])
			if err != nil {
				return fmt.Errorf("invalid color component %q: %w", args[i], err)
			}
			rgb[i] = v
		}

		c := newConsole(cmd)
		return c.Print(c.Color(args[3], rgb[0], rgb[1], rgb[2]))
	},
}

var drownCmd = &cobra.Command{
	Use:   "drown",
	Short: "Push everything on screen out of view with blank lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newConsole(cmd).Drown()
	},
}

var clearReset bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the screen and move the cursor home",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newConsole(cmd)
		if clearReset {
			return c.Reset()
		}
		if err := c.ClearScreen(); err != nil {
			return err
		}
		return c.Home()
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearReset, "reset", false, "Perform a full terminal reset instead")
}
