package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navadha/navadha"
)

var gridCmd = &cobra.Command{
	Use:   "grid <full name> <birth date>",
	Short: "Build the Lo Shu grid and its personality arrows",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		birth, err := parseDate(args[1])
		if err != nil {
			return err
		}

		grid, err := navadha.CalculateLoShuGrid(args[0], birth)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(struct {
				Grid   any `json:"grid"`
				Arrows any `json:"arrows"`
			}{grid, grid.Arrows()})
		}

		fmt.Println(grid)
		for _, a := range grid.Arrows() {
			fmt.Printf("arrow of %s (%v): %s\n", a.Name, a.Numbers, a.Status)
		}
		return nil
	},
}
