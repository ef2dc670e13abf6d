package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navadha/navadha"
	"github.com/navadha/navadha/compat"
)

var flagRelationship string

var compatCmd = &cobra.Command{
	Use:   "compat <name A> <birth A> <name B> <birth B>",
	Short: "Score the compatibility of two people",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		birthA, err := parseDate(args[1])
		if err != nil {
			return err
		}
		birthB, err := parseDate(args[3])
		if err != nil {
			return err
		}
		system, err := resolveSystem()
		if err != nil {
			return err
		}
		rel, err := resolveRelationship(flagRelationship)
		if err != nil {
			return err
		}
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		a, err := navadha.CalculateAll(args[0], birthA, system)
		if err != nil {
			return fmt.Errorf("person A: %w", err)
		}
		b, err := navadha.CalculateAll(args[2], birthB, system)
		if err != nil {
			return fmt.Errorf("person B: %w", err)
		}

		res, err := navadha.ScoreCompatibility(a, b, rel, compat.WithLogger(log))
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(res)
		}

		fmt.Printf("%s score: %d/100\n", rel, res.Score)
		for _, fs := range res.Factors {
			fmt.Printf("  %-12s %2d vs %2d → %d\n", fs.Factor, fs.A, fs.B, fs.Score)
		}
		for _, s := range res.Strengths {
			fmt.Println("  +", s)
		}
		for _, c := range res.Challenges {
			fmt.Println("  -", c)
		}
		return nil
	},
}

func init() {
	compatCmd.Flags().StringVar(&flagRelationship, "relationship", "", "romantic, business, friendship or family (default from config)")
}
