package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/navadha/navadha"
	"github.com/navadha/navadha/profile"
	"github.com/navadha/navadha/rajyog"
)

var calcCmd = &cobra.Command{
	Use:   "calc <full name> <birth date>",
	Short: "Derive the full number set for one person",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		birth, err := parseDate(args[1])
		if err != nil {
			return err
		}
		system, err := resolveSystem()
		if err != nil {
			return err
		}

		ns, err := navadha.CalculateAll(args[0], birth, system)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(ns)
		}
		printNumberSet(ns)

		// A vowel-less or consonant-less name leaves the optional numbers at
		// 0; the detector options reject those.
		var yogOpts []rajyog.Option
		if ns.SoulUrge > 0 {
			yogOpts = append(yogOpts, rajyog.WithSoulUrge(ns.SoulUrge))
		}
		if ns.Personality > 0 {
			yogOpts = append(yogOpts, rajyog.WithPersonality(ns.Personality))
		}
		yog := navadha.DetectRajYog(ns.LifePath, ns.Destiny, yogOpts...)
		if yog.Detected {
			fmt.Printf("raj yog:           %s (%d)\n", yog.Type, yog.Strength)
		}
		return nil
	},
}

// printNumberSet renders the set as aligned key/value lines.
func printNumberSet(ns profile.NumberSet) {
	fmt.Printf("life path:         %d\n", ns.LifePath)
	fmt.Printf("destiny:           %d\n", ns.Destiny)
	fmt.Printf("soul urge:         %d\n", ns.SoulUrge)
	fmt.Printf("personality:       %d\n", ns.Personality)
	fmt.Printf("attitude:          %d\n", ns.Attitude)
	fmt.Printf("birthday:          %d\n", ns.Birthday)
	fmt.Printf("driver:            %d\n", ns.Driver)
	fmt.Printf("conductor:         %d\n", ns.Conductor)
	fmt.Printf("maturity:          %d\n", ns.Maturity)
	fmt.Printf("balance:           %d\n", ns.Balance)
	fmt.Printf("hidden passion:    %d\n", ns.HiddenPassion)
	fmt.Printf("subconscious self: %d\n", ns.SubconsciousSelf)
	fmt.Printf("personal y/m/d:    %d/%d/%d\n", ns.PersonalYear, ns.PersonalMonth, ns.PersonalDay)
	fmt.Printf("pinnacles:         %v\n", ns.Pinnacles)
	fmt.Printf("challenges:        %v\n", ns.Challenges)
	if len(ns.KarmicDebts) > 0 {
		fmt.Printf("karmic debts:      %v\n", ns.KarmicDebts)
	}
	if len(ns.KarmicLessons) > 0 {
		fmt.Printf("karmic lessons:    %v\n", ns.KarmicLessons)
	}
}

// printJSON writes any result as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
