package main

import (
	"github.com/spf13/cobra"

	"github.com/jward/pegfit"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the fixed peg-and-hole demonstration",
	Long:  "Checks a round peg of radius 5, a square peg of width 5, and a square peg of width 10 against a round hole of radius 5.",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	checks := demoChecks()

	if flagFormat == "text" {
		formatChecksText(cmd.OutOrStdout(), checks)
		return nil
	}
	return outputResult(cmd.OutOrStdout(), CLIResult{
		Command: "demo",
		Results: checks,
	})
}

// demoChecks runs the three fixed fit checks against a radius-5 hole.
func demoChecks() []CLICheck {
	hole := pegfit.NewRoundHole(5)

	round := pegfit.NewRoundPeg(5)
	small := pegfit.NewSquarePegAdapter(pegfit.NewSquarePeg(5))
	large := pegfit.NewSquarePegAdapter(pegfit.NewSquarePeg(10))

	cliHole := CLIHole{Radius: hole.Radius()}
	return []CLICheck{
		{
			Peg:             CLIPeg{Kind: "round", Radius: floatPtr(round.Radius())},
			Hole:            cliHole,
			EffectiveRadius: round.EffectiveRadius(),
			Fits:            hole.Fits(round),
		},
		{
			Peg:             CLIPeg{Kind: "square", Width: floatPtr(small.Peg().Width())},
			Hole:            cliHole,
			EffectiveRadius: small.EffectiveRadius(),
			Fits:            hole.Fits(small),
		},
		{
			Peg:             CLIPeg{Kind: "square", Width: floatPtr(large.Peg().Width())},
			Hole:            cliHole,
			EffectiveRadius: large.EffectiveRadius(),
			Fits:            hole.Fits(large),
		},
	}
}

func floatPtr(f float64) *float64 { return &f }
