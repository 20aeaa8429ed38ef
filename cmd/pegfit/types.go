package main

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLICheck is a JSON-friendly record of one fit check.
type CLICheck struct {
	Peg             CLIPeg  `json:"peg"`
	Hole            CLIHole `json:"hole"`
	EffectiveRadius float64 `json:"effective_radius"`
	Fits            bool    `json:"fits"`
}

// CLIPeg is a JSON-friendly peg representation. Radius is set for round
// pegs, Width for square pegs.
type CLIPeg struct {
	Kind   string   `json:"kind"`
	Radius *float64 `json:"radius,omitempty"`
	Width  *float64 `json:"width,omitempty"`
}

// CLIHole is a JSON-friendly round hole representation.
type CLIHole struct {
	Radius float64 `json:"radius"`
}
