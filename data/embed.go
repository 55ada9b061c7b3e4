// Package data bundles the static unit dataset and the default matchup policy.
package data

import "embed"

// Dataset holds races.json and units.json in the community source format.
//
//go:embed races.json units.json
var Dataset embed.FS

//go:embed policy.yaml
var DefaultPolicy []byte
