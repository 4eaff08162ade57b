// Package main is the entry point for the duelviz CLI tool, which turns
// per-match duel statistics into a stacked-bar infographic.
package main

import "github.com/tkaraca/duelviz/cmd"

func main() {
	cmd.Execute()
}
