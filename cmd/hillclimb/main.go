// Package main is the entry point for the hillclimb CLI.
package main

import "github.com/katalvlaran/hillclimb/internal/cli"

func main() {
	cli.Execute()
}
