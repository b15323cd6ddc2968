// Package main is the entry point for the clovercov CLI.
package main

import "clovercov.dev/pkg/clovercov/cmd"

func main() {
	cmd.Execute()
}
