// Package main is the entry point for the mutforge CLI.
package main

import "gooze.dev/pkg/mutforge/cmd"

func main() {
	cmd.Execute()
}
