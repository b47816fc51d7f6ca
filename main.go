// Package main provides the entry point for the almanac CLI tool.
package main

import (
	"almanac/cmd"
)

func main() {
	cmd.Execute()
}
