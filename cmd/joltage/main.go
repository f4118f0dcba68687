// Command joltage prints the largest joltage of battery banks.
package main

import "github.com/joltlab/aoc/internal/cli"

func main() {
	cli.Execute()
}
