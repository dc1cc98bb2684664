// Command incognito runs the bottom-up full-domain k-anonymity search
// over a benchmark dataset and prints every minimal generalization
// vector that satisfies k-anonymity.
package main

import "github.com/latticek/incognito/cmd/incognito/cmd"

func main() {
	cmd.Execute()
}
