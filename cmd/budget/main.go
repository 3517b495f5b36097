/*
main.go - Command-line time budget calculator

PURPOSE:
  Prints the weekly and yearly breakdown of a time budget without running
  the HTTP server.

INPUTS:
  Figures come from, in increasing order of precedence:
  1. Built-in defaults (8h sleep, 8h work Mon-Fri, 10 holidays, 14 vacation days)
  2. --preset NAME      one of the demo profiles
  3. --config FILE      a YAML profile (same keys as the JSON API)
  4. Individual flags   --sleep, --work, --workdays, --holidays, --vacation, --extra

EXAMPLES:
  budget weekly --sleep 7 --work 9 --workdays Mon,Tue,Wed,Thu
  budget year --year 2024 --config me.yaml
  budget months --preset busy

SEE ALSO:
  - commands.go: Subcommands
  - factory/profile.go: YAML/JSON profile format
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
