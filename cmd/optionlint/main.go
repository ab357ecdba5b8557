// Command optionlint checks select option catalog files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-drift/selectfield/cmd/optionlint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrProblems) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
