// datesift extracts dates and times from free text, URLs, and file names.
package main

import (
	"fmt"
	"os"

	"github.com/jparise/datesift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
