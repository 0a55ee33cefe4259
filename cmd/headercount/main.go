// Command headercount counts occurrences of well-known HTTP header names in a text file.
package main

import (
	"os"

	"github.com/indigo-web/headercount/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
