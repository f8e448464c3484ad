package main

import (
	"os"

	"github.com/arthur-debert/textfilter/cmd/textfilter"
)

func main() {
	os.Exit(textfilter.Execute())
}
