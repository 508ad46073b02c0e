package main

import (
	"fmt"
	"os"

	"github.com/jhughes-dev/mcmod/internal/cli"
)

// version is overridden at release time via
// -ldflags "-X main.version=1.2.3".
var version = "0.0.0-dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}
}
