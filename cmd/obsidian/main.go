package main

import (
	"os"

	"github.com/bttk/obsidian-cli/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
