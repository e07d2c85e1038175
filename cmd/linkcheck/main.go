package main

import (
	"os"

	"git.home.luguber.info/inful/linkcheck/cmd/linkcheck/commands"
)

func main() {
	os.Exit(commands.Run(os.Args[1:], os.Stdout, os.Stderr))
}
