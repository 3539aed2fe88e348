package main

import (
	"github.com/leocov-dev/dpwrap/cmd"
	"github.com/leocov-dev/dpwrap/config"
	_ "github.com/leocov-dev/dpwrap/internal/commands/utils"
)

var Version string

func main() {
	config.SetVersion(Version)
	cmd.Execute()
}
