package main

import (
	"os"

	"github.com/clemsoncpsc-discord/clembot/internal/buildinfo"
	"github.com/clemsoncpsc-discord/clembot/internal/cli"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(cli.Execute(buildinfo.New(buildVersion, buildDate, buildCommit)))
}
