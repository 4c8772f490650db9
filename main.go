package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/WhiskyReview/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("WhiskyReview"), kong.Description("WhiskyReview serves a whisky tasting journal."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
