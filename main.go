package main

import (
	"github.com/alecthomas/kong"

	"github.com/gchukura/marylandbrewery-sub000/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("marylandbrewery"), kong.Description("Batch enrichment pipeline for the Maryland brewery directory."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
