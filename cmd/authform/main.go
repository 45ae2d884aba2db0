// Command authform turns authentication transactions into form
// descriptors, fills them interactively and serves them over HTTP.
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	cli := CLI{Globals: Globals{Out: os.Stdout, Err: os.Stderr}}
	ctx := kong.Parse(&cli,
		kong.Name("authform"),
		kong.Description("Build authentication form descriptors from protocol transactions."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}
