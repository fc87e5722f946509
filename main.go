package main

import (
	"log"
	"os"

	"github.com/itchio/modkit/cmd/detect"
	"github.com/itchio/modkit/cmd/install"
	"github.com/itchio/modkit/cmd/plan"
	"github.com/itchio/modkit/comm"
	"github.com/itchio/modkit/config"
	"github.com/itchio/modkit/mansion"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	version = "head" // set by command-line on CI release builds
	app     = kingpin.New("modkit", "Installs game mods and extensions from archives")
)

var appArgs = struct {
	json       *bool
	quiet      *bool
	verbose    *bool
	timestamps *bool
	config     *string
}{
	app.Flag("json", "Enable machine-readable JSON-lines output").Short('j').Bool(),
	app.Flag("quiet", "Hide extra info").Short('q').Bool(),
	app.Flag("verbose", "Display as much extra info as possible").Short('v').Bool(),
	app.Flag("timestamps", "Prefix all output by timestamps (for logging purposes)").Bool(),
	app.Flag("config", "Path to the config file").Default(config.DefaultPath).String(),
}

func main() {
	app.HelpFlag.Short('h')
	app.Version(version)
	app.VersionFlag.Short('V')

	ctx := mansion.NewContext(app)
	ctx.VersionString = version

	detect.Register(ctx)
	plan.Register(ctx)
	install.Register(ctx)

	fullCmd, err := app.Parse(os.Args[1:])
	if *appArgs.timestamps {
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	} else {
		log.SetFlags(0)
	}

	ctx.Quiet = *appArgs.quiet
	ctx.Verbose = *appArgs.verbose
	ctx.JSON = *appArgs.json
	ctx.ConfigPath = *appArgs.config
	comm.Configure(ctx.Quiet, ctx.Verbose, ctx.JSON)

	do := ctx.Commands[kingpin.MustParse(fullCmd, err)]
	if do == nil {
		comm.Dief("unknown command: %s", fullCmd)
		return
	}
	do(ctx)
}
