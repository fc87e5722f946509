package mansion

import (
	"github.com/itchio/modkit/comm"
	"github.com/itchio/modkit/config"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

type DoCommand func(ctx *Context)

type Context struct {
	App      *kingpin.Application
	Commands map[string]DoCommand

	// VersionString is the complete version string
	VersionString string

	// Quiet silences all output
	Quiet bool

	// Verbose enables chatty output
	Verbose bool

	// JSON enables machine-readable output
	JSON bool

	// Path to the modkit.toml file
	ConfigPath string

	config *config.Config
}

func NewContext(app *kingpin.Application) *Context {
	return &Context{
		App:        app,
		Commands:   make(map[string]DoCommand),
		ConfigPath: config.DefaultPath,
	}
}

func (ctx *Context) Register(clause *kingpin.CmdClause, do DoCommand) {
	ctx.Commands[clause.FullCommand()] = do
}

func (ctx *Context) Must(err error) {
	if err != nil {
		if ctx.Verbose || ctx.JSON {
			comm.Dief("%+v", err)
		} else {
			comm.Dief("%s", err)
		}
	}
}

// Config reads the config file on first use
func (ctx *Context) Config() (*config.Config, error) {
	if ctx.config == nil {
		cfg, err := config.Read(ctx.ConfigPath)
		if err != nil {
			return nil, err
		}
		comm.Debugf("Using config from %s", ctx.ConfigPath)
		ctx.config = cfg
	}
	return ctx.config, nil
}
