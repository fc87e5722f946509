package install

import (
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/itchio/modkit/cmd/plan"
	"github.com/itchio/modkit/comm"
	"github.com/itchio/modkit/installer"
	"github.com/itchio/modkit/installer/bfs"
	"github.com/itchio/modkit/mansion"
	"github.com/itchio/modkit/stage"
	"github.com/pkg/errors"
)

var args = struct {
	input      *string
	gameFolder *string
	open       *bool
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("install", "Install a mod into the game folder")
	args.input = cmd.Arg("input", "A .zip archive or a folder").Required().String()
	args.gameFolder = cmd.Flag("game-folder", "Game folder to install to (overrides config)").String()
	args.open = cmd.Flag("open", "Open remediation links right away (e.g. to download a missing mod loader)").Bool()
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx, *args.input, *args.gameFolder, *args.open))
}

func Do(ctx *mansion.Context, input string, gameFolder string, openLinks bool) error {
	consumer := comm.NewStateConsumer()

	cfg, err := ctx.Config()
	if err != nil {
		return err
	}
	if gameFolder != "" {
		c := *cfg
		c.GameFolder = gameFolder
		cfg = &c
	}
	err = cfg.ValidateForInstall()
	if err != nil {
		return errors.Wrap(err, "checking config")
	}

	startTime := time.Now()

	staged, err := stage.Prepare(input, consumer)
	if err != nil {
		return err
	}
	defer staged.Close()

	p, err := installer.Install(&installer.InstallParams{
		Files:         staged.Files,
		Staged:        staged.Folder,
		CompanionPath: cfg.CompanionPath,
		CompanionURL:  cfg.CompanionURL,
		Consumer:      consumer,
		Notifications: comm.NewNotificationSink(openLinks),
	})
	if err != nil {
		var ume *installer.UnrecognizedModError
		if errors.As(err, &ume) {
			comm.Debugf("%s", ume.Diagnostics())
		}
		return err
	}

	if !comm.JsonEnabled() && ctx.Verbose {
		plan.Print(p)
	}

	comm.Opf("Installing to %s", cfg.GameFolder)
	res, err := bfs.Apply(bfs.ApplyParams{
		Plan:       p,
		Stage:      staged.Folder,
		GameFolder: cfg.GameFolder,
		Consumer:   consumer,
	})
	if err != nil {
		return err
	}

	comm.ResultOrPrint(res.Receipt, func() {
		comm.Statf("Installed %s (%d files, %s) in %s",
			res.Receipt.Name,
			len(res.Receipt.Files),
			humanize.IBytes(uint64(res.TotalBytes)),
			time.Since(startTime).Round(time.Millisecond),
		)
	})
	return nil
}
