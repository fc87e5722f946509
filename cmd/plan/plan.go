package plan

import (
	"github.com/itchio/modkit/comm"
	"github.com/itchio/modkit/installer"
	"github.com/itchio/modkit/mansion"
	"github.com/itchio/modkit/stage"
	"github.com/pkg/errors"
)

var args = struct {
	input *string
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("plan", "Show where each file of a mod would be installed, without copying anything")
	args.input = cmd.Arg("input", "A .zip archive or a folder").Required().String()
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx, *args.input))
}

func Do(ctx *mansion.Context, input string) error {
	consumer := comm.NewStateConsumer()

	cfg, err := ctx.Config()
	if err != nil {
		return err
	}

	staged, err := stage.Prepare(input, consumer)
	if err != nil {
		return err
	}
	defer staged.Close()

	comm.Opf("Planning install of %s", input)
	plan, err := installer.Install(&installer.InstallParams{
		Files:         staged.Files,
		Staged:        staged.Folder,
		CompanionPath: cfg.CompanionPath,
		CompanionURL:  cfg.CompanionURL,
		Consumer:      consumer,
		Notifications: comm.NewNotificationSink(false),
	})
	if err != nil {
		var ume *installer.UnrecognizedModError
		if errors.As(err, &ume) {
			comm.Debugf("%s", ume.Diagnostics())
		}
		return err
	}

	comm.ResultOrPrint(plan, func() {
		Print(plan)
	})
	return nil
}

// Print shows a plan as a table
func Print(plan *installer.InstallPlan) {
	var rows [][]string
	for _, instr := range plan.Instructions {
		rows = append(rows, []string{instr.Source, instr.Destination})
	}
	comm.Table([]string{"Source", "Destination"}, rows)

	if plan.Identity != "" {
		comm.Statf("%s %q, %d files", plan.Installer, plan.Identity, len(plan.Instructions))
	} else {
		comm.Statf("%s, %d files", plan.Installer, len(plan.Instructions))
	}
}
