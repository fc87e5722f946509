package detect

import (
	"github.com/itchio/modkit/comm"
	"github.com/itchio/modkit/installer"
	"github.com/itchio/modkit/mansion"
	"github.com/itchio/modkit/stage"
)

var args = struct {
	input *string
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("detect", "Tell whether a mod archive (or extracted folder) can be installed")
	args.input = cmd.Arg("input", "A .zip archive or a folder").Required().String()
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(*args.input))
}

func Do(input string) error {
	consumer := comm.NewStateConsumer()

	staged, err := stage.Prepare(input, consumer)
	if err != nil {
		return err
	}
	defer staged.Close()

	res := installer.Detect(staged.Files)
	comm.ResultOrPrint(res, func() {
		if res.Supported {
			comm.Statf("%s: supported mod", input)
		} else {
			comm.Logf("%s: not a supported mod", input)
		}
	})
	return nil
}
