package bfs

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/itchio/modkit/installer"
	"github.com/itchio/wharf/state"
	"github.com/pkg/errors"
)

// A Resolver maps archive paths to files on disk
type Resolver interface {
	Resolve(name string) (string, error)
}

type ApplyParams struct {
	Plan *installer.InstallPlan

	// Where the plan's sources were extracted
	Stage Resolver

	// Destinations are relative to this
	GameFolder string

	Consumer *state.Consumer
}

func (p ApplyParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Plan, validation.NotNil),
		validation.Field(&p.Stage, validation.NotNil),
		validation.Field(&p.GameFolder, validation.Required),
		validation.Field(&p.Consumer, validation.NotNil),
	)
}

type ApplyResult struct {
	Receipt    *Receipt
	TotalBytes int64
}

// Apply carries out every copy instruction of a plan, then writes a
// receipt. Every destination is checked before anything gets copied.
func Apply(params ApplyParams) (*ApplyResult, error) {
	err := params.Validate()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	consumer := params.Consumer
	plan := params.Plan

	type copyOp struct {
		src  string
		dst  string
		file string
	}
	var ops []copyOp

	for _, instr := range plan.Instructions {
		if instr.Type != installer.InstructionTypeCopy {
			return nil, errors.Errorf("unsupported instruction type %q", instr.Type)
		}

		src, err := params.Stage.Resolve(instr.Source)
		if err != nil {
			return nil, err
		}

		file := toSlash(instr.Destination)
		err = underTopFolder(file)
		if err != nil {
			return nil, err
		}
		dst, err := within(params.GameFolder, file)
		if err != nil {
			return nil, err
		}

		ops = append(ops, copyOp{src: src, dst: dst, file: file})
	}

	res := &ApplyResult{
		Receipt: &Receipt{
			Name:          ReceiptName(plan),
			InstallerName: string(plan.Installer),
			Identity:      plan.Identity,
			Files:         []string{},
		},
	}

	for _, op := range ops {
		consumer.Debugf("%s -> %s", op.src, op.file)
		n, err := copyFile(op.src, op.dst)
		if err != nil {
			return nil, errors.Wrapf(err, "installing %s", op.file)
		}
		res.TotalBytes += n
		res.Receipt.Files = append(res.Receipt.Files, op.file)
	}

	consumer.Infof("Install successful, writing receipt")
	err = res.Receipt.WriteReceipt(params.GameFolder)
	if err != nil {
		return nil, err
	}

	return res, nil
}
