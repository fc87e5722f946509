package installer

import (
	"github.com/pkg/errors"
)

type installState int

const (
	stateStart installState = iota
	stateTryExtension
	stateTryDllMod
	stateDone
	stateFailed
)

// Install picks an installer for a listing and returns its plan.
// Extensions are tried first, dll mods second. If neither applies,
// the error is an *UnrecognizedModError and no plan is returned.
func Install(params *InstallParams) (*InstallPlan, error) {
	consumer := params.GetConsumer()

	var plan *InstallPlan
	var attempts []*Attempt

	current := stateStart
	for {
		switch current {
		case stateStart:
			consumer.Debugf("Considering %d archive entries", len(params.Files))
			current = stateTryExtension

		case stateTryExtension, stateTryDllMod:
			typ, next := InstallerTypeExtension, stateTryDllMod
			if current == stateTryDllMod {
				typ, next = InstallerTypeDllMod, stateFailed
			}

			a := tryInstaller(params, typ)
			if a.Err != nil {
				consumer.Debugf("%s installer passed: %v", typ, a.Err)
				attempts = append(attempts, &a.Attempt)
				current = next
				continue
			}

			consumer.Infof("Using %s installer (%d files)", typ, len(a.plan.Instructions))
			plan = a.plan
			current = stateDone

		case stateDone:
			return plan, nil

		case stateFailed:
			return nil, errors.WithStack(&UnrecognizedModError{
				Attempts: attempts,
			})
		}
	}
}

type attemptResult struct {
	Attempt
	plan *InstallPlan
}

func tryInstaller(params *InstallParams, typ InstallerType) attemptResult {
	res := attemptResult{
		Attempt: Attempt{Installer: typ},
	}

	m := GetManager(string(typ))
	if m == nil {
		res.Err = errors.Wrapf(ErrDetectionMiss, "no %s installer registered", typ)
		return res
	}

	anchor, ok := m.Anchor(params.Files)
	if !ok {
		res.Err = errors.WithStack(ErrDetectionMiss)
		return res
	}

	plan, err := m.Plan(params, anchor)
	if err != nil {
		res.Err = err
		return res
	}

	res.plan = plan
	return res
}
