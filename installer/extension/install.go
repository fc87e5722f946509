package extension

import (
	"github.com/itchio/modkit/installer"
	"github.com/pkg/errors"
)

func (m *Manager) Anchor(files []string) (string, bool) {
	return installer.FindAnchor(files, installer.InstallerTypeExtension)
}

func (m *Manager) Plan(params *installer.InstallParams, anchor string) (*installer.InstallPlan, error) {
	identity, err := ResolveIdentity(params.Staged, anchor)
	if err != nil {
		return nil, err
	}
	params.GetConsumer().Debugf("Extension identity: %s", identity)

	plan, err := installer.BuildPlan(&installer.PlanParams{
		Installer:    installer.InstallerTypeExtension,
		Files:        params.Files,
		Anchor:       anchor,
		TargetFolder: installer.ExtensionsFolder,
		Identity:     identity,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return plan, nil
}
