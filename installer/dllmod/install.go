package dllmod

import (
	"github.com/itchio/modkit/installer"
	"github.com/pkg/errors"
)

func (m *Manager) Anchor(files []string) (string, bool) {
	return installer.FindAnchor(files, installer.InstallerTypeDllMod)
}

func (m *Manager) Plan(params *installer.InstallParams, anchor string) (*installer.InstallPlan, error) {
	plan, err := installer.BuildPlan(&installer.PlanParams{
		Installer:         installer.InstallerTypeDllMod,
		Files:             params.Files,
		Anchor:            anchor,
		TargetFolder:      installer.ModsFolder,
		AdoptTargetFolder: true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	CheckCompanion(params)

	return plan, nil
}
