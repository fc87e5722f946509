package dllmod

import "github.com/itchio/modkit/installer"

// Manager installs mods that are recognized by a .dll file and need
// no manifest. They go to Mods/.
type Manager struct {
}

var _ installer.Manager = (*Manager)(nil)

func (m *Manager) Name() string {
	return string(installer.InstallerTypeDllMod)
}

func Register() {
	installer.RegisterManager(&Manager{})
}
