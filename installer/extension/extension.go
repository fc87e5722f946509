package extension

import "github.com/itchio/modkit/installer"

// Manager installs mods that carry an extensioninfo.xml manifest.
// They go to Extensions/<name>/.
type Manager struct {
}

var _ installer.Manager = (*Manager)(nil)

func (m *Manager) Name() string {
	return string(installer.InstallerTypeExtension)
}

func Register() {
	installer.RegisterManager(&Manager{})
}
