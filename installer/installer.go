package installer

import (
	"github.com/itchio/wharf/state"
)

// A Manager knows how to recognize one kind of mod and how to
// plan its installation.
type Manager interface {
	// Anchor returns the file whose presence identifies this kind
	// of mod, and whose folder is the root of the install.
	Anchor(files []string) (string, bool)
	Plan(params *InstallParams, anchor string) (*InstallPlan, error)
	Name() string
}

// StagedFiles gives read access to files that were already extracted
// from the archive being installed.
type StagedFiles interface {
	// ReadFile returns the contents of a file, given its path
	// as listed in the archive.
	ReadFile(name string) ([]byte, error)
}

type InstallParams struct {
	// Paths relative to the archive root, in enumeration order
	Files []string

	// Where the archive's contents have been extracted
	Staged StagedFiles

	// Previously recorded location of the companion tool executable.
	// Only consulted for dll mods.
	CompanionPath string

	// Where to point users who don't have the companion tool
	CompanionURL string

	// Listener for logging
	Consumer *state.Consumer

	// Receives advisories, may be nil
	Notifications *NotificationSink
}

// GetConsumer returns the consumer to log to. It's never nil, but
// params are left untouched when none was set.
func (params *InstallParams) GetConsumer() *state.Consumer {
	if params.Consumer == nil {
		return &state.Consumer{}
	}
	return params.Consumer
}

type InstructionType string

const (
	InstructionTypeCopy InstructionType = "copy"
)

// An Instruction tells the host how to move one archive file
// into the game's mod tree.
type Instruction struct {
	Type InstructionType `json:"type"`
	// Path within the archive
	Source string `json:"source"`
	// Path within the game folder
	Destination string `json:"destination"`
}

type InstallPlan struct {
	Installer InstallerType `json:"installer"`
	// File that got this installer picked
	Anchor string `json:"anchor"`
	// Only set for extensions
	Identity     string         `json:"identity,omitempty"`
	Instructions []*Instruction `json:"instructions"`
}

// DetectResult tells whether an archive can be installed at all.
type DetectResult struct {
	Supported bool `json:"supported"`
	// Always empty for now, no variant needs extra files
	RequiredFiles []string `json:"requiredFiles"`
}

type InstallerType string

const (
	InstallerTypeExtension InstallerType = "extension"
	InstallerTypeDllMod    InstallerType = "dll-mod"
	InstallerTypeUnknown   InstallerType = "unknown"
)

const (
	// ManifestFileName identifies extensions, matched case-insensitively
	ManifestFileName = "extensioninfo.xml"
	// BinaryExt identifies dll mods, matched case-insensitively
	BinaryExt = ".dll"

	ExtensionsFolder = "Extensions"
	ModsFolder       = "Mods"
)
