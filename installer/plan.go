package installer

import (
	"strings"

	"github.com/pkg/errors"
)

type PlanParams struct {
	Installer InstallerType
	Files     []string
	Anchor    string

	// "Extensions" or "Mods"
	TargetFolder string

	// Optional, becomes a folder right below TargetFolder
	Identity string

	// If the anchor is somewhere below a folder named like TargetFolder,
	// install relative to that folder instead of the anchor's own.
	AdoptTargetFolder bool
}

// BuildPlan maps every file living under the anchor's root folder
// to a destination in the game's mod tree. Files outside of the root
// are left out. Instructions come out in listing order.
func BuildPlan(params *PlanParams) (*InstallPlan, error) {
	if !hasFile(params.Files, params.Anchor) {
		return nil, errors.Wrapf(ErrNoAnchorFile, "looking for %q", params.Anchor)
	}

	sep := separatorOf(params.Files)
	root := DirName(params.Anchor)
	if params.AdoptTargetFolder {
		root = adoptTargetFolder(root, params.TargetFolder)
	}

	prefix := params.TargetFolder + sep
	if params.Identity != "" {
		prefix += params.Identity + sep
	}

	plan := &InstallPlan{
		Installer:    params.Installer,
		Anchor:       params.Anchor,
		Identity:     params.Identity,
		Instructions: []*Instruction{},
	}

	for _, file := range params.Files {
		if IsDirEntry(file) {
			continue
		}

		rel, ok := relativeTo(root, file)
		if !ok {
			continue
		}

		plan.Instructions = append(plan.Instructions, &Instruction{
			Type:        InstructionTypeCopy,
			Source:      file,
			Destination: prefix + rel,
		})
	}

	if len(plan.Instructions) == 0 {
		// only reachable if the anchor itself is a folder entry
		return nil, errors.Wrapf(ErrNoAnchorFile, "nothing to install under %q", root)
	}

	return plan, nil
}

func hasFile(files []string, file string) bool {
	if file == "" {
		return false
	}
	for _, f := range files {
		if f == file {
			return true
		}
	}
	return false
}

// relativeTo returns the part of file that follows root, if root is
// one of its parent folders. An empty root is the archive root.
func relativeTo(root string, file string) (string, bool) {
	if root == "" {
		return file, true
	}
	if len(file) <= len(root)+1 || !strings.HasPrefix(file, root) {
		return "", false
	}
	if !isSeparator(file[len(root)]) {
		return "", false
	}
	return file[len(root)+1:], true
}

// adoptTargetFolder returns the prefix of dir that ends with the
// outermost segment named like folder, or dir itself if there's none.
func adoptTargetFolder(dir string, folder string) string {
	start := 0
	for i := 0; i <= len(dir); i++ {
		if i < len(dir) && !isSeparator(dir[i]) {
			continue
		}
		if strings.EqualFold(dir[start:i], folder) {
			return dir[:i]
		}
		start = i + 1
	}
	return dir
}
