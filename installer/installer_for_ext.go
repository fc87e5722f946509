package installer

import "strings"

// keys are lower-case
var installerForFileName = map[string]InstallerType{
	ManifestFileName: InstallerTypeExtension,
}

// keys are lower-case
var installerForExt = map[string]InstallerType{
	BinaryExt: InstallerTypeDllMod,
}

// ClassifyFile returns the kind of mod a single archive entry points
// to, or InstallerTypeUnknown. Folder entries are never classified.
func ClassifyFile(file string) InstallerType {
	if IsDirEntry(file) {
		return InstallerTypeUnknown
	}

	name := strings.ToLower(BaseName(file))
	if typ, ok := installerForFileName[name]; ok {
		return typ
	}

	if typ, ok := installerForExt[strings.ToLower(Ext(file))]; ok {
		return typ
	}

	return InstallerTypeUnknown
}
