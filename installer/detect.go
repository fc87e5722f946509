package installer

// FindAnchor returns the first file in the listing that identifies
// a mod of the given type.
func FindAnchor(files []string, typ InstallerType) (string, bool) {
	for _, file := range files {
		if ClassifyFile(file) == typ {
			return file, true
		}
	}
	return "", false
}

// Detect tells whether any installer could handle a listing. It never
// reads files, and it doesn't say which installer will end up being
// picked.
func Detect(files []string) *DetectResult {
	res := &DetectResult{
		RequiredFiles: []string{},
	}

	for _, typ := range []InstallerType{InstallerTypeExtension, InstallerTypeDllMod} {
		if _, ok := FindAnchor(files, typ); ok {
			res.Supported = true
			break
		}
	}

	return res
}
