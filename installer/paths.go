package installer

import "strings"

// Archive listings use either slashes or backslashes, but only
// one kind per listing.

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// IsDirEntry returns true for listing entries that denote folders
func IsDirEntry(file string) bool {
	return file != "" && isSeparator(file[len(file)-1])
}

func lastSeparator(file string) int {
	return strings.LastIndexAny(file, `/\`)
}

// BaseName returns the last segment of an archive path
func BaseName(file string) string {
	return file[lastSeparator(file)+1:]
}

// DirName returns everything before the last segment of an archive
// path, or the empty string for top-level entries.
func DirName(file string) string {
	i := lastSeparator(file)
	if i < 0 {
		return ""
	}
	return file[:i]
}

// Ext returns the extension of the last segment, dot included.
// Dotfiles like ".dll" have no extension.
func Ext(file string) string {
	name := BaseName(file)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i:]
}

// separatorOf returns the separator used by the first listing entry
// that has one, defaulting to a slash.
func separatorOf(files []string) string {
	for _, file := range files {
		i := strings.IndexAny(file, `/\`)
		if i >= 0 {
			return file[i : i+1]
		}
	}
	return "/"
}
