package stage

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// manifests are tiny, anything larger than this isn't one
const maxReadSize = 1024 * 1024

// Folder is a directory an archive was extracted to. It lets
// installers read files by their archive path.
type Folder struct {
	Path string
}

// Resolve maps an archive path (slash or backslash separated) to
// a path inside the folder. Paths escaping the folder are rejected.
func (f *Folder) Resolve(name string) (string, error) {
	return resolveWithin(f.Path, name)
}

// ReadFile reads a staged file in one shot.
func (f *Folder) ReadFile(name string) ([]byte, error) {
	path, err := f.Resolve(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	buf, err := io.ReadAll(io.LimitReader(file, maxReadSize+1))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(buf) > maxReadSize {
		return nil, errors.Errorf("%s: larger than %d bytes, refusing to read", name, maxReadSize)
	}
	return buf, nil
}

func resolveWithin(root string, name string) (string, error) {
	slashed := strings.Replace(name, `\`, "/", -1)
	path := filepath.Join(root, filepath.FromSlash(slashed))

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("%s: escapes %s", name, root)
	}
	return path, nil
}

// ListFolder returns every entry below root as a slash-separated
// listing, with folders suffixed by a slash, in lexical order.
func ListFolder(root string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			files = append(files, rel+"/")
		} else if info.Mode().IsRegular() {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sort.Strings(files)
	return files, nil
}
