package bfs

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dchest/safefile"
	"github.com/pkg/errors"
)

func Mkdir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// toSlash normalizes archive-style paths, which may use backslashes
func toSlash(path string) string {
	return strings.Replace(path, `\`, "/", -1)
}

// within joins a slash-separated relative path to root, refusing
// anything that would land outside of it.
func within(root string, rel string) (string, error) {
	full := filepath.Join(root, filepath.FromSlash(rel))
	r, err := filepath.Rel(root, full)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if r == "." || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("%s: not inside %s", rel, root)
	}
	return full, nil
}

// underTopFolder refuses slash-separated paths that leave their first
// segment once cleaned, like "Extensions/../Hacknet.exe".
func underTopFolder(rel string) error {
	top := rel
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		top = rel[:i]
	}
	if top == "" || top == "." || top == ".." || !strings.HasPrefix(path.Clean(rel), top+"/") {
		return errors.Errorf("%s: not inside %s", rel, top)
	}
	return nil
}

// copyFile atomically replaces dst with the contents of src
func copyFile(src string, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer in.Close()

	err = Mkdir(filepath.Dir(dst))
	if err != nil {
		return 0, errors.WithStack(err)
	}

	out, err := safefile.Create(dst, 0o644)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer out.Close()

	n, err := io.Copy(out, in)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	err = out.Commit()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return n, nil
}
