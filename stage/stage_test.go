package stage

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itchio/wharf/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, contents string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

type zipEntry struct {
	name     string
	contents string
}

func makeZip(t *testing.T, entries []zipEntry) string {
	path := filepath.Join(t.TempDir(), "mod.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(e.contents))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func Test_ListFolder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Foo", "extensioninfo.xml"), "<HacknetExtension/>")
	writeFile(t, filepath.Join(dir, "Foo", "sub", "data.bin"), "data")
	writeFile(t, filepath.Join(dir, "top.txt"), "hi")

	files, err := ListFolder(dir)
	require.NoError(t, err)
	assert.EqualValues(t, []string{
		"Foo/",
		"Foo/extensioninfo.xml",
		"Foo/sub/",
		"Foo/sub/data.bin",
		"top.txt",
	}, files)

	_, err = ListFolder(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func Test_FolderReadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Foo", "extensioninfo.xml"), "manifest")
	writeFile(t, filepath.Join(dir, "huge.xml"), strings.Repeat("a", maxReadSize+1))

	folder := &Folder{Path: dir}

	buf, err := folder.ReadFile("Foo/extensioninfo.xml")
	require.NoError(t, err)
	assert.EqualValues(t, "manifest", string(buf))

	buf, err = folder.ReadFile(`Foo\extensioninfo.xml`)
	require.NoError(t, err)
	assert.EqualValues(t, "manifest", string(buf))

	_, err = folder.ReadFile("huge.xml")
	assert.Error(t, err)

	_, err = folder.ReadFile("../outside.txt")
	assert.Error(t, err)

	_, err = folder.ReadFile("Foo/missing.xml")
	assert.Error(t, err)
}

func Test_ExtractZip(t *testing.T) {
	archive := makeZip(t, []zipEntry{
		{"Foo/", ""},
		{"Foo/extensioninfo.xml", "<HacknetExtension><Name>Foo</Name></HacknetExtension>"},
		{"Foo/data.bin", "12345"},
	})
	out := t.TempDir()

	res, err := ExtractZip(&ExtractParams{
		ArchivePath: archive,
		OutputPath:  out,
	})
	require.NoError(t, err)

	assert.EqualValues(t, []string{"Foo/", "Foo/extensioninfo.xml", "Foo/data.bin"}, res.Files)
	assert.EqualValues(t, 5+len("<HacknetExtension><Name>Foo</Name></HacknetExtension>"), res.TotalBytes)

	buf, err := os.ReadFile(filepath.Join(out, "Foo", "data.bin"))
	require.NoError(t, err)
	assert.EqualValues(t, "12345", string(buf))
}

func Test_ExtractZipRejectsEscapes(t *testing.T) {
	archive := makeZip(t, []zipEntry{
		{"../evil.dll", "nope"},
	})

	_, err := ExtractZip(&ExtractParams{
		ArchivePath: archive,
		OutputPath:  t.TempDir(),
	})
	assert.Error(t, err)
}

func Test_Prepare(t *testing.T) {
	archive := makeZip(t, []zipEntry{
		{"mods/sub/plugin.dll", "MZ"},
	})

	staged, err := Prepare(archive, nil)
	require.NoError(t, err)
	assert.EqualValues(t, []string{"mods/sub/plugin.dll"}, staged.Files)

	buf, err := staged.Folder.ReadFile("mods/sub/plugin.dll")
	require.NoError(t, err)
	assert.EqualValues(t, "MZ", string(buf))

	tmp := staged.Folder.Path
	require.NoError(t, staged.Close())
	_, err = os.Stat(tmp)
	assert.True(t, os.IsNotExist(err))

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "plugin.dll"), "MZ")
	staged, err = Prepare(dir, nil)
	require.NoError(t, err)
	assert.EqualValues(t, []string{"plugin.dll"}, staged.Files)
	assert.EqualValues(t, dir, staged.Folder.Path)
	require.NoError(t, staged.Close())
	assert.DirExists(t, dir)

	_, err = Prepare(filepath.Join(dir, "missing.zip"), nil)
	assert.Error(t, err)
}

func Test_PrepareBadArchive(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	tmp := os.TempDir()

	bogus := filepath.Join(t.TempDir(), "mod.zip")
	writeFile(t, bogus, "not a zip")

	var warnings []string
	staged, err := Prepare(bogus, &state.Consumer{
		OnMessage: func(level string, msg string) {
			if level == "warning" {
				warnings = append(warnings, msg)
			}
		},
	})
	assert.Error(t, err)
	assert.Nil(t, staged)
	assert.Empty(t, warnings)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries, "staging folder is removed")
}
