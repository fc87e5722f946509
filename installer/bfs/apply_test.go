package bfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/itchio/modkit/installer"
	"github.com/itchio/wharf/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dirStage string

func (ds dirStage) Resolve(name string) (string, error) {
	return within(string(ds), toSlash(name))
}

func writeFile(t *testing.T, path string, contents string) {
	require.NoError(t, Mkdir(filepath.Dir(path)))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func Test_Apply(t *testing.T) {
	stageDir := t.TempDir()
	gameDir := t.TempDir()

	writeFile(t, filepath.Join(stageDir, "Foo", "extensioninfo.xml"), "<HacknetExtension/>")
	writeFile(t, filepath.Join(stageDir, "Foo", "sub", "data.bin"), "12345")

	plan := &installer.InstallPlan{
		Installer: installer.InstallerTypeExtension,
		Anchor:    "Foo/extensioninfo.xml",
		Identity:  "Foo",
		Instructions: []*installer.Instruction{
			{Type: installer.InstructionTypeCopy, Source: "Foo/extensioninfo.xml", Destination: "Extensions/Foo/extensioninfo.xml"},
			{Type: installer.InstructionTypeCopy, Source: `Foo\sub\data.bin`, Destination: `Extensions\Foo\sub\data.bin`},
		},
	}

	res, err := Apply(ApplyParams{
		Plan:       plan,
		Stage:      dirStage(stageDir),
		GameFolder: gameDir,
		Consumer:   &state.Consumer{},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 5+len("<HacknetExtension/>"), res.TotalBytes)
	assert.EqualValues(t, []string{
		"Extensions/Foo/extensioninfo.xml",
		"Extensions/Foo/sub/data.bin",
	}, res.Receipt.Files)

	buf, err := os.ReadFile(filepath.Join(gameDir, "Extensions", "Foo", "sub", "data.bin"))
	require.NoError(t, err)
	assert.EqualValues(t, "12345", string(buf))

	receipt, err := ReadReceipt(gameDir, "Foo")
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.True(t, receipt.HasFiles())
	assert.EqualValues(t, "extension", receipt.InstallerName)
	assert.EqualValues(t, res.Receipt.Files, receipt.Files)
}

func Test_ApplyRejectsEscapes(t *testing.T) {
	stageDir := t.TempDir()
	gameDir := t.TempDir()
	writeFile(t, filepath.Join(stageDir, "evil.dll"), "MZ")

	_, err := Apply(ApplyParams{
		Plan: &installer.InstallPlan{
			Installer: installer.InstallerTypeDllMod,
			Anchor:    "evil.dll",
			Instructions: []*installer.Instruction{
				{Type: installer.InstructionTypeCopy, Source: "evil.dll", Destination: "Mods/../../evil.dll"},
			},
		},
		Stage:      dirStage(stageDir),
		GameFolder: gameDir,
		Consumer:   &state.Consumer{},
	})
	assert.Error(t, err)

	receipt, err := ReadReceipt(gameDir, "evil")
	assert.NoError(t, err)
	assert.Nil(t, receipt)
}

func Test_ApplyKeepsTargetFolder(t *testing.T) {
	stageDir := t.TempDir()
	gameDir := t.TempDir()
	writeFile(t, filepath.Join(stageDir, "Foo", "Hacknet.exe"), "evil")
	writeFile(t, filepath.Join(gameDir, "Hacknet.exe"), "game")

	for _, dest := range []string{"Extensions/../Hacknet.exe", `Extensions\..\Hacknet.exe`, "Extensions/..", "../Hacknet.exe", "Hacknet.exe"} {
		_, err := Apply(ApplyParams{
			Plan: &installer.InstallPlan{
				Installer: installer.InstallerTypeExtension,
				Anchor:    "Foo/extensioninfo.xml",
				Identity:  "Foo",
				Instructions: []*installer.Instruction{
					{Type: installer.InstructionTypeCopy, Source: "Foo/Hacknet.exe", Destination: dest},
				},
			},
			Stage:      dirStage(stageDir),
			GameFolder: gameDir,
			Consumer:   &state.Consumer{},
		})
		assert.Error(t, err, "destination %q", dest)
	}

	buf, err := os.ReadFile(filepath.Join(gameDir, "Hacknet.exe"))
	require.NoError(t, err)
	assert.EqualValues(t, "game", string(buf))
}

func Test_UnderTopFolder(t *testing.T) {
	assert.NoError(t, underTopFolder("Extensions/Foo/a.xml"))
	assert.NoError(t, underTopFolder("Mods/sub/../plugin.dll"))
	assert.Error(t, underTopFolder("Extensions/../Hacknet.exe"))
	assert.Error(t, underTopFolder("Mods/./"))
	assert.Error(t, underTopFolder("Mods"))
	assert.Error(t, underTopFolder("/etc/passwd"))
}

func Test_ApplyValidates(t *testing.T) {
	_, err := Apply(ApplyParams{})
	assert.Error(t, err)

	_, err = Apply(ApplyParams{
		Plan:     &installer.InstallPlan{},
		Stage:    dirStage(t.TempDir()),
		Consumer: &state.Consumer{},
	})
	assert.Error(t, err)
}

func Test_ReceiptName(t *testing.T) {
	assert.EqualValues(t, "MyExt", ReceiptName(&installer.InstallPlan{
		Installer: installer.InstallerTypeExtension,
		Anchor:    "Foo/extensioninfo.xml",
		Identity:  "MyExt",
	}))
	assert.EqualValues(t, "plugin", ReceiptName(&installer.InstallPlan{
		Installer: installer.InstallerTypeDllMod,
		Anchor:    `mods\sub\plugin.dll`,
	}))
	assert.EqualValues(t, "dll-mod", ReceiptName(&installer.InstallPlan{
		Installer: installer.InstallerTypeDllMod,
		Anchor:    "a/<>.dll",
	}))
}
