package bfs

import (
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dchest/safefile"
	"github.com/itchio/modkit/installer"
	"github.com/pkg/errors"
)

// A Receipt describes what a mod install put in a game folder.
//
// It's compressed and written to `./.modkit/receipts/<name>.json.gz`
// every time an install completes successfully.
type Receipt struct {
	// Name the receipt is stored under
	Name string `json:"name"`

	// The installer used for this mod
	InstallerName string `json:"installerName"`

	// Extension name, for extensions
	// @optional
	Identity string `json:"identity,omitempty"`

	// A list of installed files (slash-separated paths, relative to the game folder)
	Files []string `json:"files"`
}

// ReceiptName picks the name a plan's receipt is stored under
func ReceiptName(plan *installer.InstallPlan) string {
	if plan.Identity != "" {
		return plan.Identity
	}

	base := installer.BaseName(plan.Anchor)
	name := installer.SanitizeIdentity(base[:len(base)-len(installer.Ext(base))])
	if name == "" {
		return string(plan.Installer)
	}
	return name
}

func ReadReceipt(gameFolder string, name string) (*Receipt, error) {
	path := ReceiptPath(gameFolder, name)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			// that's ok, just return a nil receipt
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	gzr, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	dec := json.NewDecoder(gzr)

	receipt := Receipt{}
	err = dec.Decode(&receipt)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &receipt, nil
}

func (r *Receipt) WriteReceipt(gameFolder string) error {
	path := ReceiptPath(gameFolder, r.Name)

	err := Mkdir(filepath.Dir(path))
	if err != nil {
		return errors.WithStack(err)
	}

	f, err := safefile.Create(path, 0o644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	gzw := gzip.NewWriter(f)
	enc := json.NewEncoder(gzw)
	err = enc.Encode(r)
	if err != nil {
		return errors.WithStack(err)
	}

	err = gzw.Close()
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(f.Commit())
}

func (r *Receipt) HasFiles() bool {
	return r != nil && len(r.Files) > 0
}

func ReceiptPath(gameFolder string, name string) string {
	return filepath.Join(gameFolder, ".modkit", "receipts", name+".json.gz")
}
