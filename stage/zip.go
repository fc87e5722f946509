package stage

import (
	"io"
	"os"
	"path/filepath"

	humanize "github.com/dustin/go-humanize"
	"github.com/itchio/arkive/zip"
	"github.com/itchio/wharf/state"
	"github.com/pkg/errors"
)

type ExtractParams struct {
	ArchivePath string
	OutputPath  string

	Consumer *state.Consumer
}

type ExtractResult struct {
	// Archive entries, in the order the archive lists them
	Files []string

	TotalBytes int64
}

// ExtractZip extracts a .zip file and returns its listing.
func ExtractZip(params *ExtractParams) (*ExtractResult, error) {
	consumer := params.Consumer
	if consumer == nil {
		consumer = &state.Consumer{}
	}

	zr, err := zip.OpenReader(params.ArchivePath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s as zip", params.ArchivePath)
	}
	defer zr.Close()

	res := &ExtractResult{}
	for _, f := range zr.File {
		path, err := resolveWithin(params.OutputPath, f.Name)
		if err != nil {
			return nil, err
		}

		res.Files = append(res.Files, f.Name)

		if f.FileInfo().IsDir() {
			err = os.MkdirAll(path, 0o755)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			continue
		}

		n, err := extractFile(f, path)
		if err != nil {
			return nil, errors.Wrapf(err, "extracting %s", f.Name)
		}
		res.TotalBytes += n
	}

	consumer.Infof("Extracted %d entries (%s)", len(res.Files), humanize.IBytes(uint64(res.TotalBytes)))
	return res, nil
}

func extractFile(f *zip.File, path string) (int64, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	rc, err := f.Open()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer rc.Close()

	out, err := os.Create(path)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer out.Close()

	n, err := io.Copy(out, rc)
	if err != nil {
		return n, errors.WithStack(err)
	}
	return n, nil
}
