package stage

import (
	"os"

	"github.com/itchio/wharf/state"
	"github.com/pkg/errors"
)

// Staged is an archive's listing along with a folder holding its contents
type Staged struct {
	Files  []string
	Folder *Folder

	cleanup func() error
}

// Close removes any temporary folder created while staging
func (s *Staged) Close() error {
	if s.cleanup == nil {
		return nil
	}
	return s.cleanup()
}

// Prepare stages a mod given as either an extracted folder or a .zip
// archive. Folders are used in place.
func Prepare(input string, consumer *state.Consumer) (*Staged, error) {
	if consumer == nil {
		consumer = &state.Consumer{}
	}

	stats, err := os.Stat(input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if stats.IsDir() {
		files, err := ListFolder(input)
		if err != nil {
			return nil, err
		}
		consumer.Debugf("Listed %d entries in %s", len(files), input)
		return &Staged{
			Files:  files,
			Folder: &Folder{Path: input},
		}, nil
	}

	tmp, err := os.MkdirTemp("", "modkit-stage-")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	cleanup := func() error {
		return os.RemoveAll(tmp)
	}

	res, err := ExtractZip(&ExtractParams{
		ArchivePath: input,
		OutputPath:  tmp,
		Consumer:    consumer,
	})
	if err != nil {
		if cerr := cleanup(); cerr != nil {
			consumer.Warnf("Could not remove %s: %v", tmp, cerr)
		}
		return nil, err
	}

	return &Staged{
		Files:   res.Files,
		Folder:  &Folder{Path: tmp},
		cleanup: cleanup,
	}, nil
}
