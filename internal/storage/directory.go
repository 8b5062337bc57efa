package storage

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/jot/internal/model"
)

// ReadDirectory lists the directory at the given path into a new snapshot.
// Symlinks are listed as what they point to.
func ReadDirectory(fsys FS, path string) (*model.DirectoryView, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve '%s' (%w)", path, err)
	}

	dirEntries, err := fsys.ReadDir(absPath)
	if err != nil {
		return nil, err
	}

	entries := make([]model.DirectoryEntry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entryPath := filepath.Join(absPath, e.Name())
		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			info, err := fsys.Stat(entryPath)
			if err != nil {
				log.Debug().Err(err).Str("path", entryPath).Msg("dangling symlink")
			} else {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, model.DirectoryEntry{
			Name:  e.Name(),
			Path:  entryPath,
			IsDir: isDir,
		})
	}

	return model.NewDirectoryView(absPath, entries), nil
}

// RefreshDirectory reads the snapshot's directory anew, keeping the selection
// (clamped).
func RefreshDirectory(fsys FS, previous *model.DirectoryView) (*model.DirectoryView, error) {
	view, err := ReadDirectory(fsys, previous.Path)
	if err != nil {
		return nil, err
	}
	view.KeepSelectionOf(previous)
	return view, nil
}
