package storage

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/jot/internal/model"
)

// ErrNoPath is returned when a page without a file path is to be read from
// its file.
var ErrNoPath = errors.New("page has no file path")

// LoadPage returns a new page backed by the file at the given path.
//
// A file that is missing or can't be read yields an empty page (for the path),
// not an error; the file is then created on the first write.
func LoadPage(fsys FS, path string) *model.Page {
	page := model.NewPage()
	page.FilePath = path

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("opening new file")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("could not read file, opening empty")
		}
		return page
	}

	page.LoadFromText(string(data))
	log.Debug().Str("path", path).Str("page", page.ID).Int("lines", page.LineCount()).Msg("loaded page")
	return page
}

// SavePage writes the page's text to the given path and on success makes that
// the page's file path.
func SavePage(fsys FS, page *model.Page, path string) error {
	err := fsys.WriteFile(path, []byte(page.Text()))
	if err != nil {
		return err
	}
	page.FilePath = path
	log.Debug().Str("path", path).Str("page", page.ID).Msg("saved page")
	return nil
}

// RevertPage replaces the page's contents by those of its file, discarding
// any changes.
// On error the page is left untouched.
func RevertPage(fsys FS, page *model.Page) error {
	if page.FilePath == "" {
		return ErrNoPath
	}
	data, err := fsys.ReadFile(page.FilePath)
	if err != nil {
		return fmt.Errorf("could not read '%s' (%w)", page.FilePath, err)
	}
	page.LoadFromText(string(data))
	page.ScrollOffset, page.HorizontalScrollOffset = 0, 0
	return nil
}
