package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

// Source fetches the raw bytes of a translation document.
type Source interface {
	// Fetch returns the document body and its serialization format.
	Fetch(ctx context.Context) ([]byte, i18n.Format, error)

	// Name identifies the source in logs.
	Name() string
}

// FileSource reads a document from a file on disk.
// The format is chosen by i18n.FormatFromPath.
func FileSource(path string) Source {
	return fileSource{path: path}
}

// FSSource reads a document from an fs.FS.
func FSSource(fsys fs.FS, name string) Source {
	return fsSource{fsys: fsys, name: name}
}

type fileSource struct {
	path string
}

func (s fileSource) Fetch(ctx context.Context) ([]byte, i18n.Format, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: could not open file %q: %v", i18n.ErrIO, s.path, err)
	}
	return data, i18n.FormatFromPath(s.path), nil
}

func (s fileSource) Name() string {
	return "file:" + s.path
}

type fsSource struct {
	fsys fs.FS
	name string
}

func (s fsSource) Fetch(ctx context.Context) ([]byte, i18n.Format, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	data, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return nil, "", fmt.Errorf("%w: could not open file %q: %v", i18n.ErrIO, s.name, err)
	}
	return data, i18n.FormatFromPath(s.name), nil
}

func (s fsSource) Name() string {
	return "fs:" + s.name
}
