package i18n

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Format identifies the serialization of a translation document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
// .yaml and .yml select YAML, .toml selects TOML, anything else JSON.
func FormatFromPath(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Load reads a translation document from a file on disk.
// The format is chosen by FormatFromPath.
//
// Example file:
//
//	{
//	  "en": {"greeting": "Hello", "user": {"name": "Name"}},
//	  "id": {"greeting": "Halo"}
//	}
func Load(filePath string, opts ...Option) (*Store, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open file %q: %v", ErrIO, filePath, err)
	}
	return parseNamed(data, FormatFromPath(filePath), filePath, opts)
}

// LoadFS reads a translation document from an fs.FS.
func LoadFS(fsys fs.FS, name string, opts ...Option) (*Store, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open file %q: %v", ErrIO, name, err)
	}
	return parseNamed(data, FormatFromPath(name), name, opts)
}

// Parse builds a Store from raw document bytes.
func Parse(data []byte, format Format, opts ...Option) (*Store, error) {
	return parseNamed(data, format, "", opts)
}

// LoadDir builds a Store from one file per locale at the root of fsys.
// File convention: {locale}.json, {locale}.yaml, {locale}.yml or
// {locale}.toml; the file body is the locale's subtree. Files are read
// concurrently.
//
// Example structure:
//
//	en.json
//	de.json
//	fr.yaml
func LoadDir(fsys fs.FS, opts ...Option) (*Store, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: reading directory: %v", ErrIO, err)
	}

	var (
		mu  sync.Mutex
		doc = make(map[string]any, len(entries))
		g   errgroup.Group
	)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch strings.ToLower(path.Ext(name)) {
		case ".json", ".yaml", ".yml", ".toml":
		default:
			continue
		}

		locale := strings.TrimSuffix(name, path.Ext(name))
		g.Go(func() error {
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("%w: could not open file %q: %v", ErrIO, name, err)
			}
			subtree, err := decode(data, FormatFromPath(name), name)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			if _, dup := doc[locale]; dup {
				return fmt.Errorf("%w: locale %q defined by more than one file", ErrInvalidDocument, locale)
			}
			doc[locale] = subtree
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(doc, opts...)
}

func parseNamed(data []byte, format Format, name string, opts []Option) (*Store, error) {
	doc, err := decode(data, format, name)
	if err != nil {
		return nil, err
	}
	return New(doc, opts...)
}

// decode parses a document. Zero-length input is ErrEmptyDocument; syntax
// errors are ErrParse carrying the parser's message.
func decode(data []byte, format Format, name string) (any, error) {
	label := "document"
	if name != "" {
		label = fmt.Sprintf("file %q", name)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, label)
	}

	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrParse, label, err)
		}
	case FormatTOML:
		// TOML documents are always tables at the top level.
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrParse, label, err)
		}
		doc = table
	case FormatJSON, "":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrParse, label, err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: unexpected data after top-level value", ErrParse, label)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrParse, format)
	}

	return doc, nil
}
