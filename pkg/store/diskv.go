// Package store keeps journal entry files in a single directory.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	log "github.com/sirupsen/logrus"
)

// ErrNotExist is returned (wrapped) for a missing directory or file.
var ErrNotExist = os.ErrNotExist

// Persistence is the file I/O the journal needs. Names are file names
// relative to the entry directory.
type Persistence interface {
	List(ctx context.Context) ([]string, error)
	Read(name string) (string, error)
	Write(name, contents string) error
	EnsureDir() error
	Exists(name string) bool
	Path(name string) string
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return New(cfg.BasePath())
}

// New returns a Persistence rooted at basePath. The directory is not
// created until EnsureDir or Write. An existing basePath is resolved
// through symlinks, since diskv walks the root without following a link.
func New(basePath string) (Persistence, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	basePath = filepath.Clean(basePath)
	if resolved, err := filepath.EvalSymlinks(basePath); err == nil {
		basePath = resolved
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("store: resolve %s: %w", basePath, err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDirName),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		PathPerm:          0o755,
		FilePerm:          0o644,
	}), basePath: basePath}, nil
}

const tempDirName = ".tmp"

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// List returns the file names directly inside the entry directory, in
// directory walk order. A missing directory is reported as ErrNotExist.
func (p *persistence) List(ctx context.Context) ([]string, error) {
	info, err := os.Stat(p.basePath)
	if err != nil {
		return nil, fmt.Errorf("store: list %s: %w", p.basePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store: list %s: not a directory", p.basePath)
	}

	names := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if strings.ContainsRune(key, filepath.Separator) || strings.HasPrefix(key, ".") {
			continue
		}
		names = append(names, key)
	}
	log.WithField("path", p.basePath).Debugf("store: listed %d files", len(names))
	return names, nil
}

func (p *persistence) Read(name string) (string, error) {
	b, err := p.d.Read(name)
	if err != nil {
		return "", fmt.Errorf("store: read %s: %w", name, err)
	}
	return string(b), nil
}

// Write replaces name with contents through a temp file and rename, so a
// failed write never leaves a truncated entry behind. The temp directory
// is removed again once empty.
func (p *persistence) Write(name, contents string) error {
	if err := p.d.Write(name, []byte(contents)); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	if err := os.Remove(p.d.TempDir); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithField("cause", err).Debugf("store: keeping %s", p.d.TempDir)
	}
	return nil
}

func (p *persistence) EnsureDir() error {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	return nil
}

// Exists reports whether name is in the directory. The empty name asks
// about the directory itself.
func (p *persistence) Exists(name string) bool {
	if name == "" {
		info, err := os.Stat(p.basePath)
		return err == nil && info.IsDir()
	}
	return p.d.Has(name)
}

func (p *persistence) Path(name string) string {
	return filepath.Join(p.basePath, name)
}

// Keys are plain file names; entries never live in sub-directories.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return filepath.Join(append(pathKey.Path, pathKey.FileName)...)
}
