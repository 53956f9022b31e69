package watchset

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"
)

const desktopExt = ".desktop"

// Registrar is the OS primitive the manager registers directories with.
type Registrar interface {
	WatchDir(dir string) error
}

type Option func(*Manager)

// WithExcludes skips files whose base name matches any of the doublestar
// patterns.
func WithExcludes(patterns ...string) Option {
	return func(m *Manager) {
		m.excludes = append(m.excludes, patterns...)
	}
}

// Manager is the registry of watched roots and desktop files. It is not
// safe for concurrent use; all calls must come from one goroutine.
type Manager struct {
	registrar Registrar
	excludes  []string

	roots []string
	files map[string]struct{}
}

func New(registrar Registrar, opts ...Option) *Manager {
	m := &Manager{
		registrar: registrar,
		excludes:  nil,

		roots: nil,
		files: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Initialize registers every existing root and the desktop files it
// directly contains. Missing roots are skipped.
func (m *Manager) Initialize(roots []string) error {
	for _, root := range roots {
		root = filepath.Clean(root)
		if m.IsRoot(root) {
			continue
		}

		info, err := os.Stat(root)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Printf("[DEBUG] skip missing directory %s", root)
				continue
			}
			return fmt.Errorf("can't stat %s: %w", root, err)
		}
		if !info.IsDir() {
			log.Printf("[WARN] skip %s: not a directory", root)
			continue
		}

		if err := m.registrar.WatchDir(root); err != nil {
			return fmt.Errorf("can't watch %s: %w", root, err)
		}
		m.roots = append(m.roots, root)

		if _, err := m.Reconcile(root); err != nil {
			log.Printf("[WARN] %s", err)
		}
	}

	return nil
}

// Reconcile lists root again and registers desktop files that are not
// watched yet. The newly registered paths are returned in name order.
// Files that vanished stay registered until Forget is called for them.
func (m *Manager) Reconcile(root string) ([]string, error) {
	root = filepath.Clean(root)
	if !m.IsRoot(root) {
		return nil, fmt.Errorf("%w: %s", ErrNotRoot, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("can't list %s: %w", root, err)
	}

	added := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() || !m.isDesktopFile(entry.Name()) {
			continue
		}

		path := filepath.Join(root, entry.Name())
		if m.IsWatched(path) {
			continue
		}

		m.files[path] = struct{}{}
		added = append(added, path)
	}

	return added, nil
}

func (m *Manager) IsWatched(path string) bool {
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

func (m *Manager) IsRoot(path string) bool {
	return slices.Contains(m.roots, filepath.Clean(path))
}

// Forget drops path from the registry. Unknown paths are ignored.
func (m *Manager) Forget(path string) {
	delete(m.files, filepath.Clean(path))
}

// Roots returns the watched roots in registration order.
func (m *Manager) Roots() []string {
	return slices.Clone(m.roots)
}

// Files returns the watched files sorted by path.
func (m *Manager) Files() []string {
	files := lo.Keys(m.files)
	slices.Sort(files)
	return files
}

func (m *Manager) isDesktopFile(name string) bool {
	if filepath.Ext(name) != desktopExt {
		return false
	}

	return !lo.ContainsBy(m.excludes, func(pattern string) bool {
		matched, err := doublestar.Match(pattern, name)
		return err == nil && matched
	})
}
