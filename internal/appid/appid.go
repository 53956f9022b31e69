package appid

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// VendorKey marks a click-style application id inside a desktop entry.
	VendorKey = "X-Ubuntu-Application-ID="

	desktopSuffix = ".desktop"
)

// Resolver derives application identifiers for desktop-entry files
// located under one of Roots. Roots order matters: the first root that
// structurally contains a file wins.
type Resolver struct {
	Roots []string
}

func New(roots []string) *Resolver {
	cleaned := make([]string, 0, len(roots))
	for _, root := range roots {
		cleaned = append(cleaned, filepath.Clean(root))
	}

	return &Resolver{
		Roots: cleaned,
	}
}

// Resolve returns the vendor-style id when the file carries one and the
// standards-based id otherwise. An unreadable file is treated as one
// without the vendor key.
func (r *Resolver) Resolve(path string) string {
	if id, ok := fromFile(path); ok {
		return id
	}

	return r.ResolveStandard(path)
}

// ResolveStandard derives the id from the path alone.
func (r *Resolver) ResolveStandard(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = filepath.Clean(path)
	}
	dir := filepath.Dir(absPath)

	for _, root := range r.Roots {
		if dir == root {
			break
		}
		if !isUnder(dir, root) {
			continue
		}

		id := strings.TrimPrefix(absPath, root)
		id = strings.ReplaceAll(id, string(filepath.Separator), "-")
		return strings.TrimSuffix(id, desktopSuffix)
	}

	base := filepath.Base(absPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FromContent scans r for the vendor key and returns the id with its
// version suffix stripped.
func FromContent(r io.Reader) (string, bool) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if raw, ok := strings.CutPrefix(line, VendorKey); ok {
			return StripVersion(raw), true
		}
		if err != nil {
			return "", false
		}
	}
}

// StripVersion drops everything from the last "_" on. A raw id with no
// "_" has no name part left and yields "".
func StripVersion(raw string) string {
	components := strings.Split(raw, "_")
	return strings.Join(components[:len(components)-1], "_")
}

func fromFile(path string) (string, bool) {
	h, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer h.Close()

	return FromContent(h)
}

func isUnder(dir, root string) bool {
	if root == string(filepath.Separator) {
		return strings.HasPrefix(dir, root)
	}

	return strings.HasPrefix(dir, root+string(filepath.Separator))
}
