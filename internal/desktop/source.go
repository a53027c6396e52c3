package desktop

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/popup-launcher/internal/logging/events"
	"github.com/mitchellh/go-homedir"
)

// PathSource ranks a desktop-entry directory. Higher values are processed
// later and therefore override lower ones when labels collide.
type PathSource int

const (
	SourceSystemSnap PathSource = iota
	SourceSystemFlatpak
	SourceSystem
	SourceLocalDesktop
	SourceLocalFlatpak
	SourceLocal
	SourceExtra
)

func (p PathSource) String() string {
	switch p {
	case SourceSystemSnap:
		return "system-snap"
	case SourceSystemFlatpak:
		return "system-flatpak"
	case SourceSystem:
		return "system"
	case SourceLocalDesktop:
		return "local-desktop"
	case SourceLocalFlatpak:
		return "local-flatpak"
	case SourceLocal:
		return "local"
	case SourceExtra:
		return "extra"
	default:
		return fmt.Sprintf("source(%d)", int(p))
	}
}

// Source is a directory searched for .desktop files.
type Source struct {
	Kind PathSource
	Dir  string
}

// ErrNoHomeDir is returned when the user's home directory cannot be
// resolved. User sources depend on it, so the catalog cannot be built.
var ErrNoHomeDir = errors.New("unable to resolve home directory")

var homeDirFn = homedir.Dir

const desktopSuffix = ".desktop"

// DefaultSources lists the system and per-user application directories in
// ascending priority.
func DefaultSources(home string) []Source {
	return []Source{
		{Kind: SourceSystemSnap, Dir: "/var/lib/snapd/desktop/applications"},
		{Kind: SourceSystemFlatpak, Dir: "/var/lib/flatpak/exports/share/applications"},
		{Kind: SourceSystem, Dir: "/usr/share/applications"},
		{Kind: SourceLocalDesktop, Dir: filepath.Join(home, "Desktop")},
		{Kind: SourceLocalFlatpak, Dir: filepath.Join(home, ".local/share/flatpak/exports/share/applications")},
		{Kind: SourceLocal, Dir: filepath.Join(home, ".local/share/applications")},
	}
}

// ResolveSources returns DefaultSources for the current user followed by the
// extra directories, which rank above everything else. A leading "~" in an
// extra directory is expanded.
func ResolveSources(extra []string) ([]Source, error) {
	home, err := homeDirFn()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}
	if strings.TrimSpace(home) == "" {
		return nil, ErrNoHomeDir
	}
	sources := DefaultSources(home)
	for _, dir := range extra {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		if expanded, err := homedir.Expand(dir); err == nil {
			dir = expanded
		}
		sources = append(sources, Source{Kind: SourceExtra, Dir: dir})
	}
	return sources, nil
}

// ReadSource walks src.Dir recursively and parses every *.desktop file it
// finds. Missing directories yield no records; unreadable or malformed files
// are skipped.
func ReadSource(src Source) []Record {
	var records []Record
	_ = filepath.WalkDir(src.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				events.Catalog.Skip(path, events.SkipUnreadable, err)
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), desktopSuffix) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			events.Catalog.Skip(path, events.SkipUnreadable, err)
			return nil
		}
		rec, err := ParseRecord(appID(src.Dir, path), data)
		if err != nil {
			reason := events.SkipUnparsable
			if errors.Is(err, ErrNoDesktopEntry) {
				reason = events.SkipNoGroup
			}
			events.Catalog.Skip(path, reason, err)
			return nil
		}
		rec.Path = path
		records = append(records, rec)
		return nil
	})
	return records
}

// appID derives the desktop file id: the path relative to the source
// directory with separators turned into dashes and the suffix dropped.
func appID(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = strings.TrimSuffix(rel, desktopSuffix)
	return strings.ReplaceAll(rel, string(filepath.Separator), "-")
}
