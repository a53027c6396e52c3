package desktop

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

const desktopEntryGroup = "Desktop Entry"

// ErrNoDesktopEntry marks files that parse but carry no [Desktop Entry] group.
var ErrNoDesktopEntry = errors.New("missing [Desktop Entry] group")

// Record is the subset of a desktop entry the catalog needs. Empty Name or
// Exec means the key was absent or blank.
type Record struct {
	AppID string
	Name  string
	Exec  string
	Path  string
}

var parseOptions = ini.LoadOptions{
	KeyValueDelimiters:      "=",
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

// ParseRecord decodes a desktop file. Only the unlocalized Name and the Exec
// key of the [Desktop Entry] group are read.
func ParseRecord(appID string, data []byte) (Record, error) {
	file, err := ini.LoadSources(parseOptions, data)
	if err != nil {
		return Record{}, fmt.Errorf("parse %s: %w", appID, err)
	}
	section, err := file.GetSection(desktopEntryGroup)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", appID, ErrNoDesktopEntry)
	}
	rec := Record{AppID: appID}
	if section.HasKey("Name") {
		rec.Name = strings.TrimSpace(section.Key("Name").String())
	}
	if section.HasKey("Exec") {
		rec.Exec = strings.TrimSpace(section.Key("Exec").String())
	}
	return rec, nil
}

// Label is the display name, or the application id when no name is set.
func (r Record) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.AppID
}
