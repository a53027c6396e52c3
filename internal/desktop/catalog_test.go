package desktop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func recordsBySource(m map[PathSource][]Record) func(Source) []Record {
	return func(src Source) []Record { return m[src.Kind] }
}

func TestBuildWithLaterSourceOverridesLabel(t *testing.T) {
	read := recordsBySource(map[PathSource][]Record{
		SourceSystem: {{AppID: "firefox", Name: "Firefox", Exec: "/usr/bin/firefox %u"}},
		SourceLocal:  {{AppID: "firefox", Name: "Firefox", Exec: "/home/u/bin/firefox"}},
	})
	// listed out of priority order on purpose
	sources := []Source{{Kind: SourceLocal}, {Kind: SourceSystem}}

	cat := BuildWith(sources, read)
	require.Equal(t, 1, cat.Len())
	entry, ok := cat.Lookup("Firefox")
	require.True(t, ok)
	require.Equal(t, "/home/u/bin/firefox", entry.CommandLine)
}

func TestBuildWithFallsBackToAppID(t *testing.T) {
	read := recordsBySource(map[PathSource][]Record{
		SourceSystem: {{AppID: "org.gnome.Nautilus", Exec: "nautilus"}},
	})
	cat := BuildWith([]Source{{Kind: SourceSystem}}, read)
	require.Equal(t, "org.gnome.Nautilus", cat.Label(0))
}

func TestBuildWithSkipsRecordsWithoutExec(t *testing.T) {
	read := recordsBySource(map[PathSource][]Record{
		SourceSystem: {
			{AppID: "a", Name: "Alpha"},
			{AppID: "b", Name: "Beta", Exec: "beta"},
		},
	})
	cat := BuildWith([]Source{{Kind: SourceSystem}}, read)
	require.Equal(t, []Entry{{Label: "Beta", CommandLine: "beta"}}, cat.Entries())
}

func TestBuildWithStripsFieldCodes(t *testing.T) {
	read := recordsBySource(map[PathSource][]Record{
		SourceSystem: {{AppID: "firefox", Name: "Firefox", Exec: "firefox %u --new-window"}},
	})
	cat := BuildWith([]Source{{Kind: SourceSystem}}, read)
	entry, ok := cat.Entry(0)
	require.True(t, ok)
	require.Equal(t, "firefox  --new-window", entry.CommandLine)
}

func TestNewCatalogKeepsFirstPosition(t *testing.T) {
	cat := NewCatalog(
		Entry{Label: "A", CommandLine: "a1"},
		Entry{Label: "B", CommandLine: "b"},
		Entry{Label: "A", CommandLine: "a2"},
	)
	require.Equal(t, 2, cat.Len())
	require.Equal(t, []Entry{
		{Label: "A", CommandLine: "a2"},
		{Label: "B", CommandLine: "b"},
	}, cat.Entries())
}

func TestCatalogOutOfRange(t *testing.T) {
	cat := NewCatalog(Entry{Label: "A", CommandLine: "a"})
	_, ok := cat.Entry(3)
	require.False(t, ok)
	require.Equal(t, "", cat.Label(-1))

	var nilCat *Catalog
	require.Zero(t, nilCat.Len())
	require.Nil(t, nilCat.Entries())
}

func TestEntriesReturnsCopy(t *testing.T) {
	cat := NewCatalog(Entry{Label: "A", CommandLine: "a"})
	entries := cat.Entries()
	entries[0].Label = "mutated"
	require.Equal(t, "A", cat.Label(0))
}
