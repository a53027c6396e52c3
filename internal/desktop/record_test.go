package desktop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	data := []byte(`[Desktop Entry]
Type=Application
Name=Firefox
Name[de]=Feuerfuchs
Exec=env MOZ_ENABLE_WAYLAND=1 firefox %u
Icon=firefox

[Desktop Action new-window]
Name=New Window
Exec=firefox --new-window %u
`)
	rec, err := ParseRecord("firefox", data)
	require.NoError(t, err)
	require.Equal(t, "firefox", rec.AppID)
	require.Equal(t, "Firefox", rec.Name)
	require.Equal(t, "env MOZ_ENABLE_WAYLAND=1 firefox %u", rec.Exec)
}

func TestParseRecordKeepsQuotesAndHashes(t *testing.T) {
	data := []byte("[Desktop Entry]\nName=Term #2\nExec=\"/opt/my term/run\" --flag\n")
	rec, err := ParseRecord("term", data)
	require.NoError(t, err)
	require.Equal(t, "Term #2", rec.Name)
	require.Equal(t, `"/opt/my term/run" --flag`, rec.Exec)
}

func TestParseRecordMissingGroup(t *testing.T) {
	_, err := ParseRecord("x", []byte("[Something Else]\nName=X\n"))
	require.ErrorIs(t, err, ErrNoDesktopEntry)
}

func TestParseRecordBlankKeysAreAbsent(t *testing.T) {
	rec, err := ParseRecord("blank", []byte("[Desktop Entry]\nName=\nExec=  \n"))
	require.NoError(t, err)
	require.Empty(t, rec.Name)
	require.Empty(t, rec.Exec)
	require.Equal(t, "blank", rec.Label())
}
