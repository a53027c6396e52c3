package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/popup-launcher/internal/ui/state"
	"github.com/stretchr/testify/require"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	require.Equal(t, state.DefaultPageSize, cfg.App.PageSize)
	require.Equal(t, "Applications", cfg.App.Title)
	require.Equal(t, "Search", cfg.App.Placeholder)
	require.Equal(t, state.MatchSubstring, cfg.App.Match)
	require.Empty(t, cfg.App.Dirs)
	require.Equal(t, "popup-launcher.log", cfg.Logging.FilePath)
	require.False(t, cfg.Logging.Trace)
	require.Empty(t, cfg.File)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		envPageSize + "=5",
		envMatch + "=fuzzy",
		envTitle + "=From Env",
		envTrace + "=true",
	}
	cfg, err := LoadArgs([]string{"-page-size", "9", "-title", "Run"}, env)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.App.PageSize)
	require.Equal(t, "Run", cfg.App.Title)
	require.Equal(t, state.MatchFuzzy, cfg.App.Match)
	require.True(t, cfg.Logging.Trace)
	require.Equal(t, "9", cfg.Flags["pageSize"])
	require.Equal(t, []string{"-page-size", "9", "-title", "Run"}, cfg.Args)
}

func TestLoadArgsDirs(t *testing.T) {
	cfg, err := LoadArgs([]string{"-dirs", "/opt/a::/opt/b"}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"/opt/a", "/opt/b"}, cfg.App.Dirs)
}

func TestLoadArgsRejectsBadValues(t *testing.T) {
	_, err := LoadArgs([]string{"-width", "-1"}, nil)
	require.Error(t, err)
	_, err = LoadArgs([]string{"-match", "regex"}, nil)
	require.Error(t, err)
	_, err = LoadArgs([]string{"-unknown"}, nil)
	require.Error(t, err)
}

func TestValidatePageSize(t *testing.T) {
	cfg, err := LoadArgs([]string{"-page-size", "0"}, nil)
	require.NoError(t, err)
	require.Error(t, Validate(cfg))
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadArgsExplicitConfigFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "launcher.yaml", "page_size: 4\ntitle: From File\nfooter: true\ndirs:\n  - /opt/x\n  - /opt/y\n")
	cfg, err := LoadArgs([]string{"-config", path}, []string{envTitle + "=From Env"})
	require.NoError(t, err)
	require.Equal(t, 4, cfg.App.PageSize)
	require.Equal(t, "From Env", cfg.App.Title)
	require.True(t, cfg.App.ShowFooter)
	require.Equal(t, []string{"/opt/x", "/opt/y"}, cfg.App.Dirs)
	require.Equal(t, path, cfg.File)
}

func TestLoadArgsConfigFromEnv(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "launcher.toml", "match = \"fold\"\ndirs = \"/opt/a:/opt/b\"\n")
	cfg, err := LoadArgs([]string{"-config=" + path}, nil)
	require.NoError(t, err)
	require.Equal(t, state.MatchFold, cfg.App.Match)
	require.Equal(t, []string{"/opt/a", "/opt/b"}, cfg.App.Dirs)

	cfg, err = LoadArgs(nil, []string{envConfig + "=" + path})
	require.NoError(t, err)
	require.Equal(t, state.MatchFold, cfg.App.Match)
}

func TestLoadArgsDefaultConfigLocation(t *testing.T) {
	xdg := t.TempDir()
	writeConfig(t, xdg, filepath.Join("popup-launcher", "config.json"), `{"placeholder": "Run…", "width": 60}`)
	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + xdg})
	require.NoError(t, err)
	require.Equal(t, "Run…", cfg.App.Placeholder)
	require.Equal(t, 60, cfg.App.Width)

	cfg, err = LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + t.TempDir()})
	require.NoError(t, err)
	require.Empty(t, cfg.File)
}

func TestLoadArgsMissingExplicitConfig(t *testing.T) {
	_, err := LoadArgs([]string{"-config", filepath.Join(t.TempDir(), "absent.yaml")}, nil)
	require.Error(t, err)
}

func TestConfigPathFromArgs(t *testing.T) {
	require.Equal(t, "a.yaml", configPathFromArgs([]string{"--config", "a.yaml"}, "env.yaml"))
	require.Equal(t, "b.yaml", configPathFromArgs([]string{"-trace", "-config=b.yaml"}, ""))
	require.Equal(t, "env.yaml", configPathFromArgs([]string{"--", "-config", "c.yaml"}, "env.yaml"))
}
