package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/popup-launcher/internal/app"
	"github.com/atomicstack/popup-launcher/internal/ui/state"
	"github.com/fatih/color"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig      = "POPUP_LAUNCHER_CONFIG"
	envPageSize    = "POPUP_LAUNCHER_PAGE_SIZE"
	envPlaceholder = "POPUP_LAUNCHER_PLACEHOLDER"
	envTitle       = "POPUP_LAUNCHER_TITLE"
	envMatch       = "POPUP_LAUNCHER_MATCH"
	envDirs        = "POPUP_LAUNCHER_DIRS"
	envWidth       = "POPUP_LAUNCHER_WIDTH"
	envHeight      = "POPUP_LAUNCHER_HEIGHT"
	envShowFooter  = "POPUP_LAUNCHER_FOOTER"
	envDryRun      = "POPUP_LAUNCHER_DRY_RUN"
	envTrace       = "POPUP_LAUNCHER_TRACE"
	envLogFile     = "POPUP_LAUNCHER_LOG_FILE"
)

const (
	appName            = "popup-launcher"
	defaultTitle       = "Applications"
	defaultPlaceholder = "Search"
	defaultLogFile     = "popup-launcher.log"
)

// Load parses configuration from CLI arguments, environment variables, and
// the optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// in order flag, environment, config file, built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	file, err := loadFile(configPathFromArgs(args, envOrDefault(env, envConfig, "")), env)
	if err != nil {
		return Config{}, err
	}
	fileUsed := ""
	if file != nil {
		fileUsed = file.ConfigFileUsed()
	}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", fileUsed, "path to a YAML, TOML or JSON config file")
	pageSize := fs.Int("page-size", envOrInt(env, envPageSize, fileOrInt(file, "page_size", state.DefaultPageSize)), "number of entries shown per page")
	placeholder := fs.String("placeholder", envOrDefault(env, envPlaceholder, fileOrString(file, "placeholder", defaultPlaceholder)), "prompt text shown before typing")
	title := fs.String("title", envOrDefault(env, envTitle, fileOrString(file, "title", defaultTitle)), "title shown above the list")
	match := fs.String("match", envOrDefault(env, envMatch, fileOrString(file, "match", string(state.MatchSubstring))), "filter mode: substring, fold or fuzzy")
	dirs := fs.String("dirs", envOrDefault(env, envDirs, fileDirs(file)), "extra application directories, separated by "+string(os.PathListSeparator))
	width := fs.Int("width", envOrInt(env, envWidth, fileOrInt(file, "width", 0)), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, fileOrInt(file, "height", 0)), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, fileOrBool(file, "footer", false)), "enable footer key help (disabled by default)")
	list := fs.Bool("list", false, "print the application catalog and exit")
	dryRun := fs.Bool("dry-run", envOrBool(env, envDryRun, fileOrBool(file, "dry_run", false)), "print the selected command instead of running it")
	trace := fs.Bool("trace", envOrBool(env, envTrace, fileOrBool(file, "trace", false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, fileOrString(file, "log_file", defaultLogFile)), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	mode, err := state.ParseMatchMode(*match)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Title:       *title,
			Placeholder: *placeholder,
			PageSize:    *pageSize,
			Match:       mode,
			Dirs:        splitDirs(*dirs),
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			List:        *list,
			DryRun:      *dryRun,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: fileUsed,
		Flags: map[string]string{
			"config":      fileUsed,
			"pageSize":    strconv.Itoa(*pageSize),
			"placeholder": *placeholder,
			"title":       *title,
			"match":       string(mode),
			"dirs":        *dirs,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"list":        strconv.FormatBool(*list),
			"dryRun":      strconv.FormatBool(*dryRun),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configPathFromArgs finds -config ahead of flag parsing, since the file
// supplies the defaults of every other flag.
func configPathFromArgs(args []string, fallback string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return fallback
}

// loadFile reads an explicit config file, or the default one under the XDG
// config directory when present. A missing default file is not an error.
func loadFile(path string, env map[string]string) (*viper.Viper, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return v, nil
	}
	dir := configDir(env)
	if dir == "" {
		return nil, nil
	}
	v.SetConfigName("config")
	v.AddConfigPath(filepath.Join(dir, appName))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func configDir(env map[string]string) string {
	if dir := strings.TrimSpace(env["XDG_CONFIG_HOME"]); dir != "" {
		return dir
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".config")
	}
	return ""
}

func fileOrString(v *viper.Viper, key, fallback string) string {
	if v == nil || !v.IsSet(key) {
		return fallback
	}
	return v.GetString(key)
}

func fileOrInt(v *viper.Viper, key string, fallback int) int {
	if v == nil || !v.IsSet(key) {
		return fallback
	}
	return v.GetInt(key)
}

func fileOrBool(v *viper.Viper, key string, fallback bool) bool {
	if v == nil || !v.IsSet(key) {
		return fallback
	}
	return v.GetBool(key)
}

// fileDirs accepts either a list or a single separator-joined string.
func fileDirs(v *viper.Viper) string {
	if v == nil || !v.IsSet("dirs") {
		return ""
	}
	if raw, ok := v.Get("dirs").(string); ok {
		return raw
	}
	return strings.Join(v.GetStringSlice("dirs"), string(os.PathListSeparator))
}

func splitDirs(value string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(value) {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		Fail(err)
	}
	return cfg
}

// Fail reports a configuration error and exits with status 2.
func Fail(err error) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Configuration error: %v\n", err)
	os.Exit(2)
}

// Validate ensures the loaded values are usable.
func Validate(cfg Config) error {
	if cfg.App.PageSize < 1 {
		return fmt.Errorf("page size must be >= 1 (got %d)", cfg.App.PageSize)
	}
	if cfg.App.Width < 0 || cfg.App.Height < 0 {
		return fmt.Errorf("width and height must be >= 0 (got %dx%d)", cfg.App.Width, cfg.App.Height)
	}
	if _, err := state.ParseMatchMode(string(cfg.App.Match)); err != nil {
		return err
	}
	return nil
}
