package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ideatracker/pkg/keymaps"
	"ideatracker/pkg/undo"
)

// EnvPrefix is the prefix for environment overrides, e.g. IDEATRACKER_UNDO_WINDOW
const EnvPrefix = "IDEATRACKER"

// Config holds the application configuration
type Config struct {
	KeyMap       map[string]string `mapstructure:"keymap"`
	StylesFile   string            `mapstructure:"styles_file"`
	UndoWindow   time.Duration     `mapstructure:"undo_window"`
	SeedSamples  bool              `mapstructure:"seed_samples"`
	ExportDir    string            `mapstructure:"export_dir"`
	ExportFormat string            `mapstructure:"export_format"`
	LogFile      string            `mapstructure:"log_file"`
	Verbose      bool              `mapstructure:"verbose"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `mapstructure:"border_color"`
	AccentColor string `mapstructure:"accent_color"`

	// Text colors
	NormalTextColor   string `mapstructure:"normal_text_color"`
	MutedTextColor    string `mapstructure:"muted_text_color"`
	SelectedTextColor string `mapstructure:"selected_text_color"`
	SelectedBgColor   string `mapstructure:"selected_bg_color"`
	ErrorColor        string `mapstructure:"error_color"`
	SuccessColor      string `mapstructure:"success_color"`

	// Badge colors
	HighPriorityColor   string `mapstructure:"high_priority_color"`
	MediumPriorityColor string `mapstructure:"medium_priority_color"`
	LowPriorityColor    string `mapstructure:"low_priority_color"`
	PendingColor        string `mapstructure:"pending_color"`
	ActiveColor         string `mapstructure:"active_color"`
	CompletedColor      string `mapstructure:"completed_color"`
	CategoryColor       string `mapstructure:"category_color"`
}

// DefaultStyles returns the built-in color scheme
func DefaultStyles() Styles {
	return Styles{
		BorderColor:         "240",
		AccentColor:         "205",
		NormalTextColor:     "86",
		MutedTextColor:      "245",
		SelectedTextColor:   "229",
		SelectedBgColor:     "57",
		ErrorColor:          "9",
		SuccessColor:        "2",
		HighPriorityColor:   "9",
		MediumPriorityColor: "11",
		LowPriorityColor:    "10",
		PendingColor:        "245",
		ActiveColor:         "12",
		CompletedColor:      "2",
		CategoryColor:       "13",
	}
}

// DefaultDir returns the directory holding config.json and styles.json
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "ideatracker"), nil
}

// Load reads the configuration at configPath into v, writing a default file
// if none exists. An empty configPath means DefaultDir()/config.json. Flags
// already bound to v take precedence over the file.
func Load(v *viper.Viper, configPath string) (Config, Styles, error) {
	if configPath == "" {
		dir, err := DefaultDir()
		if err != nil {
			return Config{}, Styles{}, err
		}
		configPath = filepath.Join(dir, "config.json")
	}
	configDir := filepath.Dir(configPath)

	setDefaults(v, configDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(configPath)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if !isNotExist(err) {
			return Config{}, Styles{}, fmt.Errorf("reading config %s: %w", configPath, err)
		}
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return Config{}, Styles{}, err
		}
		// Written from a fresh instance so flag and env overrides stay out of the file
		dv := viper.New()
		setDefaults(dv, configDir)
		if err := dv.WriteConfigAs(configPath); err != nil {
			return Config{}, Styles{}, fmt.Errorf("writing default config: %w", err)
		}
	}

	cfg := Config{
		KeyMap:       v.GetStringMapString("keymap"),
		StylesFile:   v.GetString("styles_file"),
		UndoWindow:   v.GetDuration("undo_window"),
		SeedSamples:  v.GetBool("seed_samples"),
		ExportDir:    v.GetString("export_dir"),
		ExportFormat: v.GetString("export_format"),
		LogFile:      v.GetString("log_file"),
		Verbose:      v.GetBool("verbose"),
	}
	if cfg.UndoWindow <= 0 {
		cfg.UndoWindow = undo.DefaultWindow
	}

	styles, err := loadStyles(cfg.StylesFile)
	if err != nil {
		return cfg, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return cfg, styles, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("keymap", keymaps.GetDefaultKeyMappings())
	v.SetDefault("styles_file", filepath.Join(configDir, "styles.json"))
	v.SetDefault("undo_window", undo.DefaultWindow.String())
	v.SetDefault("seed_samples", true)
	v.SetDefault("export_dir", ".")
	v.SetDefault("export_format", "json")
	v.SetDefault("log_file", "")
	v.SetDefault("verbose", false)
}

// loadStyles loads the styles file, creating it with defaults when missing.
// Colors absent from the file keep their defaults.
func loadStyles(stylesPath string) (Styles, error) {
	defaults := DefaultStyles()

	sv := viper.New()
	for k, val := range styleDefaults(defaults) {
		sv.SetDefault(k, val)
	}
	sv.SetConfigFile(stylesPath)
	sv.SetConfigType("json")

	if err := sv.ReadInConfig(); err != nil {
		if !isNotExist(err) {
			return defaults, err
		}
		if err := os.MkdirAll(filepath.Dir(stylesPath), 0755); err != nil {
			return defaults, err
		}
		if err := sv.WriteConfigAs(stylesPath); err != nil {
			return defaults, err
		}
		return defaults, nil
	}

	var styles Styles
	if err := sv.Unmarshal(&styles); err != nil {
		return defaults, err
	}
	return styles, nil
}

func styleDefaults(s Styles) map[string]string {
	return map[string]string{
		"border_color":          s.BorderColor,
		"accent_color":          s.AccentColor,
		"normal_text_color":     s.NormalTextColor,
		"muted_text_color":      s.MutedTextColor,
		"selected_text_color":   s.SelectedTextColor,
		"selected_bg_color":     s.SelectedBgColor,
		"error_color":           s.ErrorColor,
		"success_color":         s.SuccessColor,
		"high_priority_color":   s.HighPriorityColor,
		"medium_priority_color": s.MediumPriorityColor,
		"low_priority_color":    s.LowPriorityColor,
		"pending_color":         s.PendingColor,
		"active_color":          s.ActiveColor,
		"completed_color":       s.CompletedColor,
		"category_color":        s.CategoryColor,
	}
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}
