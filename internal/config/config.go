package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultScreen = "home-screen"
	DefaultTitle  = "避難支援ホーム"
)

type Config struct {
	Navigator NavigatorConfig `mapstructure:"navigator"`
	Screens   []ScreenConfig  `mapstructure:"screens"`
	UI        UIConfig        `mapstructure:"ui"`
	Log       LogConfig       `mapstructure:"log"`
	Keys      KeyBindings     `mapstructure:"keys"`
}

type NavigatorConfig struct {
	DefaultScreen string `mapstructure:"default_screen"`
	DefaultTitle  string `mapstructure:"default_title"`
}

// ScreenConfig adds a screen, or changes the fields it sets on a built-in
// screen with the same id. Menu is nil when the file omits it.
type ScreenConfig struct {
	ID     string `mapstructure:"id"`
	Title  string `mapstructure:"title"`
	Layout string `mapstructure:"layout"`
	Menu   *bool  `mapstructure:"menu"`
	Body   string `mapstructure:"body"`
}

type UIConfig struct {
	Colors       UIColors `mapstructure:"colors"`
	GlamourStyle string   `mapstructure:"glamour_style"`
	MenuWidth    int      `mapstructure:"menu_width"`
	WrapMaxWidth int      `mapstructure:"wrap_max_width"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Surface   string `mapstructure:"surface"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Alert     string `mapstructure:"alert"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type KeyBindings struct {
	Quit   string `mapstructure:"quit"`
	Select string `mapstructure:"select"`
	Focus  string `mapstructure:"focus"`
	Home   string `mapstructure:"home"`
	Help   string `mapstructure:"help"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Navigator: NavigatorConfig{
			DefaultScreen: DefaultScreen,
			DefaultTitle:  DefaultTitle,
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:   "#E4572E",
				Secondary: "#17BEBB",
				Accent:    "#FFC914",
				Surface:   "#1D2D44",
				Text:      "#F0EBD8",
				Muted:     "#8D99AE",
				Alert:     "#D62828",
			},
			GlamourStyle: "dark",
			MenuWidth:    26,
			WrapMaxWidth: 100,
		},
		Log: LogConfig{
			Level: "off",
			File:  filepath.Join(homeDir, ".hinan", "hinan.log"),
		},
		Keys: KeyBindings{
			Quit:   "q",
			Select: "enter",
			Focus:  "tab",
			Home:   "H",
			Help:   "?",
		},
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hinan", "config.toml")
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("navigator.default_screen", cfg.Navigator.DefaultScreen)
	v.SetDefault("navigator.default_title", cfg.Navigator.DefaultTitle)

	v.SetDefault("ui.colors.primary", cfg.UI.Colors.Primary)
	v.SetDefault("ui.colors.secondary", cfg.UI.Colors.Secondary)
	v.SetDefault("ui.colors.accent", cfg.UI.Colors.Accent)
	v.SetDefault("ui.colors.surface", cfg.UI.Colors.Surface)
	v.SetDefault("ui.colors.text", cfg.UI.Colors.Text)
	v.SetDefault("ui.colors.muted", cfg.UI.Colors.Muted)
	v.SetDefault("ui.colors.alert", cfg.UI.Colors.Alert)
	v.SetDefault("ui.glamour_style", cfg.UI.GlamourStyle)
	v.SetDefault("ui.menu_width", cfg.UI.MenuWidth)
	v.SetDefault("ui.wrap_max_width", cfg.UI.WrapMaxWidth)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)

	v.SetDefault("keys.quit", cfg.Keys.Quit)
	v.SetDefault("keys.select", cfg.Keys.Select)
	v.SetDefault("keys.focus", cfg.Keys.Focus)
	v.SetDefault("keys.home", cfg.Keys.Home)
	v.SetDefault("keys.help", cfg.Keys.Help)
}

func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v, defaultConfig())

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("HINAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	config.Log.File = expandPath(config.Log.File)

	return &config, nil
}

// expandPath expands ~ to the home directory and makes the path absolute.
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Plain maps keep the snake_case keys in the written TOML.
	v.Set("navigator", map[string]any{
		"default_screen": config.Navigator.DefaultScreen,
		"default_title":  config.Navigator.DefaultTitle,
	})
	v.Set("ui", map[string]any{
		"colors": map[string]any{
			"primary":   config.UI.Colors.Primary,
			"secondary": config.UI.Colors.Secondary,
			"accent":    config.UI.Colors.Accent,
			"surface":   config.UI.Colors.Surface,
			"text":      config.UI.Colors.Text,
			"muted":     config.UI.Colors.Muted,
			"alert":     config.UI.Colors.Alert,
		},
		"glamour_style":  config.UI.GlamourStyle,
		"menu_width":     config.UI.MenuWidth,
		"wrap_max_width": config.UI.WrapMaxWidth,
	})
	v.Set("log", map[string]any{
		"level": config.Log.Level,
		"file":  config.Log.File,
	})
	v.Set("keys", map[string]any{
		"quit":   config.Keys.Quit,
		"select": config.Keys.Select,
		"focus":  config.Keys.Focus,
		"home":   config.Keys.Home,
		"help":   config.Keys.Help,
	})

	if len(config.Screens) > 0 {
		screens := make([]map[string]any, 0, len(config.Screens))
		for _, s := range config.Screens {
			screen := map[string]any{"id": s.ID}
			for k, val := range map[string]string{"title": s.Title, "layout": s.Layout, "body": s.Body} {
				if val != "" {
					screen[k] = val
				}
			}
			if s.Menu != nil {
				screen["menu"] = *s.Menu
			}
			screens = append(screens, screen)
		}
		v.Set("screens", screens)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
