package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Theme holds a complete syntax color theme.
// This is the format for theme TOML files in ~/.config/minicat/themes/
type Theme struct {
	// Metadata
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Author      string `toml:"author"`

	// Syntax highlighting colors
	Syntax SyntaxColors `toml:"syntax"`
}

// SyntaxColors holds the class-to-color table of a theme. Values are
// hex colors ("#RGB" or "#RRGGBB"); missing entries inherit from the
// default theme.
type SyntaxColors struct {
	Text     string `toml:"text"`
	Keyword  string `toml:"keyword"`
	String   string `toml:"string"`
	Comment  string `toml:"comment"`
	Number   string `toml:"number"`
	Function string `toml:"function"`
	Type     string `toml:"type"`
	Operator string `toml:"operator"`
	Error    string `toml:"error"`
}

// Built-in themes
var builtinThemes = map[string]Theme{
	"monokai": {
		Name:        "monokai",
		Description: "Monokai Extended inspired dark theme",
		Author:      "minicat",
		Syntax: SyntaxColors{
			Text:     "#f8f8f2", // Off white
			Keyword:  "#f92672", // Pink-red
			String:   "#e6db74", // Yellow
			Comment:  "#75715e", // Gray-brown
			Number:   "#ae81ff", // Purple
			Function: "#a6e22e", // Green
			Type:     "#66d9ef", // Light blue
			Operator: "#f92672", // Pink-red
			Error:    "#f83535", // Red
		},
	},
	"dark": {
		Name:        "dark",
		Description: "Modern dark theme with muted colors",
		Author:      "minicat",
		Syntax: SyntaxColors{
			Text:     "#d0d0d0", // Light gray
			Keyword:  "#d787d7", // Purple
			String:   "#87d787", // Green
			Comment:  "#8a8a8a", // Gray
			Number:   "#ffaf5f", // Orange
			Function: "#5fafff", // Light blue
			Type:     "#ffd787", // Yellow
			Operator: "#5fd7d7", // Cyan
			Error:    "#ff5f5f", // Soft red
		},
	},
	"light": {
		Name:        "light",
		Description: "Light theme for bright environments",
		Author:      "minicat",
		Syntax: SyntaxColors{
			Text:     "#262626", // Dark gray
			Keyword:  "#005fd7", // Blue
			String:   "#008700", // Green
			Comment:  "#8a8a8a", // Gray
			Number:   "#d75f00", // Orange
			Function: "#005fd7", // Blue
			Type:     "#008787", // Teal
			Operator: "#870087", // Magenta
			Error:    "#d70000", // Red
		},
	},
}

// DefaultTheme returns the monokai theme, matching the tool's
// traditional default.
func DefaultTheme() Theme {
	return builtinThemes["monokai"]
}

// LoadTheme loads a theme by name
// Checks user themes directory first, then falls back to built-in themes
func LoadTheme(name string) Theme {
	if name == "" {
		return DefaultTheme()
	}

	// Try loading from user themes directory
	theme, err := loadUserTheme(name)
	if err == nil {
		return theme
	}

	// Fall back to built-in theme
	if builtin, ok := builtinThemes[name]; ok {
		return builtin
	}

	// Default if not found
	return DefaultTheme()
}

// ThemesDir returns the user themes directory
func ThemesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "minicat", "themes"), nil
}

// loadUserTheme attempts to load a theme from the user's themes directory
func loadUserTheme(name string) (Theme, error) {
	themesDir, err := ThemesDir()
	if err != nil {
		return Theme{}, err
	}

	themePath := filepath.Join(themesDir, name+".toml")
	if _, err := os.Stat(themePath); os.IsNotExist(err) {
		return Theme{}, err
	}

	var theme Theme
	if _, err := toml.DecodeFile(themePath, &theme); err != nil {
		return Theme{}, err
	}

	// Merge with default theme to fill in any missing values
	return mergeWithDefault(theme), nil
}

// mergeWithDefault fills in any missing theme values with defaults
func mergeWithDefault(theme Theme) Theme {
	def := DefaultTheme()

	if theme.Name == "" {
		theme.Name = def.Name
	}

	if theme.Syntax.Text == "" {
		theme.Syntax.Text = def.Syntax.Text
	}
	if theme.Syntax.Keyword == "" {
		theme.Syntax.Keyword = def.Syntax.Keyword
	}
	if theme.Syntax.String == "" {
		theme.Syntax.String = def.Syntax.String
	}
	if theme.Syntax.Comment == "" {
		theme.Syntax.Comment = def.Syntax.Comment
	}
	if theme.Syntax.Number == "" {
		theme.Syntax.Number = def.Syntax.Number
	}
	if theme.Syntax.Function == "" {
		theme.Syntax.Function = def.Syntax.Function
	}
	if theme.Syntax.Type == "" {
		theme.Syntax.Type = def.Syntax.Type
	}
	if theme.Syntax.Operator == "" {
		theme.Syntax.Operator = def.Syntax.Operator
	}
	if theme.Syntax.Error == "" {
		theme.Syntax.Error = def.Syntax.Error
	}

	return theme
}

// ThemeNames returns the list of built-in theme names
func ThemeNames() []string {
	return []string{"monokai", "dark", "light"}
}

// ListUserThemes returns a list of user-defined theme names
func ListUserThemes() []string {
	themesDir, err := ThemesDir()
	if err != nil {
		return nil
	}

	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil
	}

	var themes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".toml" {
			themes = append(themes, name[:len(name)-5]) // Remove .toml extension
		}
	}
	return themes
}
