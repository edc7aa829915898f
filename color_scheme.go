package ask

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/ask/style"
)

// ColorScheme maps style regions to colors for the terminal renderer.
type ColorScheme struct {
	Name        string `yaml:"name" json:"name"`
	Query       Color  `yaml:"query" json:"query"`
	Answer      Color  `yaml:"answer" json:"answer"`
	Input       Color  `yaml:"input" json:"input"`
	Placeholder Color  `yaml:"placeholder" json:"placeholder"`
	Option      Color  `yaml:"option" json:"option"`
	Focused     Color  `yaml:"focused" json:"focused"`
	Selected    Color  `yaml:"selected" json:"selected"`
	Disabled    Color  `yaml:"disabled" json:"disabled"`
	Error       Color  `yaml:"error" json:"error"`
	Page        Color  `yaml:"page" json:"page"`
	Message     Color  `yaml:"message" json:"message"`
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `yaml:"r" json:"r"`
	G    uint8 `yaml:"g" json:"g"`
	B    uint8 `yaml:"b" json:"b"`
	Bold bool  `yaml:"bold" json:"bold"`
	Dim  bool  `yaml:"dim" json:"dim"`
}

// ThemeDefault is the default color scheme with a green question mark and
// cyan highlights.
var ThemeDefault = &ColorScheme{
	Name:        "default",
	Query:       Color{R: 0, G: 255, B: 0, Bold: true},
	Answer:      Color{R: 0, G: 255, B: 255},
	Input:       Color{R: 255, G: 255, B: 255, Bold: true},
	Placeholder: Color{R: 128, G: 128, B: 128, Dim: true},
	Option:      Color{R: 200, G: 200, B: 200},
	Focused:     Color{R: 0, G: 255, B: 255, Bold: true},
	Selected:    Color{R: 0, G: 255, B: 0},
	Disabled:    Color{R: 100, G: 100, B: 100, Dim: true},
	Error:       Color{R: 255, G: 85, B: 85, Bold: true},
	Page:        Color{R: 128, G: 128, B: 128},
	Message:     Color{R: 255, G: 255, B: 255, Bold: true},
}

// ThemeDark is a dark theme with light blue questions and off-white text
var ThemeDark = &ColorScheme{
	Name:        "Dark",
	Query:       Color{R: 102, G: 217, B: 239, Bold: true},
	Answer:      Color{R: 80, G: 250, B: 123},
	Input:       Color{R: 248, G: 248, B: 242},
	Placeholder: Color{R: 98, G: 114, B: 164},
	Option:      Color{R: 189, G: 147, B: 249},
	Focused:     Color{R: 255, G: 184, B: 108, Bold: true},
	Selected:    Color{R: 80, G: 250, B: 123, Bold: true},
	Disabled:    Color{R: 68, G: 71, B: 90},
	Error:       Color{R: 255, G: 85, B: 85, Bold: true},
	Page:        Color{R: 98, G: 114, B: 164},
	Message:     Color{R: 248, G: 248, B: 242, Bold: true},
}

// ThemeLight is a light theme with blue questions and dark gray text
var ThemeLight = &ColorScheme{
	Name:        "Light",
	Query:       Color{R: 0, G: 119, B: 187, Bold: true},
	Answer:      Color{R: 40, G: 167, B: 69},
	Input:       Color{R: 36, G: 41, B: 46},
	Placeholder: Color{R: 149, G: 157, B: 165},
	Option:      Color{R: 88, G: 96, B: 105},
	Focused:     Color{R: 215, G: 58, B: 73, Bold: true},
	Selected:    Color{R: 40, G: 167, B: 69, Bold: true},
	Disabled:    Color{R: 200, G: 200, B: 200},
	Error:       Color{R: 203, G: 36, B: 49, Bold: true},
	Page:        Color{R: 149, G: 157, B: 165},
	Message:     Color{R: 36, G: 41, B: 46, Bold: true},
}

// ThemeDracula is the Dracula color scheme
var ThemeDracula = &ColorScheme{
	Name:        "Dracula",
	Query:       Color{R: 255, G: 121, B: 198, Bold: true},
	Answer:      Color{R: 80, G: 250, B: 123},
	Input:       Color{R: 248, G: 248, B: 242},
	Placeholder: Color{R: 98, G: 114, B: 164},
	Option:      Color{R: 139, G: 233, B: 253},
	Focused:     Color{R: 241, G: 250, B: 140, Bold: true},
	Selected:    Color{R: 80, G: 250, B: 123, Bold: true},
	Disabled:    Color{R: 68, G: 71, B: 90},
	Error:       Color{R: 255, G: 85, B: 85, Bold: true},
	Page:        Color{R: 98, G: 114, B: 164},
	Message:     Color{R: 248, G: 248, B: 242, Bold: true},
}

// ThemeMonokai is the Monokai color scheme
var ThemeMonokai = &ColorScheme{
	Name:        "Monokai",
	Query:       Color{R: 249, G: 38, B: 114, Bold: true},
	Answer:      Color{R: 166, G: 226, B: 46},
	Input:       Color{R: 248, G: 248, B: 242},
	Placeholder: Color{R: 117, G: 113, B: 94},
	Option:      Color{R: 166, G: 226, B: 46},
	Focused:     Color{R: 253, G: 151, B: 31, Bold: true},
	Selected:    Color{R: 102, G: 217, B: 239, Bold: true},
	Disabled:    Color{R: 73, G: 72, B: 62},
	Error:       Color{R: 249, G: 38, B: 114, Bold: true},
	Page:        Color{R: 117, G: 113, B: 94},
	Message:     Color{R: 248, G: 248, B: 242, Bold: true},
}

// Themes lists the built-in color schemes by name.
var Themes = map[string]*ColorScheme{
	"default": ThemeDefault,
	"dark":    ThemeDark,
	"light":   ThemeLight,
	"dracula": ThemeDracula,
	"monokai": ThemeMonokai,
}

// LoadColorScheme reads a color scheme from a YAML (or JSON) file. Colors
// missing from the file keep the values of ThemeDefault.
func LoadColorScheme(path string) (*ColorScheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read color scheme: %w", err)
	}
	return ParseColorScheme(data)
}

// ParseColorScheme decodes a YAML (or JSON) color scheme.
func ParseColorScheme(data []byte) (*ColorScheme, error) {
	scheme := *ThemeDefault
	if err := yaml.Unmarshal(data, &scheme); err != nil {
		return nil, fmt.Errorf("failed to parse color scheme: %w", err)
	}
	return &scheme, nil
}

// colorFor returns the color of region r.
func (s *ColorScheme) colorFor(r style.Region) Color {
	switch r.Kind {
	case style.KindQuery:
		return s.Query
	case style.KindToggle:
		if r.Selected {
			return s.Focused
		}
		return s.Option
	case style.KindAnswer, style.KindList, style.KindListItem:
		return s.Answer
	case style.KindInput:
		return s.Input
	case style.KindPlaceholder:
		return s.Placeholder
	case style.KindOption, style.KindOptionExclusive:
		switch {
		case r.Flags.Has(style.Disabled):
			return s.Disabled
		case r.Flags.Has(style.Focused):
			return s.Focused
		case r.Flags.Has(style.Selected):
			return s.Selected
		}
		return s.Option
	case style.KindValidator:
		if r.Valid {
			return s.Answer
		}
		return s.Error
	case style.KindPage:
		return s.Page
	case style.KindMessage:
		return s.Message
	}
	return s.Input
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	if c.Bold {
		codes = append(codes, "1")
	}
	if c.Dim {
		codes = append(codes, "2")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
