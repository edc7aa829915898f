package ask

import (
	"log/slog"
	"os"

	"github.com/nao1215/ask/style"
)

// exitCodeCancel is the conventional exit status of a process stopped by
// SIGINT.
const exitCodeCancel = 130

// Config holds the settings of a Terminal.
type Config struct {
	ColorScheme  *ColorScheme
	Symbols      style.Symbols
	KeyMap       *KeyMap
	Logger       *slog.Logger
	Input        *os.File // nil opens the controlling terminal
	Output       *os.File // nil writes to os.Stdout
	NoColor      bool
	ExitOnCancel bool
	ExitCode     int
}

// Option configures a Terminal.
type Option func(*Config)

// defaultConfig returns the settings used when no option is given.
func defaultConfig() Config {
	return Config{
		ColorScheme: ThemeDefault,
		Symbols:     style.DefaultSymbols(),
		KeyMap:      NewDefaultKeyMap(),
		Logger:      defaultLogger(),
		ExitCode:    exitCodeCancel,
	}
}

// defaultLogger reports warnings, such as a failure to leave raw mode, on
// stderr.
func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// WithColorScheme sets the colors of the regions.
func WithColorScheme(scheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = scheme
	}
}

// WithSymbols sets the decorations written around regions.
func WithSymbols(symbols style.Symbols) Option {
	return func(c *Config) {
		c.Symbols = symbols
	}
}

// WithKeyMap replaces the key bindings.
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithLogger sets the logger. Decoded keys and draw phases are logged at
// debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithTTY reads keys from in and draws on out instead of the controlling
// terminal.
func WithTTY(in, out *os.File) Option {
	return func(c *Config) {
		c.Input = in
		c.Output = out
	}
}

// WithNoColor disables colors. Colors are also disabled when the output is
// not a terminal or NO_COLOR is set.
func WithNoColor() Option {
	return func(c *Config) {
		c.NoColor = true
	}
}

// WithExitOnCancel makes a cancelled prompt restore the terminal and exit
// the process with code instead of returning ErrCancel.
func WithExitOnCancel(code int) Option {
	return func(c *Config) {
		c.ExitOnCancel = true
		c.ExitCode = code
	}
}
