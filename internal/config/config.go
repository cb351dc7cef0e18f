// Package config defines the formatting configuration consumed by the
// engine and the resolver collaborator that produces it.
package config

// IndentStyle selects tabs or spaces for indentation.
type IndentStyle string

const (
	IndentTabs   IndentStyle = "tabs"
	IndentSpaces IndentStyle = "spaces"
)

// LineEndings selects the line terminator the engine emits.
type LineEndings string

const (
	LineEndingsUnix    LineEndings = "unix"
	LineEndingsWindows LineEndings = "windows"
)

// Config is the effective formatting configuration for one document.
type Config struct {
	ColumnWidth int
	LineEndings LineEndings
	IndentWidth int
	IndentStyle IndentStyle
}

// Default returns the configuration used when no project configuration
// applies.
func Default() Config {
	return Config{
		ColumnWidth: 120,
		LineEndings: LineEndingsUnix,
		IndentWidth: 4,
		IndentStyle: IndentTabs,
	}
}

// Resolver loads the project configuration that applies to a file.
// Discovery and parsing of configuration files happens behind this
// interface; the server only consumes the result.
type Resolver interface {
	Resolve(path string) (Config, error)
}

// Static resolves every path to the same configuration.
type Static struct {
	Config Config
}

func (s Static) Resolve(string) (Config, error) {
	return s.Config, nil
}
