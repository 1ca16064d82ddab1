package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithInteractive selects the terminal board.
func (b *ConfigBuilder) WithInteractive(enabled bool) *ConfigBuilder {
	b.cfg.Interactive = enabled
	return b
}

// WithUnicode enables chess glyphs in board rendering.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithCoordinates controls rank and file labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowCoordinates = enabled
	return b
}

// WithBoardEachMove controls printing the board after every move.
func (b *ConfigBuilder) WithBoardEachMove(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoardEachMove = enabled
	return b
}

// WithJSONSummary enables the JSON summary at the end of the game.
func (b *ConfigBuilder) WithJSONSummary(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONSummary = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
