package config

// OutputConfig holds settings related to board rendering and summaries.
type OutputConfig struct {
	// Unicode draws pieces with chess glyphs instead of letters
	Unicode bool

	// ShowCoordinates prints rank numbers and file letters around the board
	ShowCoordinates bool

	// ShowBoardEachMove prints the board after every move in line mode
	ShowBoardEachMove bool

	// JSONSummary writes a JSON summary of the game when it finishes
	JSONSummary bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowCoordinates:   true,
		ShowBoardEachMove: true,
	}
}
