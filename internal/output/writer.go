package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// GameWriter writes a finished (or abandoned) game to output.
type GameWriter interface {
	WriteGame(g *engine.Game) error
}

// TextWriter writes the final board, the move list and the result.
type TextWriter struct {
	w    io.Writer
	opts *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, opts *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, opts: opts}
}

// WriteGame writes g as text.
func (tw *TextWriter) WriteGame(g *engine.Game) error {
	if err := WriteBoard(tw.w, g, tw.opts); err != nil {
		return err
	}
	_, err := fmt.Fprintf(tw.w, "%s\n", FormatMoves(g.Moves(), g.State().Result()))
	return err
}

// FormatMoves numbers a move log in pairs, "1. e2e4 e7e5 2. ...", followed by
// the result token.
func FormatMoves(moves []string, result string) string {
	var sb strings.Builder
	for i, m := range moves {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(m)
		sb.WriteByte(' ')
	}
	sb.WriteString(result)
	return sb.String()
}

// JSONWriter writes the game summary as JSON.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame writes g's summary.
func (jw *JSONWriter) WriteGame(g *engine.Game) error {
	return WriteSummaryJSON(jw.w, g)
}

// NewGameWriter picks the writer the configuration asks for.
func NewGameWriter(cfg *config.Config) GameWriter {
	if cfg.Output.JSONSummary {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewTextWriter(cfg.OutputFile, cfg.Output)
}
