package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// GameSummary is the JSON form of a game for collaborators.
type GameSummary struct {
	Moves     []JSONMove `json:"moves"`
	Result    string     `json:"result"`
	State     string     `json:"state"`
	Method    string     `json:"method,omitempty"`
	TurnCount int        `json:"turnCount"`
	ToMove    string     `json:"toMove"`
	InCheck   bool       `json:"inCheck"`
	FinalFEN  string     `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	UCI       string `json:"uci"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castle    string `json:"castle,omitempty"`
}

// Summarize converts a game to its summary.
func Summarize(g *engine.Game) *GameSummary {
	moves := g.Moves()
	s := &GameSummary{
		Moves:     make([]JSONMove, len(moves)),
		Result:    g.State().Result(),
		State:     g.State().String(),
		TurnCount: g.TurnCount(),
		ToMove:    g.ToMove().String(),
		InCheck:   g.IsCurrentPlayerInCheck(),
		FinalFEN:  g.FEN(),
	}
	if g.Method() != engine.NoMethod {
		s.Method = g.Method().String()
	}

	// Sides alternate, so the first mover follows from the parity of the log.
	colour := g.ToMove()
	if len(moves)%2 == 1 {
		colour = colour.Opposite()
	}
	for i, m := range moves {
		s.Moves[i] = convertMove(i+1, colour, m)
		colour = colour.Opposite()
	}
	return s
}

func convertMove(ply int, colour chess.Colour, notation string) JSONMove {
	jm := JSONMove{Ply: ply, UCI: notation, Color: "black"}
	if colour == chess.White {
		jm.Color = "white"
	}
	if notation == engine.KingsideCastle || notation == engine.QueensideCastle {
		jm.Castle = notation
		return jm
	}
	from, to, promotion, err := engine.ParseMove(notation)
	if err != nil {
		return jm
	}
	jm.From = from.String()
	jm.To = to.String()
	if len(notation) == 5 {
		jm.Promotion = promotion.String()
	}
	return jm
}

// WriteSummaryJSON writes the summary of g as indented JSON.
func WriteSummaryJSON(w io.Writer, g *engine.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Summarize(g))
}
