package termchess_test

import (
	"testing"

	"termchess/chess"
)

func TestCheckmate_FoolsMate(t *testing.T) {
	// Black just played Qh4#, White to move and is checkmated.
	fen := "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	g, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if !g.InCheck(chess.White) {
		t.Fatalf("expected White to be in check")
	}
	if len(g.LegalMoves()) != 0 {
		t.Fatalf("expected no legal moves for White in mate")
	}
	if got := g.Status(); got != chess.StatusCheckmate {
		t.Fatalf("expected checkmate, got %v", got)
	}
}

func TestStalemate_Basic(t *testing.T) {
	// Black to move with no legal moves and not in check.
	fen := "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	g, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if g.InCheck(chess.Black) {
		t.Fatalf("expected Black not in check")
	}
	if got := g.Status(); got != chess.StatusStalemate {
		t.Fatalf("expected stalemate, got %v", got)
	}
}

// Make the mating move and verify the updated game reports checkmate.
func TestMateInOne_MakeAndDetect(t *testing.T) {
	// White to move: Qxg7# with the c3 bishop protecting g7.
	fen := "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1"
	g, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	m, err := g.ParseMove("g6g7")
	if err != nil {
		t.Fatalf("ParseMove failed: %v", err)
	}
	status, err := g.ApplyMove(m)
	if err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}
	if status != chess.StatusCheckmate {
		t.Fatalf("expected checkmate after Qxg7, got %v", status)
	}
}

func TestDraw_FiftyMoveCounterReaches100(t *testing.T) {
	// Two bare kings shuffle until the half-move counter hits the limit.
	g, err := chess.ParseFEN("4k3/8/8/8/8/8/8/4K2R w - - 96 60")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	shuffle := []string{"h1h2", "e8d8", "h2h1", "d8e8"}
	var status chess.Status
	for _, coord := range shuffle {
		m, err := g.ParseMove(coord)
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", coord, err)
		}
		status, err = g.ApplyMove(m)
		if err != nil {
			t.Fatalf("ApplyMove(%s): %v", coord, err)
		}
	}
	if status != chess.StatusDrawFiftyMove {
		t.Fatalf("expected fifty-move draw, got %v", status)
	}
}
