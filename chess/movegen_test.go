package chess_test

import (
	"testing"

	"termchess/chess"
)

func mustGame(t *testing.T, fen string) *chess.Game {
	t.Helper()
	g, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return g
}

func mustMove(t *testing.T, g *chess.Game, coord string) chess.Move {
	t.Helper()
	m, err := g.ParseMove(coord)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", coord, err)
	}
	return m
}

func hasMove(moves []chess.Move, m chess.Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}

func movesFrom(moves []chess.Move, from chess.Square) []chess.Move {
	var out []chess.Move
	for _, m := range moves {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

func TestLegalMoves_InitialPosition(t *testing.T) {
	g := chess.NewGame()
	moves := g.LegalMoves()
	if len(moves) != 20 {
		t.Fatalf("initial position: expected 20 moves, got %d", len(moves))
	}
}

func TestLegalMoves_StableOrder(t *testing.T) {
	fens := []string{
		chess.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"k7/7P/8/8/8/8/8/K7 w - - 0 1",
	}
	for _, fen := range fens {
		moves := mustGame(t, fen).LegalMoves()
		for i := 1; i < len(moves); i++ {
			a, b := moves[i-1], moves[i]
			ordered := a.From < b.From ||
				(a.From == b.From && a.To < b.To) ||
				(a.From == b.From && a.To == b.To && a.Promotion < b.Promotion)
			if !ordered {
				t.Fatalf("%s: moves out of order at %d: %v before %v", fen, i, a, b)
			}
		}
	}
}

func TestPawnMoves_PushesAndBlocks(t *testing.T) {
	g := mustGame(t, "k7/8/8/8/4p3/8/4P3/K7 w - - 0 1")
	moves := g.LegalMoves()

	e2 := sq(t, "e2")
	pawnMoves := movesFrom(moves, e2)
	if len(pawnMoves) != 1 {
		t.Fatalf("blocked double step: expected only e2e3, got %v", pawnMoves)
	}
	if pawnMoves[0].To != sq(t, "e3") {
		t.Fatalf("expected e2e3, got %v", pawnMoves[0])
	}

	// Fully blocked pawn has no forward move at all.
	g = mustGame(t, "k7/8/8/8/8/4p3/4P3/K7 w - - 0 1")
	if got := movesFrom(g.LegalMoves(), e2); len(got) != 0 {
		t.Fatalf("blocked pawn: expected no moves, got %v", got)
	}
}

func TestPawnMoves_CapturesOnlyEnemies(t *testing.T) {
	// White pawn d4 with black pawn on e5 and white knight on c5.
	g := mustGame(t, "k7/8/8/2N1p3/3P4/8/8/K7 w - - 0 1")
	moves := g.LegalMoves()
	d4 := sq(t, "d4")

	if !hasMove(moves, chess.Move{From: d4, To: sq(t, "e5")}) {
		t.Fatalf("expected capture d4xe5")
	}
	if hasMove(moves, chess.Move{From: d4, To: sq(t, "c5")}) {
		t.Fatalf("pawn must not capture a friendly piece")
	}
	if !hasMove(moves, chess.Move{From: d4, To: sq(t, "d5")}) {
		t.Fatalf("expected quiet push d4d5")
	}
}

func TestSlidingMoves_StopAtBlockers(t *testing.T) {
	// White rook d4, friendly pawn d6, enemy pawn f4.
	g := mustGame(t, "k7/8/3P4/8/3R1p2/8/8/K7 w - - 0 1")
	moves := g.LegalMoves()
	d4 := sq(t, "d4")

	if !hasMove(moves, chess.Move{From: d4, To: sq(t, "d5")}) {
		t.Fatalf("expected d4d5 before friendly blocker")
	}
	if hasMove(moves, chess.Move{From: d4, To: sq(t, "d6")}) {
		t.Fatalf("friendly blocker square must be excluded")
	}
	if !hasMove(moves, chess.Move{From: d4, To: sq(t, "f4")}) {
		t.Fatalf("expected capture on enemy blocker f4")
	}
	if hasMove(moves, chess.Move{From: d4, To: sq(t, "g4")}) {
		t.Fatalf("projection must stop at the enemy blocker")
	}
}

func TestKnightMoves_EdgeOfBoard(t *testing.T) {
	g := mustGame(t, "k7/8/8/8/8/8/8/K6N w - - 0 1")
	moves := movesFrom(g.LegalMoves(), sq(t, "h1"))
	if len(moves) != 2 {
		t.Fatalf("knight on h1: expected 2 moves, got %v", moves)
	}
}

func TestPromotion_AllFourPieces(t *testing.T) {
	g := mustGame(t, "k7/7P/8/8/8/8/8/K7 w - - 0 1")
	moves := movesFrom(g.LegalMoves(), sq(t, "h7"))
	if len(moves) != 4 {
		t.Fatalf("promotion: expected 4 moves, got %v", moves)
	}
	seen := map[chess.PieceType]bool{}
	for _, m := range moves {
		seen[m.Promotion] = true
	}
	for _, pt := range []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
		if !seen[pt] {
			t.Fatalf("missing promotion to %v", pt)
		}
	}
}

func TestEnPassant_Generated(t *testing.T) {
	g := mustGame(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	want := chess.Move{From: sq(t, "e5"), To: sq(t, "d6"), Flags: chess.FlagEnPassant}
	if !hasMove(g.LegalMoves(), want) {
		t.Fatalf("expected en passant capture e5xd6")
	}
}

func TestCastling_Allowed(t *testing.T) {
	g := mustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	moves := g.LegalMoves()
	if !hasMove(moves, chess.Move{From: sq(t, "e1"), To: sq(t, "g1"), Flags: chess.FlagCastle}) {
		t.Fatalf("expected white kingside castle")
	}
	if !hasMove(moves, chess.Move{From: sq(t, "e1"), To: sq(t, "c1"), Flags: chess.FlagCastle}) {
		t.Fatalf("expected white queenside castle")
	}
}

func TestCastling_RejectedWithoutRights(t *testing.T) {
	g := mustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	for _, m := range g.LegalMoves() {
		if m.Flags == chess.FlagCastle {
			t.Fatalf("castling generated without rights: %v", m)
		}
	}
}

func TestCastling_RejectedWhenPathOccupied(t *testing.T) {
	g := mustGame(t, "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1")
	moves := g.LegalMoves()
	if hasMove(moves, chess.Move{From: sq(t, "e1"), To: sq(t, "g1"), Flags: chess.FlagCastle}) {
		t.Fatalf("kingside castle through an occupied square")
	}
	if !hasMove(moves, chess.Move{From: sq(t, "e1"), To: sq(t, "c1"), Flags: chess.FlagCastle}) {
		t.Fatalf("queenside castle should still be available")
	}
}

func TestCastling_RejectedThroughAttackedSquare(t *testing.T) {
	// Black rook on f3 covers f1, the square the king passes through.
	g := mustGame(t, "r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1")
	moves := g.LegalMoves()
	if hasMove(moves, chess.Move{From: sq(t, "e1"), To: sq(t, "g1"), Flags: chess.FlagCastle}) {
		t.Fatalf("kingside castle through an attacked square")
	}
	if !hasMove(moves, chess.Move{From: sq(t, "e1"), To: sq(t, "c1"), Flags: chess.FlagCastle}) {
		t.Fatalf("queenside path is not attacked and should be available")
	}
}

func TestCastling_RejectedWhileInCheck(t *testing.T) {
	g := mustGame(t, "r3k2r/8/8/8/8/4r3/8/R3K2R w KQkq - 0 1")
	for _, m := range g.LegalMoves() {
		if m.Flags == chess.FlagCastle {
			t.Fatalf("castling generated while in check: %v", m)
		}
	}
}
