package chess_test

import (
	"errors"
	"testing"

	"termchess/chess"
)

func sq(t *testing.T, coord string) chess.Square {
	t.Helper()
	s, err := chess.ParseSquare(coord)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", coord, err)
	}
	return s
}

func TestParseSquare(t *testing.T) {
	a1 := sq(t, "a1")
	if a1 != 0 {
		t.Fatalf("a1: got %d want 0", a1)
	}
	h8 := sq(t, "h8")
	if h8 != 63 {
		t.Fatalf("h8: got %d want 63", h8)
	}
	if got := sq(t, "e4").String(); got != "e4" {
		t.Fatalf("round trip e4: got %q", got)
	}

	for _, bad := range []string{"", "e", "e44", "i4", "a0", "a9", "4e"} {
		_, err := chess.ParseSquare(bad)
		var mse *chess.MalformedSquareError
		if !errors.As(err, &mse) {
			t.Fatalf("ParseSquare(%q): expected MalformedSquareError, got %v", bad, err)
		}
	}
}

func TestSquareOfBounds(t *testing.T) {
	if got := chess.SquareOf(4, 3); got != sq(t, "e4") {
		t.Fatalf("SquareOf(4,3): got %v", got)
	}
	for _, fr := range [][2]int{{-1, 0}, {8, 0}, {0, -1}, {0, 8}} {
		if got := chess.SquareOf(fr[0], fr[1]); got != chess.NoSquare {
			t.Fatalf("SquareOf(%d,%d): expected NoSquare, got %v", fr[0], fr[1], got)
		}
	}
}

func TestPieceEncoding(t *testing.T) {
	p := chess.MakePiece(chess.Black, chess.Queen)
	if p != chess.BlackQueen {
		t.Fatalf("MakePiece black queen: got %v", p)
	}
	if p.Type() != chess.Queen || p.Color() != chess.Black {
		t.Fatalf("type/color: got %v/%v", p.Type(), p.Color())
	}
	if chess.WhiteKnight.Color() != chess.White {
		t.Fatalf("white knight color")
	}
	if chess.MakePiece(chess.White, chess.NoPieceType) != chess.NoPiece {
		t.Fatalf("MakePiece with no type should be NoPiece")
	}
}

func TestBoardPlaceRemoveMove(t *testing.T) {
	var b chess.Board
	e2 := sq(t, "e2")
	e4 := sq(t, "e4")

	b.Place(e2, chess.WhitePawn)
	if b.PieceAt(e2) != chess.WhitePawn {
		t.Fatalf("PieceAt after Place: got %v", b.PieceAt(e2))
	}

	b.Place(e4, chess.BlackKnight)
	b.MovePiece(e2, e4)
	if b.PieceAt(e2) != chess.NoPiece {
		t.Fatalf("origin not cleared after MovePiece")
	}
	if b.PieceAt(e4) != chess.WhitePawn {
		t.Fatalf("capture did not overwrite destination: got %v", b.PieceAt(e4))
	}

	if got := b.Remove(e4); got != chess.WhitePawn {
		t.Fatalf("Remove: got %v", got)
	}
	if b.Remove(e4) != chess.NoPiece {
		t.Fatalf("Remove on empty square should return NoPiece")
	}
}

func TestKingSquare(t *testing.T) {
	var b chess.Board
	if b.KingSquare(chess.White) != chess.NoSquare {
		t.Fatalf("empty board should have no king")
	}
	b.Place(sq(t, "g1"), chess.WhiteKing)
	b.Place(sq(t, "c8"), chess.BlackKing)
	if got := b.KingSquare(chess.White); got != sq(t, "g1") {
		t.Fatalf("white king: got %v", got)
	}
	if got := b.KingSquare(chess.Black); got != sq(t, "c8") {
		t.Fatalf("black king: got %v", got)
	}
}
