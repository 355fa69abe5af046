package chess

// Perft counts leaf nodes (move sequences) from the position for a given
// depth. Used by tests and cmd/perft to validate move generation.
func Perft(g *Game, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range g.LegalMoves() {
		child := g.Clone()
		child.apply(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of
// leaf nodes reachable from that move at the given depth. Useful for
// debugging the generator.
func PerftDivide(g *Game, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range g.LegalMoves() {
		child := g.Clone()
		child.apply(m)
		result[m] = Perft(child, depth-1)
	}
	return result
}
