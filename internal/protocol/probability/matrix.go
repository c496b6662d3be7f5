package probability

import "fairdice/internal/domain"

// Compute returns the win-probability matrix for dice. Row i, column j holds
// P(dice[i] beats dice[j]); the diagonal is domain.Undefined.
func Compute(dice []domain.Die) domain.Matrix {
	m := domain.NewMatrix(len(dice))
	for i, a := range dice {
		for j, b := range dice {
			if i == j {
				continue
			}
			m.Set(i, j, Wins(a, b), a.Len()*b.Len())
		}
	}
	return m
}

// Wins counts face pairings where a rolls strictly higher than b.
func Wins(a, b domain.Die) int {
	var wins int
	bf := b.Faces()
	for _, fa := range a.Faces() {
		for _, fb := range bf {
			if fa > fb {
				wins++
			}
		}
	}
	return wins
}
