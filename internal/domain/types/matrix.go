package types

// Undefined marks the diagonal of a Matrix. A die never plays itself, and
// 0 would read as "never wins".
const Undefined = -1.0

// Matrix holds, for every ordered pair of distinct dice, the probability
// that the row die rolls strictly higher than the column die.
type Matrix struct {
	wins  [][]int
	total [][]int
}

// NewMatrix allocates an n-by-n matrix with every cell undefined.
func NewMatrix(n int) Matrix {
	m := Matrix{wins: make([][]int, n), total: make([][]int, n)}
	for i := range n {
		m.wins[i] = make([]int, n)
		m.total[i] = make([]int, n)
	}
	return m
}

// Set records wins out of total face pairings for row i against column j.
// Diagonal cells are ignored.
func (m Matrix) Set(i, j, wins, total int) {
	if i == j {
		return
	}
	m.wins[i][j] = wins
	m.total[i][j] = total
}

// Size returns the number of dice covered.
func (m Matrix) Size() int { return len(m.wins) }

// Wins returns the raw counts behind At.
func (m Matrix) Wins(i, j int) (wins, total int) {
	return m.wins[i][j], m.total[i][j]
}

// At returns P(die i beats die j). ok is false on the diagonal or for an
// unset cell, in which case p is Undefined.
func (m Matrix) At(i, j int) (p float64, ok bool) {
	if i == j || m.total[i][j] == 0 {
		return Undefined, false
	}
	return float64(m.wins[i][j]) / float64(m.total[i][j]), true
}

// BestAgainst returns every die other than j that has the highest
// probability of beating j, in index order.
func (m Matrix) BestAgainst(j int) []int {
	var (
		best []int
		top  = Undefined
	)
	for i := range m.Size() {
		p, ok := m.At(i, j)
		if !ok {
			continue
		}
		switch {
		case p > top:
			top = p
			best = []int{i}
		case p == top:
			best = append(best, i)
		}
	}
	return best
}
