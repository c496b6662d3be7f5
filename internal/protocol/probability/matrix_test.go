package probability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fairdice/internal/domain"
	"fairdice/internal/protocol/probability"
)

func mustDie(t *testing.T, faces ...int) domain.Die {
	t.Helper()
	d, err := domain.NewDie(faces)
	require.NoError(t, err)
	return d
}

func nonTransitive(t *testing.T) []domain.Die {
	t.Helper()
	return []domain.Die{
		mustDie(t, 2, 2, 4, 4, 9, 9),
		mustDie(t, 1, 1, 6, 6, 8, 8),
		mustDie(t, 3, 3, 5, 5, 7, 7),
	}
}

func TestCompute_NonTransitiveCycle(t *testing.T) {
	m := probability.Compute(nonTransitive(t))
	require.Equal(t, 3, m.Size())

	ab, ok := m.At(0, 1)
	require.True(t, ok)
	require.InDelta(t, 20.0/36.0, ab, 1e-12)

	wins, total := m.Wins(0, 1)
	require.Equal(t, 20, wins)
	require.Equal(t, 36, total)

	bc, _ := m.At(1, 2)
	ca, _ := m.At(2, 0)
	require.Greater(t, ab, 0.5)
	require.Greater(t, bc, 0.5)
	require.Greater(t, ca, 0.5)
}

func TestCompute_DiagonalIsUndefined(t *testing.T) {
	m := probability.Compute(nonTransitive(t))
	for i := range m.Size() {
		p, ok := m.At(i, i)
		require.False(t, ok)
		require.Equal(t, domain.Undefined, p)
	}
}

func TestCompute_ZeroIsDistinctFromUndefined(t *testing.T) {
	low := mustDie(t, 1, 1)
	high := mustDie(t, 5, 5)
	m := probability.Compute([]domain.Die{low, high})

	p, ok := m.At(0, 1)
	require.True(t, ok)
	require.Zero(t, p)

	p, ok = m.At(1, 0)
	require.True(t, ok)
	require.Equal(t, 1.0, p)
}

func TestCompute_TiesCountForNobody(t *testing.T) {
	a := mustDie(t, 3, 3, 3)
	b := mustDie(t, 3, 3, 3)
	m := probability.Compute([]domain.Die{a, b})

	ab, _ := m.At(0, 1)
	ba, _ := m.At(1, 0)
	require.Zero(t, ab)
	require.Zero(t, ba)
}

func TestCompute_UnequalFaceCounts(t *testing.T) {
	a := mustDie(t, 4)
	b := mustDie(t, 1, 2, 3, 4, 5, 6)
	m := probability.Compute([]domain.Die{a, b})

	wins, total := m.Wins(0, 1)
	require.Equal(t, 3, wins)
	require.Equal(t, 6, total)
}

func TestBestAgainst(t *testing.T) {
	m := probability.Compute(nonTransitive(t))
	// C beats A, A beats B, B beats C.
	require.Equal(t, []int{2}, m.BestAgainst(0))
	require.Equal(t, []int{0}, m.BestAgainst(1))
	require.Equal(t, []int{1}, m.BestAgainst(2))
}

func TestBestAgainst_Ties(t *testing.T) {
	dice := []domain.Die{
		mustDie(t, 1),
		mustDie(t, 5),
		mustDie(t, 5),
	}
	m := probability.Compute(dice)
	require.Equal(t, []int{1, 2}, m.BestAgainst(0))
}
