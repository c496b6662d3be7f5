package dice_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fairdice/internal/dice"
	"fairdice/internal/domain"
)

func TestParse_RoundTrip(t *testing.T) {
	specs := []string{"2,2,4,4,9,9", "6,8,1,1,8,6", "7,5,3,7,5,3", "-1,0,1"}
	want := [][]int{
		{2, 2, 4, 4, 9, 9},
		{6, 8, 1, 1, 8, 6},
		{7, 5, 3, 7, 5, 3},
		{-1, 0, 1},
	}
	got, err := dice.Parse(specs)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i, d := range got {
		require.Equal(t, want[i], d.Faces())
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	d, err := dice.ParseDie(" 1, 2 ,3 ")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, d.Faces())
}

func TestParse_SingleFace(t *testing.T) {
	d, err := dice.ParseDie("5")
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())
}

func TestParse_Errors(t *testing.T) {
	tcs := []struct {
		name  string
		specs []string
		echo  string
	}{
		{"too few dice", []string{"1,2", "3,4"}, "at least 3"},
		{"non-integer", []string{"1,2,3", "1,x,3", "4,5,6"}, `"1,x,3"`},
		{"decimal", []string{"1,2,3", "1.5,2", "4,5,6"}, `"1.5"`},
		{"empty token", []string{"1,,3", "1,2", "4,5,6"}, `"1,,3"`},
		{"empty die", []string{"", "1,2", "4,5,6"}, "empty face"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dice.Parse(tc.specs)
			require.Error(t, err)
			require.True(t, errors.Is(err, domain.ErrConfiguration), "%v", err)
			require.Contains(t, err.Error(), tc.echo)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dice.yaml")
	body := "dice:\n  - 2,2,4,4,9,9\n  - \"1,1,6,6,8,8\"\n  - 3,3,5,5,7,7\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	specs, err := dice.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"2,2,4,4,9,9", "1,1,6,6,8,8", "3,3,5,5,7,7"}, specs)

	ds, err := dice.Parse(specs)
	require.NoError(t, err)
	require.Len(t, ds, 3)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := dice.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.True(t, errors.Is(err, domain.ErrConfiguration), "%v", err)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dice.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dice: [1, 2\n"), 0o600))

	_, err := dice.LoadFile(path)
	require.True(t, errors.Is(err, domain.ErrConfiguration), "%v", err)
}
