package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Die is an immutable ordered list of faces. Duplicates are allowed and
// order is significant: rolls address faces by index.
type Die struct {
	faces []int
}

// NewDie copies faces into a new Die.
func NewDie(faces []int) (Die, error) {
	if len(faces) == 0 {
		return Die{}, ErrEmptyDie
	}
	return Die{faces: append([]int(nil), faces...)}, nil
}

// Faces returns a copy of the faces in their original order.
func (d Die) Faces() []int { return append([]int(nil), d.faces...) }

// Len returns the number of faces.
func (d Die) Len() int { return len(d.faces) }

// ValueAt returns the face at index i.
func (d Die) ValueAt(i int) (int, error) {
	if i < 0 || i >= len(d.faces) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(d.faces))
	}
	return d.faces[i], nil
}

// String renders the die as [f0,f1,...].
func (d Die) String() string {
	parts := make([]string, len(d.faces))
	for i, f := range d.faces {
		parts[i] = strconv.Itoa(f)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
