package hashlist_test

import (
	"testing"

	"github.com/herohde/arimaa/pkg/hashlist"
	"github.com/stretchr/testify/assert"
)

func TestBasics(t *testing.T) {
	var l hashlist.List
	_, ok := l.Head()
	assert.False(t, ok)

	l = l.Append(1).Append(2).Append(3)
	h, ok := l.Head()
	assert.True(t, ok)
	assert.Equal(t, uint64(3), h)
	assert.Equal(t, 3, l.Len())

	l = l.Tail()
	h, _ = l.Head()
	assert.Equal(t, uint64(2), h)

	l = l.Tail()
	h, _ = l.Head()
	assert.Equal(t, uint64(1), h)

	l = l.Tail()
	assert.True(t, l.IsEmpty())

	// Tail of an empty list is still empty.
	l = l.Tail()
	assert.True(t, l.IsEmpty())
}

func TestSharingAcrossBranches(t *testing.T) {
	base := hashlist.List{}.Append(1).Append(2)

	left := base.Append(10)
	right := base.Append(20)

	assert.Equal(t, 3, left.Len())
	assert.Equal(t, 3, right.Len())

	lh, _ := left.Tail().Head()
	rh, _ := right.Tail().Head()
	assert.Equal(t, lh, rh)
	assert.Equal(t, uint64(2), lh)
}

func TestContainsAtLeastTwice(t *testing.T) {
	l := hashlist.List{}.Append(5).Append(7).Append(5)
	assert.True(t, l.ContainsAtLeastTwice(5))
	assert.False(t, l.ContainsAtLeastTwice(7))
	assert.Equal(t, 2, l.CountEqual(5))
}
