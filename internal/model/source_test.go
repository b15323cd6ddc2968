package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceFile_AddCoverage(t *testing.T) {
	f := NewSourceFile("/src/app/Foo.php", "src/app/Foo.php")

	f.AddCoverage(4, 3)
	f.AddCoverage(9, 0)

	slots := f.Coverage()
	assert.Len(t, slots, 10)

	hits, ok := f.Hits(4)
	assert.True(t, ok)
	assert.Equal(t, 3, hits)

	hits, ok = f.Hits(9)
	assert.True(t, ok)
	assert.Equal(t, 0, hits)

	_, ok = f.Hits(5)
	assert.False(t, ok, "lines between statements stay empty")
	assert.Nil(t, slots[5])

	assert.Equal(t, 2, f.Statements())
}

func TestSourceFile_AddCoverageOverwrites(t *testing.T) {
	f := NewSourceFile("/a.php", "a.php")

	f.AddCoverage(0, 5)
	f.AddCoverage(0, 2)

	hits, ok := f.Hits(0)
	assert.True(t, ok)
	assert.Equal(t, 2, hits)
}

func TestSourceFile_IgnoresNegativeIndex(t *testing.T) {
	f := NewSourceFile("/a.php", "a.php")

	f.AddCoverage(-1, 5)

	assert.Empty(t, f.Coverage())
	_, ok := f.Hits(-1)
	assert.False(t, ok)
	_, ok = f.Hits(100)
	assert.False(t, ok)
}
