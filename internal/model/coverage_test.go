package model

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverage_AddFile(t *testing.T) {
	c := NewCoverage()
	assert.False(t, c.HasFile("/src/a.php"))

	require.NoError(t, c.AddFile(NewSourceFile("/src/a.php", "src/a.php")))
	assert.True(t, c.HasFile("/src/a.php"))
	assert.Equal(t, 1, c.Len())

	err := c.AddFile(NewSourceFile("/src/a.php", "other"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateFile))
	assert.Contains(t, err.Error(), "/src/a.php")

	file, err := c.File("/src/a.php")
	require.NoError(t, err)
	assert.Equal(t, "src/a.php", file.Name)
}

func TestCoverage_FileNotFound(t *testing.T) {
	c := NewCoverage()

	file, err := c.File("/missing.php")
	assert.Nil(t, file)
	assert.True(t, errors.Is(err, ErrFileNotFound))
}

func TestCoverage_FilesKeepInsertionOrder(t *testing.T) {
	c := NewCoverage()
	for _, p := range []Path{"/z.php", "/a.php", "/m.php"} {
		require.NoError(t, c.AddFile(NewSourceFile(p, string(p))))
	}

	var got []Path
	for _, f := range c.Files() {
		got = append(got, f.Path)
	}

	assert.Equal(t, []Path{"/z.php", "/a.php", "/m.php"}, got)
}

func TestCoverage_SetRunAtOverwrites(t *testing.T) {
	c := NewCoverage()
	c.SetRunAt("2001-09-09 01:46:40 +0000")
	c.SetRunAt("2009-02-13 23:31:30 +0000")

	assert.Equal(t, "2009-02-13 23:31:30 +0000", c.RunAt())
}
