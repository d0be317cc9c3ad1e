package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFull(t *testing.T) {
	full := Full()
	assert.True(t, strings.HasPrefix(full, "leadline/"))
	assert.Equal(t, "leadline/"+Commit(), full)
}

func TestCommitStable(t *testing.T) {
	// The revision is resolved once and never changes within a process.
	assert.Equal(t, Commit(), Commit())
	assert.NotEmpty(t, Commit())
}

func TestShort(t *testing.T) {
	assert.Equal(t, "a3f8c2d1", short("a3f8c2d1e5b90f4477aa"))
	assert.Equal(t, "abc", short("abc"))
}
