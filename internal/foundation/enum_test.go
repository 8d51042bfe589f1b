package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer(t *testing.T) {
	n := NewNormalizer(map[string]int{"all_atom": 1, "Author-RSS": 2})

	v, ok := n.Normalize(" All-Atom ")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = n.Normalize("author rss")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = n.Normalize("podcast")
	assert.False(t, ok)

	_, err := n.NormalizeWithError("podcast")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "podcast")
}
