package patricia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixPicksLongestMatchingAncestor(t *testing.T) {
	tr := New[string]()
	defer tr.Close()

	for _, w := range []string{"a", "ab", "abc", "abcd"} {
		k, l := key(w)
		tr.Insert(k, l, w)
	}

	n, ok := tr.Prefix([]byte("abcde"), 5*8)
	require.True(t, ok)
	assert.Equal(t, "abcd", n.Payload())

	n, ok = tr.Prefix([]byte("abz"), 3*8)
	require.True(t, ok)
	assert.Equal(t, "ab", n.Payload())
}

func TestPrefixExactMatchWinsOverShorterAncestor(t *testing.T) {
	tr := New[string]()
	defer tr.Close()

	for _, w := range []string{"a", "ab"} {
		k, l := key(w)
		tr.Insert(k, l, w)
	}

	n, ok := tr.Prefix([]byte("ab"), 2*8)
	require.True(t, ok)
	assert.Equal(t, "ab", n.Payload())
}

func TestPrefixNoCandidateReturnsFalse(t *testing.T) {
	tr := New[string]()
	defer tr.Close()

	k, l := key("zebra")
	tr.Insert(k, l, "z")

	_, ok := tr.Prefix([]byte("apple"), 5*8)
	assert.False(t, ok)
}

func TestPrefixOnEmptyTree(t *testing.T) {
	tr := New[int]()
	defer tr.Close()

	_, ok := tr.Prefix([]byte("anything"), 8*8)
	assert.False(t, ok)
}
