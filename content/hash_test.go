package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashBytes_Deterministic(t *testing.T) {
	a := HashBytes([]byte("hello"))
	b := HashBytes([]byte("hello"))
	require.Equal(t, a, b)

	c := HashBytes([]byte("hello!"))
	require.NotEqual(t, a, c)
}

func TestHasher_LengthPrefixAvoidsCollision(t *testing.T) {
	sum1 := NewHasher().WriteBytes([]byte("ab")).WriteBytes([]byte("c")).SumContent()
	sum2 := NewHasher().WriteBytes([]byte("a")).WriteBytes([]byte("bc")).SumContent()
	require.NotEqual(t, sum1, sum2)
}

func TestHasher_UnicodeNormalization(t *testing.T) {
	// "é" as a single precomposed codepoint vs. "e" + combining acute accent.
	precomposed := "é"
	decomposed := "é"
	require.NotEqual(t, precomposed, decomposed, "test fixture sanity check")

	a := NewHasher().WriteString(precomposed).SumContent()
	b := NewHasher().WriteString(decomposed).SumContent()
	require.Equal(t, a, b)
}

func TestHasher_BoolDistinguishesTrueFalse(t *testing.T) {
	a := NewHasher().WriteBool(true).SumContent()
	b := NewHasher().WriteBool(false).SumContent()
	require.NotEqual(t, a, b)
}

func TestContentHash_IsZero(t *testing.T) {
	require.True(t, ContentHash{}.IsZero())
	require.False(t, HashBytes([]byte("x")).IsZero())
}

func TestMerkleTreeHash_IsZero(t *testing.T) {
	require.True(t, MerkleTreeHash{}.IsZero())
	h := NewHasher().WriteString("x").SumMerkle()
	require.False(t, h.IsZero())
}
