package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOfNameDeterministic(t *testing.T) {
	h1 := OfName("entrypoint")
	h2 := OfName("entrypoint")
	require.Equal(t, h1, h2)
	require.False(t, h1.IsEmpty())
}

func TestOfNameDistinctNames(t *testing.T) {
	require.NotEqual(t, OfName("foo"), OfName("bar"))
	require.NotEqual(t, OfName("foo"), OfName("foo "))
}

func TestOfNameInvalid(t *testing.T) {
	require.Equal(t, Empty, OfName(""))
	require.Equal(t, Empty, OfName("\xff\xfe"))
}

func TestOfPathDomainSeparation(t *testing.T) {
	// The same spelling hashed as a name and as a type path must differ.
	require.NotEqual(t, OfName("bool"), OfPath("bool"))
	require.Equal(t, Empty, OfPath(""))
	require.False(t, OfPath("::std::option::Option").IsEmpty())
}

func TestIsEmpty(t *testing.T) {
	require.True(t, Empty.IsEmpty())
	require.True(t, Hash(0).IsEmpty())
	require.False(t, Hash(1).IsEmpty())
}

func TestString(t *testing.T) {
	require.Equal(t, "0xff", Hash(255).String())
	require.Equal(t, "0x0", Empty.String())
}
