package wordcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeWordsRoundTrip(t *testing.T) {
	words := []uint32{0x01020304, 0, 0xffffffff, 42}

	encoded := EncodeWords(words, nil)
	require.Len(t, encoded, len(words)*4)

	decoded := DecodeWords(encoded, 0, len(words))
	require.Equal(t, words, decoded)
}

func TestEncodeWordsAppendsToScratch(t *testing.T) {
	scratch := make([]byte, 0, 64)
	out := EncodeWords([]uint32{7}, scratch)
	require.Equal(t, []byte{7, 0, 0, 0}, out)

	out = EncodeWords([]uint32{7, 8}, out[:0])
	require.Equal(t, []byte{7, 0, 0, 0, 8, 0, 0, 0}, out)
}

func TestEncodeWordsEmpty(t *testing.T) {
	require.Empty(t, EncodeWords(nil, nil))
}
