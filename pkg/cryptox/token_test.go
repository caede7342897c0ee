package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantLen int
	}{
		{"128-bit token", TokenSize128, 22},
		{"256-bit token", TokenSize256, 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.Len(t, token, tt.wantLen)

			token2, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, token2, "tokens should be unique")
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}

	require.Panics(t, func() { MustGenerateToken(0) })
}

func TestGenerateReadableCode(t *testing.T) {
	code, err := GenerateReadableCode(10)
	require.NoError(t, err)

	// 10 bytes is 16 base32 chars, grouped in fours
	require.Len(t, code, 19)
	require.Equal(t, 3, strings.Count(code, "-"))
	require.NotContains(t, code, "0")
	require.NotContains(t, code, "O")
	require.NotContains(t, code, "1")
	require.NotContains(t, code, "I")
}

func TestNormalizeCode(t *testing.T) {
	require.Equal(t, "7KQ2M9XD", NormalizeCode("7kq2-m9xd"))
	require.Equal(t, "7KQ2M9XD", NormalizeCode(" 7KQ2 M9XD\t"))
	require.Equal(t,
		FingerprintToken(NormalizeCode("abcd-efgh")),
		FingerprintToken(NormalizeCode("ABCDEFGH")),
	)
}

func TestFingerprintToken(t *testing.T) {
	fp1a := FingerprintToken("test-token-1")
	fp1b := FingerprintToken("test-token-1")
	fp2 := FingerprintToken("test-token-2")

	require.Equal(t, fp1a, fp1b, "fingerprint should be deterministic")
	require.NotEqual(t, fp1a, fp2)
	require.Len(t, fp1a, 43, "SHA-256 base64url should be 43 chars")

	require.True(t, EqualFingerprint(fp1a, fp1b))
	require.False(t, EqualFingerprint(fp1a, fp2))
}

func TestGenerateToken_EntropyQuality(t *testing.T) {
	const count = 100
	tokens := make(map[string]bool, count)

	for range count {
		token, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		require.NotContains(t, tokens, token, "duplicate token generated")
		tokens[token] = true
	}
}
