package hasher_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/habedi/tf2cu/pkg/hasher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidHashAlgo(t *testing.T) {
	assert.True(t, hasher.IsValidHashAlgo("sha1"))
	assert.True(t, hasher.IsValidHashAlgo("SHA256"))
	assert.True(t, hasher.IsValidHashAlgo("sha512"))
	assert.False(t, hasher.IsValidHashAlgo("md5"))
	assert.False(t, hasher.IsValidHashAlgo(""))
}

func TestGenerateHash(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "version.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("hello world"), 0600))

	testCases := []struct {
		algo     string
		expected string
		wantErr  bool
	}{
		{"sha1", "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", false},
		{"sha256", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", false},
		{"", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", false},
		{"sha512", "309ecc489c12d6eb4cc40f50c902f2b4d0ed77ee511a7c7a9bcd3ca86d4cd86f989dd35bc5ff499670da34255b45b0cfd830e81f605dcf7dc5542e93ae9cd76f", false},
		{"md5", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.algo, func(t *testing.T) {
			hash, err := hasher.GenerateHash(filePath, tc.algo)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, hash)
		})
	}
}

func TestGenerateHash_MissingFile(t *testing.T) {
	_, err := hasher.GenerateHash(filepath.Join(t.TempDir(), "nope.txt"), "sha256")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDigest(t *testing.T) {
	got, err := hasher.Digest(strings.NewReader("hello world"), "sha1")
	require.NoError(t, err)
	assert.Equal(t, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", got)
}
