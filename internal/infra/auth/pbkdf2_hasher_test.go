package auth

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"testing"

	domainerrors "catalog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequentialSalt is bytes 0x00..0x0f.
var sequentialSalt = []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source exhausted")
}

func newTestHasher(t *testing.T) *pbkdf2Hasher {
	t.Helper()

	hasher, err := newPBKDF2Hasher(crypto.SHA256, rand.Reader)
	require.NoError(t, err)

	return hasher
}

func TestNewPBKDF2Hasher(t *testing.T) {
	hasher, err := NewPBKDF2Hasher()
	require.NoError(t, err)
	assert.NotNil(t, hasher)
}

func TestNewPBKDF2Hasher_AlgorithmUnavailable(t *testing.T) {
	// MD4 is never linked into this binary.
	hasher, err := newPBKDF2Hasher(crypto.MD4, rand.Reader)

	assert.Nil(t, hasher)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlgorithmUnavailable))
}

func TestPBKDF2Hasher_GenerateSalt(t *testing.T) {
	hasher := newTestHasher(t)

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, SaltLength)
}

func TestPBKDF2Hasher_GenerateSalt_Unique(t *testing.T) {
	hasher := newTestHasher(t)
	seen := make(map[string]struct{}, 1000)

	for range 1000 {
		salt, err := hasher.GenerateSalt()
		require.NoError(t, err)

		key := string(salt)
		_, dup := seen[key]
		require.False(t, dup, "salt repeated")
		seen[key] = struct{}{}
	}
}

func TestPBKDF2Hasher_GenerateSalt_ReaderFailure(t *testing.T) {
	hasher, err := newPBKDF2Hasher(crypto.SHA256, failingReader{})
	require.NoError(t, err)

	salt, err := hasher.GenerateSalt()
	assert.Nil(t, salt)
	assert.ErrorContains(t, err, "failed to read salt")

	stored, err := hasher.Register("correcthorse")
	assert.Nil(t, stored)
	assert.Error(t, err)
}

func TestPBKDF2Hasher_DeriveHash_KnownAnswer(t *testing.T) {
	hasher := newTestHasher(t)

	tests := []struct {
		name     string
		password string
		salt     []byte
		expected string
	}{
		{
			name:     "ascii password",
			password: "correcthorse",
			salt:     sequentialSalt,
			expected: "Nxxs6XCZniS1vzzx3hjNRBycY+r26Idh7xGB5c6f2pc=",
		},
		{
			name:     "empty password",
			password: "",
			salt:     sequentialSalt,
			expected: "5BjCbwjEcp0jmr1G6wuWVURn4j37BvKuUD8n6Hk68MA=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasher.DeriveHash(tt.password, tt.salt))
		})
	}
}

func TestPBKDF2Hasher_DeriveHash_Deterministic(t *testing.T) {
	hasher := newTestHasher(t)

	first := hasher.DeriveHash("correcthorse", sequentialSalt)
	second := hasher.DeriveHash("correcthorse", sequentialSalt)

	assert.Equal(t, first, second)

	raw, err := base64.StdEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, KeyLength)
}

func TestPBKDF2Hasher_DeriveHash_Sensitivity(t *testing.T) {
	hasher := newTestHasher(t)
	base := hasher.DeriveHash("correcthorse", sequentialSalt)

	otherSalt := bytes.Clone(sequentialSalt)
	otherSalt[15] ^= 0x01

	assert.NotEqual(t, base, hasher.DeriveHash("correcthorsf", sequentialSalt), "password change must change hash")
	assert.NotEqual(t, base, hasher.DeriveHash("correcthorse", otherSalt), "salt change must change hash")
}

func TestPBKDF2Hasher_Register(t *testing.T) {
	hasher := newTestHasher(t)

	stored, err := hasher.Register("correcthorse")
	require.NoError(t, err)

	salt, err := base64.StdEncoding.DecodeString(stored.Salt)
	require.NoError(t, err)
	assert.Len(t, salt, SaltLength)
	assert.Equal(t, hasher.DeriveHash("correcthorse", salt), stored.Hash)
	assert.NotContains(t, stored.Hash, "correcthorse")
}

func TestPBKDF2Hasher_Register_SamePasswordDifferentSalt(t *testing.T) {
	hasher := newTestHasher(t)

	first, err := hasher.Register("correcthorse")
	require.NoError(t, err)
	second, err := hasher.Register("correcthorse")
	require.NoError(t, err)

	assert.NotEqual(t, first.Salt, second.Salt)
	assert.NotEqual(t, first.Hash, second.Hash)
}

func TestPBKDF2Hasher_Verify(t *testing.T) {
	hasher := newTestHasher(t)

	stored, err := hasher.Register("correcthorse")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		salt     string
		expected bool
	}{
		{name: "correct password", password: "correcthorse", hash: stored.Hash, salt: stored.Salt, expected: true},
		{name: "wrong password", password: "wrongpassword", hash: stored.Hash, salt: stored.Salt, expected: false},
		{name: "one character changed", password: "correcthorsE", hash: stored.Hash, salt: stored.Salt, expected: false},
		{name: "empty password", password: "", hash: stored.Hash, salt: stored.Salt, expected: false},
		{name: "wrong salt", password: "correcthorse", hash: stored.Hash, salt: "wrongSaltBase64==", expected: false},
		{name: "empty salt", password: "correcthorse", hash: stored.Hash, salt: "", expected: false},
		{name: "malformed hash", password: "correcthorse", hash: "%%%not-base64%%%", salt: stored.Salt, expected: false},
		{name: "empty hash", password: "correcthorse", hash: "", salt: stored.Salt, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasher.Verify(tt.password, tt.hash, tt.salt))
		})
	}
}

func TestPBKDF2Hasher_Verify_KnownRecord(t *testing.T) {
	hasher := newTestHasher(t)

	salt := base64.StdEncoding.EncodeToString(sequentialSalt)

	assert.True(t, hasher.Verify("correcthorse", "Nxxs6XCZniS1vzzx3hjNRBycY+r26Idh7xGB5c6f2pc=", salt))
	assert.True(t, hasher.Verify("", "5BjCbwjEcp0jmr1G6wuWVURn4j37BvKuUD8n6Hk68MA=", salt))
}

func TestPBKDF2Hasher_ConcurrentUse(t *testing.T) {
	hasher := newTestHasher(t)

	var wg sync.WaitGroup
	results := make([]bool, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()

			stored, err := hasher.Register("correcthorse")
			if err != nil {
				return
			}
			results[i] = hasher.Verify("correcthorse", stored.Hash, stored.Salt)
		}()
	}
	wg.Wait()

	for i, ok := range results {
		assert.True(t, ok, "goroutine %d failed to verify", i)
	}
}
