package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("absent")
	assert.False(t, ok)

	require.NoError(t, m.Set("k", []byte(`{"a":1}`)))
	raw, ok := m.Get("k")
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(raw))

	require.NoError(t, m.Remove("k"))
	_, ok = m.Get("k")
	assert.False(t, ok)
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	src := []byte("abc")
	require.NoError(t, m.Set("k", src))
	src[0] = 'z'

	raw, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "abc", string(raw))
}

func TestFileRoundTrip(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	_, ok := f.Get("absent")
	assert.False(t, ok)

	require.NoError(t, f.Set("ecommerce_cart", []byte(`[]`)))
	raw, ok := f.Get("ecommerce_cart")
	require.True(t, ok)
	assert.Equal(t, `[]`, string(raw))

	require.NoError(t, f.Remove("ecommerce_cart"))
	_, ok = f.Get("ecommerce_cart")
	assert.False(t, ok)

	// supprimer une clé absente n'est pas une erreur
	assert.NoError(t, f.Remove("jamais-ecrite"))
}

func TestFileCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub", "data")
	_, err := NewFile(dir)
	assert.NoError(t, err)
}

func TestLoadJSONAbsentAndMalformed(t *testing.T) {
	m := NewMemory()

	var dest []int64
	assert.False(t, LoadJSON(m, "absent", &dest))

	// données corrompues = absentes, jamais d'erreur
	require.NoError(t, m.Set("bad", []byte(`{pas du json`)))
	assert.False(t, LoadJSON(m, "bad", &dest))
}

func TestSaveThenLoadJSON(t *testing.T) {
	m := NewMemory()

	require.NoError(t, SaveJSON(m, "ids", []int64{5, 7}))
	var dest []int64
	require.True(t, LoadJSON(m, "ids", &dest))
	assert.Equal(t, []int64{5, 7}, dest)
}
