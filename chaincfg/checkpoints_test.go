package chaincfg

import (
	"testing"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hashOf(b byte) chainhash.Hash {
	var h chainhash.Hash
	h[0] = b
	return h
}

// TestCheckpoints_distinctHeights inserts entries at distinct heights in no
// particular order and reads each one back.
func TestCheckpoints_distinctHeights(t *testing.T) {
	list := []Checkpoint{
		{Height: 20520, Hash: hashOf(3)},
		{Height: 0, Hash: hashOf(1)},
		{Height: 1080, Hash: hashOf(2)},
	}
	cp, err := newCheckpoints(list)
	require.NoError(t, err)

	for _, want := range list {
		got, ok := cp.Get(want.Height)
		require.Truef(t, ok, "height %d", want.Height)
		assert.Equal(t, want.Hash, got)
		assert.True(t, cp.IsCheckpointHeight(want.Height))
	}
	assert.Equal(t, 3, cp.Len())
	assert.Equal(t, []idx.Block{0, 1080, 20520}, cp.Heights())
}

func TestCheckpoints_duplicateHeight(t *testing.T) {
	_, err := newCheckpoints([]Checkpoint{
		{Height: 1080, Hash: hashOf(1)},
		{Height: 1080, Hash: hashOf(2)},
	})
	assert.ErrorIs(t, err, ErrDuplicateCheckpoint)

	// Same hash twice is still a duplicate definition.
	_, err = newCheckpoints([]Checkpoint{
		{Height: 7, Hash: hashOf(1)},
		{Height: 7, Hash: hashOf(1)},
	})
	assert.ErrorIs(t, err, ErrDuplicateCheckpoint)
}

// TestCheckpoints_absent checks that heights between checkpoints are not
// covered and that absence is reported without an error.
func TestCheckpoints_absent(t *testing.T) {
	cp, err := newCheckpoints([]Checkpoint{{Height: 1080, Hash: hashOf(1)}})
	require.NoError(t, err)

	for _, h := range []idx.Block{0, 1079, 1081, 1 << 40} {
		got, ok := cp.Get(h)
		assert.Falsef(t, ok, "height %d", h)
		assert.Equal(t, chainhash.Hash{}, got)
	}

	var nilStore *Checkpoints
	_, ok := nilStore.Get(0)
	assert.False(t, ok)
	assert.Zero(t, nilStore.Len())
}

func TestCheckpoints_latest(t *testing.T) {
	cp, err := newCheckpoints([]Checkpoint{
		{Height: 10800, Hash: hashOf(2)},
		{Height: 1080, Hash: hashOf(1)},
		{Height: 20520, Hash: hashOf(3)},
	})
	require.NoError(t, err)

	latest, ok := cp.Latest()
	require.True(t, ok)
	assert.Equal(t, idx.Block(20520), latest.Height)

	tests := []struct {
		tip    idx.Block
		want   idx.Block
		wantOK bool
	}{
		{tip: 0, wantOK: false},
		{tip: 1079, wantOK: false},
		{tip: 1080, want: 1080, wantOK: true},
		{tip: 10799, want: 1080, wantOK: true},
		{tip: 10800, want: 10800, wantOK: true},
		{tip: 1 << 30, want: 20520, wantOK: true},
	}
	for _, tt := range tests {
		got, ok := cp.LatestAtOrBelow(tt.tip)
		assert.Equalf(t, tt.wantOK, ok, "tip %d", tt.tip)
		if tt.wantOK {
			assert.Equalf(t, tt.want, got.Height, "tip %d", tt.tip)
		}
	}

	empty, err := newCheckpoints(nil)
	require.NoError(t, err)
	_, ok = empty.Latest()
	assert.False(t, ok)
	_, ok = empty.LatestAtOrBelow(100)
	assert.False(t, ok)
}

// TestCheckpoints_copies checks that callers cannot reach the internal
// table through the returned slices.
func TestCheckpoints_copies(t *testing.T) {
	cp, err := newCheckpoints([]Checkpoint{{Height: 5, Hash: hashOf(1)}})
	require.NoError(t, err)

	hs := cp.Heights()
	hs[0] = 99
	all := cp.All()
	all[0].Hash = hashOf(9)

	got, ok := cp.Get(5)
	require.True(t, ok)
	assert.Equal(t, hashOf(1), got)
	assert.Equal(t, []idx.Block{5}, cp.Heights())
}
