package chaincfg

import (
	"fmt"
	"sort"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Checkpoint identifies a known good point in the block chain. A checkpoint
// at height 0 pins the genesis block itself.
type Checkpoint struct {
	Height idx.Block
	Hash   chainhash.Hash
}

// Checkpoints is a sparse trust ladder mapping block heights to pinned
// hashes. The external validation engine may skip full historical checks
// (BIP30 duplicate-transaction detection and similar) up to a checkpointed
// height. Nothing is claimed about heights between two checkpoints.
//
// The hashes are not validated here; they must come from reviewed,
// hard-coded sources. A table is filled once while its profile is built and
// is read-only afterwards, so concurrent readers need no locking.
type Checkpoints struct {
	byHeight map[idx.Block]chainhash.Hash
	heights  []idx.Block // ascending
}

// newCheckpoints builds the table from a literal list. Insertion order does
// not matter; a repeated height is a configuration bug.
func newCheckpoints(list []Checkpoint) (*Checkpoints, error) {
	c := &Checkpoints{
		byHeight: make(map[idx.Block]chainhash.Hash, len(list)),
		heights:  make([]idx.Block, 0, len(list)),
	}
	for _, cp := range list {
		if err := c.put(cp.Height, cp.Hash); err != nil {
			return nil, err
		}
	}
	sort.Slice(c.heights, func(i, j int) bool { return c.heights[i] < c.heights[j] })
	return c, nil
}

// put inserts a trust anchor. It is only reachable during construction.
func (c *Checkpoints) put(height idx.Block, hash chainhash.Hash) error {
	if _, exists := c.byHeight[height]; exists {
		return fmt.Errorf("%w: height %d", ErrDuplicateCheckpoint, height)
	}
	c.byHeight[height] = hash
	c.heights = append(c.heights, height)
	return nil
}

// Get returns the pinned hash for exactly this height. ok is false when no
// checkpoint exists there, which is a normal outcome and not an error.
func (c *Checkpoints) Get(height idx.Block) (hash chainhash.Hash, ok bool) {
	if c == nil {
		return chainhash.Hash{}, false
	}
	hash, ok = c.byHeight[height]
	return hash, ok
}

// IsCheckpointHeight reports whether a checkpoint is pinned at height.
func (c *Checkpoints) IsCheckpointHeight(height idx.Block) bool {
	_, ok := c.Get(height)
	return ok
}

// Len returns the number of checkpoints.
func (c *Checkpoints) Len() int {
	if c == nil {
		return 0
	}
	return len(c.heights)
}

// Heights returns a copy of the checkpointed heights in ascending order.
func (c *Checkpoints) Heights() []idx.Block {
	if c == nil {
		return nil
	}
	out := make([]idx.Block, len(c.heights))
	copy(out, c.heights)
	return out
}

// All returns every checkpoint in ascending height order.
func (c *Checkpoints) All() []Checkpoint {
	if c == nil {
		return nil
	}
	out := make([]Checkpoint, 0, len(c.heights))
	for _, h := range c.heights {
		out = append(out, Checkpoint{Height: h, Hash: c.byHeight[h]})
	}
	return out
}

// Latest returns the highest checkpoint.
func (c *Checkpoints) Latest() (Checkpoint, bool) {
	if c.Len() == 0 {
		return Checkpoint{}, false
	}
	h := c.heights[len(c.heights)-1]
	return Checkpoint{Height: h, Hash: c.byHeight[h]}, true
}

// LatestAtOrBelow returns the highest checkpoint whose height does not
// exceed height. A validator uses it to find how far back trusted history
// reaches from a given tip.
func (c *Checkpoints) LatestAtOrBelow(height idx.Block) (Checkpoint, bool) {
	if c.Len() == 0 {
		return Checkpoint{}, false
	}
	// first index with heights[i] > height
	i := sort.Search(len(c.heights), func(i int) bool { return c.heights[i] > height })
	if i == 0 {
		return Checkpoint{}, false
	}
	h := c.heights[i-1]
	return Checkpoint{Height: h, Hash: c.byHeight[h]}, true
}
