// Package genesis builds the first block of a chain from its pinned fields and
// proves it matches the expected identity hash.
//
// The genesis block is never mined here. Its timestamp and nonce are
// pre-mined constants; this package only rebuilds the header from them, hashes
// it and compares the result byte-for-byte against the pinned hash. A mismatch
// means the process is about to run with a network identity whose root of
// trust cannot be confirmed, and callers must abort.
//
// Usage:
//
//	spec := genesis.Spec{Version: 1, Time: 1720842645, Nonce: 10190520,
//	    Bits: 0x1e0fffff, Hash: pinned, Coinbase: genesis.StandardCoinbase()}
//	block, err := genesis.Verify(spec, nil)
package genesis

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// ErrHashMismatch is the configuration-integrity failure: the rebuilt genesis
// header does not hash to the pinned value.
var ErrHashMismatch = errors.New("genesis hash mismatch")

// ErrNoCoinbase is returned when a Spec carries no coinbase transaction.
var ErrNoCoinbase = errors.New("genesis spec has no coinbase transaction")

// Spec holds the fixed fields a genesis block is rebuilt from.
type Spec struct {
	// Version is the header version of the genesis block.
	Version int32

	// Time is the pre-mined genesis timestamp in unix seconds.
	Time int64

	// Nonce is the pre-mined proof-of-work nonce.
	Nonce uint32

	// Bits is the compact difficulty target written into the header
	// (the network's standard max difficulty).
	Bits uint32

	// Hash is the pinned identity hash the rebuilt header must produce.
	Hash chainhash.Hash

	// Coinbase is the implicit coinbase transaction defined by the genesis
	// construction rule of the block format.
	Coinbase *wire.MsgTx
}

// HeaderHasher computes the identity hash of a block header.
type HeaderHasher interface {
	HeaderHash(h *wire.BlockHeader) chainhash.Hash
}

// HeaderHasherFunc adapts a plain function to HeaderHasher.
type HeaderHasherFunc func(h *wire.BlockHeader) chainhash.Hash

// HeaderHash calls f(h).
func (f HeaderHasherFunc) HeaderHash(h *wire.BlockHeader) chainhash.Hash {
	return f(h)
}

// DoubleSHA256 is the chain's standard header hash: double SHA-256 over the
// 80 byte serialized header.
var DoubleSHA256 HeaderHasher = HeaderHasherFunc(func(h *wire.BlockHeader) chainhash.Hash {
	return h.BlockHash()
})

// MismatchError reports which hash was computed and which one was pinned.
type MismatchError struct {
	Want chainhash.Hash
	Got  chainhash.Hash
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: computed %s, pinned %s", ErrHashMismatch, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrHashMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrHashMismatch
}

// Build assembles the unhashed genesis block skeleton: no predecessor, the
// coinbase as the only transaction, and the spec's bits, time and nonce set
// on the header. The coinbase is deep-copied so the returned block shares no
// memory with the spec.
func Build(spec Spec) (*wire.MsgBlock, error) {
	if spec.Coinbase == nil {
		return nil, ErrNoCoinbase
	}
	coinbase := spec.Coinbase.Copy()

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    spec.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: coinbase.TxHash(),
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	block.Header.Bits = spec.Bits
	block.Header.Timestamp = time.Unix(spec.Time, 0)
	block.Header.Nonce = spec.Nonce
	return block, nil
}

// Verify rebuilds the genesis block described by spec and checks that its
// header hashes to spec.Hash. A nil hasher means DoubleSHA256.
//
// On mismatch the returned error is a *MismatchError and no block is
// returned.
func Verify(spec Spec, hasher HeaderHasher) (*wire.MsgBlock, error) {
	if hasher == nil {
		hasher = DoubleSHA256
	}
	block, err := Build(spec)
	if err != nil {
		return nil, err
	}
	got := hasher.HeaderHash(&block.Header)
	if !got.IsEqual(&spec.Hash) {
		return nil, &MismatchError{Want: spec.Hash, Got: got}
	}
	return block, nil
}
