package genesis

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// CompactToBig decodes a 32-bit compact difficulty encoding into the full
// 256-bit target it represents.
func CompactToBig(bits uint32) *big.Int {
	return blockchain.CompactToBig(bits)
}

// BigToCompact encodes a target back into compact form. Precision beyond the
// 23-bit mantissa is dropped.
func BigToCompact(target *big.Int) uint32 {
	return blockchain.BigToCompact(target)
}

// MeetsTarget reports whether hash, read as a little-endian 256-bit number,
// is at or below the target encoded by bits.
func MeetsTarget(hash chainhash.Hash, bits uint32) bool {
	target := CompactToBig(bits)
	if target.Sign() <= 0 {
		return false
	}
	return blockchain.HashToBig(&hash).Cmp(target) <= 0
}
