package chaincfg

import (
	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
	"github.com/mr-tron/base58"
)

// HDKeyVersions holds the BIP32 extended-key version bytes for the two
// derivation schemes a wallet may serialize keys for.
type HDKeyVersions struct {
	P2PKHPub   uint32 // legacy, "xpub"
	P2PKHPriv  uint32 // legacy, "xprv"
	P2WPKHPub  uint32 // native segwit, "zpub"
	P2WPKHPriv uint32 // native segwit, "zprv"
}

// extendedKeyLen is version(4) depth(1) parent fingerprint(4) child(4)
// chain code(32) key data(33).
const extendedKeyLen = 78

// ExtendedKeyPrefix returns the four character base58 prefix that a
// serialized extended key with the given version bytes starts with. The
// trailing checksum is left zero; it does not affect the leading characters.
func ExtendedKeyPrefix(version uint32) string {
	buf := make([]byte, extendedKeyLen+4)
	copy(buf[:4], bigendian.Uint32ToBytes(version))
	s := base58.Encode(buf)
	if len(s) < 4 {
		return s
	}
	return s[:4]
}
