package chaincfg

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ethereum/go-ethereum/rlp"
)

// fingerprintRLP is the RLP-serializable view of the consensus constants.
// Seeds are left out: they steer discovery, not consensus. RLP has no signed
// integers, so durations go in as whole seconds and the header version as
// its bit pattern.
type fingerprintRLP struct {
	ID                string
	PaymentProtocolID string

	TargetTimespan uint64
	TargetSpacing  uint64
	MaxTargetBits  uint32

	Port        uint16
	PacketMagic uint32

	DumpedPrivateKeyHeader uint8
	AddressHeader          uint8
	P2SHHeader             uint8
	SegwitAddressHRP       string
	HDKeyVersions          HDKeyVersions

	SpendableCoinbaseDepth uint32

	MajorityWindow              uint32
	MajorityEnforceBlockUpgrade uint32
	MajorityRejectBlockOutdated uint32

	GenesisVersion uint32
	GenesisTime    uint64
	GenesisNonce   uint32
	GenesisBits    uint32
	GenesisHash    [chainhash.HashSize]byte

	Checkpoints []checkpointRLP
}

type checkpointRLP struct {
	Height uint64
	Hash   [chainhash.HashSize]byte
}

func computeFingerprint(p *Params) (chainhash.Hash, error) {
	f := fingerprintRLP{
		ID:                          p.id,
		PaymentProtocolID:           p.paymentProtocolID,
		TargetTimespan:              uint64(p.targetTimespan.Seconds()),
		TargetSpacing:               uint64(p.targetSpacing.Seconds()),
		MaxTargetBits:               p.maxTargetBits,
		Port:                        p.port,
		PacketMagic:                 p.packetMagic,
		DumpedPrivateKeyHeader:      p.dumpedPrivateKeyHeader,
		AddressHeader:               p.addressHeader,
		P2SHHeader:                  p.p2shHeader,
		SegwitAddressHRP:            p.segwitAddressHRP,
		HDKeyVersions:               p.hdKeyVersions,
		SpendableCoinbaseDepth:      p.spendableCoinbaseDepth,
		MajorityWindow:              p.majorityWindow,
		MajorityEnforceBlockUpgrade: p.majorityEnforceBlockUpgrade,
		MajorityRejectBlockOutdated: p.majorityRejectBlockOutdated,
		GenesisVersion:              uint32(p.genesisSpec.Version),
		GenesisTime:                 uint64(p.genesisSpec.Time),
		GenesisNonce:                p.genesisSpec.Nonce,
		GenesisBits:                 p.genesisSpec.Bits,
		GenesisHash:                 p.genesisSpec.Hash,
	}
	for _, cp := range p.checkpoints.All() {
		f.Checkpoints = append(f.Checkpoints, checkpointRLP{
			Height: uint64(cp.Height),
			Hash:   cp.Hash,
		})
	}

	enc, err := rlp.EncodeToBytes(&f)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return chainhash.DoubleHashH(enc), nil
}
