package chaincfg

import (
	"github.com/rony4d/tsec-chaincfg/chaincfg/genesis"
)

const (
	RegTestID = "regtest"

	// PaymentProtocolIDRegTest names the regression test network in
	// payment requests.
	PaymentProtocolIDRegTest = "regtest"

	// regTestMaxTargetBits is effectively no proof-of-work limit.
	regTestMaxTargetBits uint32 = 0x207fffff
)

// Testnet-style thresholds, also used by regtest.
const (
	TestNetMajorityWindow              = 100
	TestNetMajorityRejectBlockOutdated = 75
	TestNetMajorityEnforceBlockUpgrade = 51
)

var regTestGenesisHash = newHashFromStr("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206")

// RegTestConfig returns the parameters of the local regression test network.
// Blocks can be mined instantly and no seeds are configured: peers are added
// by hand.
func RegTestConfig() Config {
	return Config{
		ID:                RegTestID,
		PaymentProtocolID: PaymentProtocolIDRegTest,

		TargetTimespan: TargetTimespan,
		TargetSpacing:  TargetSpacing,
		MaxTargetBits:  regTestMaxTargetBits,

		Port:        18444,
		PacketMagic: 0xfabfb5da,

		DumpedPrivateKeyHeader: 239,
		AddressHeader:          111,
		P2SHHeader:             196,
		SegwitAddressHRP:       "bcrt",
		HDKeyVersions: HDKeyVersions{
			P2PKHPub:   0x043587cf, // tpub
			P2PKHPriv:  0x04358394, // tprv
			P2WPKHPub:  0x045f1cf6, // vpub
			P2WPKHPriv: 0x045f18bc, // vprv
		},

		SpendableCoinbaseDepth: 100,

		MajorityWindow:              TestNetMajorityWindow,
		MajorityEnforceBlockUpgrade: TestNetMajorityEnforceBlockUpgrade,
		MajorityRejectBlockOutdated: TestNetMajorityRejectBlockOutdated,

		Genesis: genesis.Spec{
			Version:  1,
			Time:     1296688602,
			Nonce:    2,
			Bits:     regTestMaxTargetBits,
			Hash:     regTestGenesisHash,
			Coinbase: genesis.StandardCoinbase(),
		},

		Checkpoints: []Checkpoint{
			{Height: 0, Hash: regTestGenesisHash},
		},

		// NOTE: There must NOT be any seeds.
		Seeds: SeedsConfig{},
	}
}
