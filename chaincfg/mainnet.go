package chaincfg

import (
	"time"

	"github.com/rony4d/tsec-chaincfg/chaincfg/genesis"
)

// Network identity and payment protocol constants.
const (
	MainNetID = "main"

	// PaymentProtocolIDMainNet names the main network in payment requests.
	PaymentProtocolIDMainNet = "main"
)

// Shared timing and difficulty constants.
const (
	// TargetTimespan is two weeks of blocks between difficulty retargets.
	TargetTimespan = 14 * 24 * time.Hour

	// TargetSpacing is the desired time between blocks.
	TargetSpacing = 10 * time.Minute

	// StandardMaxDifficultyTarget is the compact form of the loosest
	// proof-of-work target a mainnet block may carry.
	StandardMaxDifficultyTarget uint32 = 0x1e0fffff
)

// Mainnet supermajority thresholds.
const (
	MainNetMajorityWindow              = 1000
	MainNetMajorityRejectBlockOutdated = 950
	MainNetMajorityEnforceBlockUpgrade = 750
)

// Pinned mainnet genesis fields. This is the relaunched chain; the earlier
// constant set (magic 0xfbc4b5dd) is not valid for a running process.
const (
	mainNetGenesisTime  = 1720842645
	mainNetGenesisNonce = 10190520
)

var mainNetGenesisHash = newHashFromStr("00000181816d9769a0279716ec893f4aa6d5a60c49efd7c85c7480d729846abe")

// MainNetConfig returns the parameters of the main production network.
// Each call returns a fresh literal.
func MainNetConfig() Config {
	return Config{
		ID:                MainNetID,
		PaymentProtocolID: PaymentProtocolIDMainNet,

		TargetTimespan: TargetTimespan,
		TargetSpacing:  TargetSpacing,
		MaxTargetBits:  StandardMaxDifficultyTarget,

		Port:        9471,
		PacketMagic: 0xfdc6b7df,

		DumpedPrivateKeyHeader: 65,
		AddressHeader:          65,
		P2SHHeader:             5,
		SegwitAddressHRP:       "tsec",
		HDKeyVersions: HDKeyVersions{
			P2PKHPub:   0x0488b21e, // xpub
			P2PKHPriv:  0x0488ade4, // xprv
			P2WPKHPub:  0x04b24746, // zpub
			P2WPKHPriv: 0x04b2430c, // zprv
		},

		SpendableCoinbaseDepth: 180,

		MajorityWindow:              MainNetMajorityWindow,
		MajorityEnforceBlockUpgrade: MainNetMajorityEnforceBlockUpgrade,
		MajorityRejectBlockOutdated: MainNetMajorityRejectBlockOutdated,

		Genesis: genesis.Spec{
			Version:  1,
			Time:     mainNetGenesisTime,
			Nonce:    mainNetGenesisNonce,
			Bits:     StandardMaxDifficultyTarget,
			Hash:     mainNetGenesisHash,
			Coinbase: genesis.StandardCoinbase(),
		},

		// Checkpoints let the validator skip BIP30 duplicate-transaction
		// checks below the highest pinned height.
		Checkpoints: []Checkpoint{
			{Height: 0, Hash: mainNetGenesisHash},
		},

		Seeds: SeedsConfig{
			DNS: []string{
				"dns1.10seconds.info",
				"dns2.10seconds-seed.info",
				"dns3.10seconds-node.info",
			},
			HTTP: []HTTPSeed{},
			Addrs: []uint32{
				0x3b1172d2, // dns1.10seconds.info
				0xc5b07eaf, // dns2.10seconds-seed.info
				0x28ddcd77, // dns3.10seconds-node.info
			},
		},
	}
}
