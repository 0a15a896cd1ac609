// Package chaincfg defines the chain-identity parameter profiles of the TSEC
// proof-of-work network.
//
// This package provides:
//   - Network identification (id, port, packet magic, payment protocol id)
//   - Difficulty limits and retarget timing
//   - Address, private key and BIP32 extended-key version prefixes
//   - Supermajority thresholds for soft-fork version signaling
//   - The checkpoint trust ladder and the peer seed lists
//   - Lazy, verified construction of the genesis block
//
// Params values are immutable once built. A Registry hands out exactly one
// shared *Params per network identity; create the Registry once at process
// start and pass it to every subsystem that needs network parameters.
package chaincfg

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/sirupsen/logrus"

	"github.com/rony4d/tsec-chaincfg/chaincfg/genesis"
)

// Config is the literal form of a parameter profile. Network definitions
// fill one in and New turns it into an immutable *Params.
type Config struct {
	// ID is the opaque network identity, e.g. "main".
	ID string

	// PaymentProtocolID tags payment requests with the network they target.
	PaymentProtocolID string

	// TargetTimespan is the difficulty retarget period and TargetSpacing the
	// desired time between blocks.
	TargetTimespan time.Duration
	TargetSpacing  time.Duration

	// MaxTargetBits is the compact encoding of the loosest allowed
	// proof-of-work target ("standard max difficulty").
	MaxTargetBits uint32

	// Port is the default peer-to-peer port.
	Port uint16

	// PacketMagic prefixes every wire message. Peers sending a different
	// magic are on a foreign network.
	PacketMagic uint32

	// Version prefixes for key and address serialization.
	DumpedPrivateKeyHeader byte
	AddressHeader          byte
	P2SHHeader             byte
	SegwitAddressHRP       string
	HDKeyVersions          HDKeyVersions

	// SpendableCoinbaseDepth is the number of confirmations before a
	// coinbase output may be spent.
	SpendableCoinbaseDepth uint32

	// Sliding-window supermajority thresholds for block version upgrades.
	MajorityWindow              uint32
	MajorityEnforceBlockUpgrade uint32
	MajorityRejectBlockOutdated uint32

	// Genesis holds the fixed fields the genesis block is rebuilt from.
	Genesis genesis.Spec

	// Checkpoints lists the pinned (height, hash) pairs.
	Checkpoints []Checkpoint

	// Seeds lists the peer discovery bootstrap sources.
	Seeds SeedsConfig
}

// Params is an immutable chain-identity parameter profile. All accessors are
// safe for concurrent use.
type Params struct {
	id                string
	paymentProtocolID string

	targetTimespan time.Duration
	targetSpacing  time.Duration
	maxTargetBits  uint32
	maxTarget      *big.Int

	port        uint16
	packetMagic uint32

	dumpedPrivateKeyHeader byte
	addressHeader          byte
	p2shHeader             byte
	segwitAddressHRP       string
	hdKeyVersions          HDKeyVersions

	spendableCoinbaseDepth uint32

	majorityWindow              uint32
	majorityEnforceBlockUpgrade uint32
	majorityRejectBlockOutdated uint32

	checkpoints *Checkpoints
	seeds       Seeds
	fingerprint chainhash.Hash

	genesisSpec genesis.Spec
	hasher      genesis.HeaderHasher
	log         logrus.FieldLogger

	// genesisOnce guards the lazily verified genesis block and nothing else.
	genesisOnce  sync.Once
	genesisBlock *wire.MsgBlock
	genesisErr   error
}

// New validates cfg and builds the immutable profile. Every slice and big
// number is copied, so later changes to cfg do not reach the profile.
func New(cfg Config, opts ...Option) (*Params, error) {
	o := newOptions(opts)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	checkpoints, err := newCheckpoints(cfg.Checkpoints)
	if err != nil {
		return nil, fmt.Errorf("network %q: %w", cfg.ID, err)
	}
	if h, ok := checkpoints.Get(0); ok && h != cfg.Genesis.Hash {
		return nil, fmt.Errorf("%w: network %q checkpoint 0 is %s, genesis hash is %s",
			ErrInvalidConfig, cfg.ID, h, cfg.Genesis.Hash)
	}

	spec := cfg.Genesis
	spec.Coinbase = cfg.Genesis.Coinbase.Copy()

	p := &Params{
		id:                          cfg.ID,
		paymentProtocolID:           cfg.PaymentProtocolID,
		targetTimespan:              cfg.TargetTimespan,
		targetSpacing:               cfg.TargetSpacing,
		maxTargetBits:               cfg.MaxTargetBits,
		maxTarget:                   genesis.CompactToBig(cfg.MaxTargetBits),
		port:                        cfg.Port,
		packetMagic:                 cfg.PacketMagic,
		dumpedPrivateKeyHeader:      cfg.DumpedPrivateKeyHeader,
		addressHeader:               cfg.AddressHeader,
		p2shHeader:                  cfg.P2SHHeader,
		segwitAddressHRP:            cfg.SegwitAddressHRP,
		hdKeyVersions:               cfg.HDKeyVersions,
		spendableCoinbaseDepth:      cfg.SpendableCoinbaseDepth,
		majorityWindow:              cfg.MajorityWindow,
		majorityEnforceBlockUpgrade: cfg.MajorityEnforceBlockUpgrade,
		majorityRejectBlockOutdated: cfg.MajorityRejectBlockOutdated,
		checkpoints:                 checkpoints,
		seeds:                       newSeeds(cfg.Seeds),
		genesisSpec:                 spec,
		hasher:                      o.hasher,
		log:                         o.log.WithField("network", cfg.ID),
	}

	p.fingerprint, err = computeFingerprint(p)
	if err != nil {
		return nil, fmt.Errorf("network %q: fingerprint: %w", cfg.ID, err)
	}
	return p, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.ID == "":
		return fmt.Errorf("%w: empty network id", ErrInvalidConfig)
	case cfg.TargetSpacing <= 0 || cfg.TargetTimespan < cfg.TargetSpacing:
		return fmt.Errorf("%w: network %q timespan %v / spacing %v",
			ErrInvalidConfig, cfg.ID, cfg.TargetTimespan, cfg.TargetSpacing)
	case genesis.CompactToBig(cfg.MaxTargetBits).Sign() <= 0:
		return fmt.Errorf("%w: network %q max target bits %08x is not positive",
			ErrInvalidConfig, cfg.ID, cfg.MaxTargetBits)
	case cfg.MajorityEnforceBlockUpgrade > cfg.MajorityRejectBlockOutdated ||
		cfg.MajorityRejectBlockOutdated > cfg.MajorityWindow:
		return fmt.Errorf("%w: network %q majority thresholds %d/%d/%d",
			ErrInvalidConfig, cfg.ID, cfg.MajorityEnforceBlockUpgrade,
			cfg.MajorityRejectBlockOutdated, cfg.MajorityWindow)
	case cfg.Genesis.Coinbase == nil:
		return fmt.Errorf("%w: network %q: %v", ErrInvalidConfig, cfg.ID, genesis.ErrNoCoinbase)
	}
	return nil
}

// ID returns the network identity.
func (p *Params) ID() string { return p.id }

// PaymentProtocolID returns the identifier payment requests use to name
// this network.
func (p *Params) PaymentProtocolID() string { return p.paymentProtocolID }

// TargetTimespan returns the difficulty retarget period.
func (p *Params) TargetTimespan() time.Duration { return p.targetTimespan }

// TargetSpacing returns the desired time between blocks.
func (p *Params) TargetSpacing() time.Duration { return p.targetSpacing }

// Interval returns the number of blocks between difficulty retargets.
func (p *Params) Interval() uint32 {
	return uint32(p.targetTimespan / p.targetSpacing)
}

// MaxTarget returns a copy of the loosest allowed proof-of-work target.
func (p *Params) MaxTarget() *big.Int { return new(big.Int).Set(p.maxTarget) }

// MaxTargetBits returns MaxTarget in compact form.
func (p *Params) MaxTargetBits() uint32 { return p.maxTargetBits }

// Port returns the default peer-to-peer port.
func (p *Params) Port() uint16 { return p.port }

// PacketMagic returns the 32-bit wire message magic.
func (p *Params) PacketMagic() uint32 { return p.packetMagic }

// MagicBytes returns the packet magic in wire order.
func (p *Params) MagicBytes() [4]byte {
	var out [4]byte
	copy(out[:], bigendian.Uint32ToBytes(p.packetMagic))
	return out
}

// DumpedPrivateKeyHeader returns the version byte of WIF private keys.
func (p *Params) DumpedPrivateKeyHeader() byte { return p.dumpedPrivateKeyHeader }

// AddressHeader returns the version byte of pay-to-pubkey-hash addresses.
func (p *Params) AddressHeader() byte { return p.addressHeader }

// P2SHHeader returns the version byte of pay-to-script-hash addresses.
func (p *Params) P2SHHeader() byte { return p.p2shHeader }

// SegwitAddressHRP returns the bech32 human-readable part.
func (p *Params) SegwitAddressHRP() string { return p.segwitAddressHRP }

// HDKeyVersions returns the BIP32 extended-key version bytes.
func (p *Params) HDKeyVersions() HDKeyVersions { return p.hdKeyVersions }

// SpendableCoinbaseDepth returns the coinbase maturity in blocks.
func (p *Params) SpendableCoinbaseDepth() uint32 { return p.spendableCoinbaseDepth }

// MajorityWindow returns the number of recent blocks version signaling is
// counted over.
func (p *Params) MajorityWindow() uint32 { return p.majorityWindow }

// MajorityEnforceBlockUpgrade returns how many blocks in the window must
// signal before new rules are enforced on upgraded blocks.
func (p *Params) MajorityEnforceBlockUpgrade() uint32 { return p.majorityEnforceBlockUpgrade }

// MajorityRejectBlockOutdated returns how many blocks in the window must
// signal before outdated block versions are rejected.
func (p *Params) MajorityRejectBlockOutdated() uint32 { return p.majorityRejectBlockOutdated }

// Checkpoints returns the read-only checkpoint table.
func (p *Params) Checkpoints() *Checkpoints { return p.checkpoints }

// Checkpoint is shorthand for Checkpoints().Get(height).
func (p *Params) Checkpoint(height idx.Block) (chainhash.Hash, bool) {
	return p.checkpoints.Get(height)
}

// Seeds returns the peer discovery bootstrap lists.
func (p *Params) Seeds() Seeds { return p.seeds }

// Fingerprint returns a digest over every consensus-relevant constant. Two
// profiles with the same fingerprint describe the same network.
func (p *Params) Fingerprint() chainhash.Hash { return p.fingerprint }

// GenesisHash returns the pinned genesis hash without verifying it.
func (p *Params) GenesisHash() chainhash.Hash { return p.genesisSpec.Hash }

// GenesisSpec returns the fixed fields the genesis block is rebuilt from.
func (p *Params) GenesisSpec() genesis.Spec {
	spec := p.genesisSpec
	spec.Coinbase = p.genesisSpec.Coinbase.Copy()
	return spec
}

// GenesisBlock returns the verified genesis block. The block is rebuilt and
// checked against the pinned hash on the first call only; the outcome,
// block or error, is cached for the life of the profile.
//
// A non-nil error wraps genesis.ErrHashMismatch and is a configuration
// integrity failure: the caller must abort start-up. Each call returns a
// fresh copy of the cached block.
func (p *Params) GenesisBlock() (*wire.MsgBlock, error) {
	p.genesisOnce.Do(p.verifyGenesis)
	if p.genesisErr != nil {
		return nil, p.genesisErr
	}
	return copyBlock(p.genesisBlock), nil
}

// MustGenesisBlock is like GenesisBlock but panics on an integrity failure.
// It is meant for initialization paths only.
func (p *Params) MustGenesisBlock() *wire.MsgBlock {
	block, err := p.GenesisBlock()
	if err != nil {
		panic(err)
	}
	return block
}

func (p *Params) verifyGenesis() {
	block, err := genesis.Verify(p.genesisSpec, p.hasher)
	if err != nil {
		p.genesisErr = fmt.Errorf("network %q: %w", p.id, err)
		p.log.WithError(err).WithField("pinned", p.genesisSpec.Hash.String()).
			Error("Genesis block verification failed")
		return
	}
	p.genesisBlock = block
	p.log.WithField("hash", p.genesisSpec.Hash.String()).Debug("Genesis block verified")
}

func copyBlock(b *wire.MsgBlock) *wire.MsgBlock {
	out := &wire.MsgBlock{
		Header:       b.Header,
		Transactions: make([]*wire.MsgTx, 0, len(b.Transactions)),
	}
	for _, tx := range b.Transactions {
		out.Transactions = append(out.Transactions, tx.Copy())
	}
	return out
}

// newHashFromStr converts a big-endian hex string into a chainhash.Hash. It
// panics on error and must only be called with hard-coded hashes, so it can
// only fail at package init.
func newHashFromStr(hexStr string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return *hash
}
