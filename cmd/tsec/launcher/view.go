package launcher

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rony4d/tsec-chaincfg/chaincfg"
)

// paramsView is the JSON shape of a profile, shared by dumpparams and the
// inspector.
type paramsView struct {
	ID                string         `json:"id"`
	PaymentProtocolID string         `json:"paymentProtocolId"`
	Fingerprint       string         `json:"fingerprint"`
	GenesisHash       string         `json:"genesisHash"`
	Port              uint16         `json:"port"`
	PacketMagic       hexutil.Uint64 `json:"packetMagic"`
	MagicBytes        hexutil.Bytes  `json:"magicBytes"`

	TargetTimespan string         `json:"targetTimespan"`
	TargetSpacing  string         `json:"targetSpacing"`
	Interval       uint32         `json:"interval"`
	MaxTarget      *hexutil.Big   `json:"maxTarget"`
	MaxTargetBits  hexutil.Uint64 `json:"maxTargetBits"`

	AddressHeader          hexutil.Uint64 `json:"addressHeader"`
	P2SHHeader             hexutil.Uint64 `json:"p2shHeader"`
	DumpedPrivateKeyHeader hexutil.Uint64 `json:"dumpedPrivateKeyHeader"`
	SegwitAddressHRP       string         `json:"segwitAddressHrp"`
	HDKeys                 hdKeysView     `json:"hdKeys"`

	SpendableCoinbaseDepth      uint32 `json:"spendableCoinbaseDepth"`
	MajorityWindow              uint32 `json:"majorityWindow"`
	MajorityEnforceBlockUpgrade uint32 `json:"majorityEnforceBlockUpgrade"`
	MajorityRejectBlockOutdated uint32 `json:"majorityRejectBlockOutdated"`

	Checkpoints []checkpointView `json:"checkpoints"`
	Seeds       seedsView        `json:"seeds"`
}

type hdKeysView struct {
	P2PKHPub   versionView `json:"p2pkhPub"`
	P2PKHPriv  versionView `json:"p2pkhPriv"`
	P2WPKHPub  versionView `json:"p2wpkhPub"`
	P2WPKHPriv versionView `json:"p2wpkhPriv"`
}

type versionView struct {
	Version hexutil.Uint64 `json:"version"`
	Prefix  string         `json:"prefix"`
}

type checkpointView struct {
	Height uint64 `json:"height"`
	Hash   string `json:"hash"`
}

type seedsView struct {
	DNS   []string       `json:"dns"`
	HTTP  []httpSeedView `json:"http"`
	Addrs []string       `json:"addrs"`
}

type httpSeedView struct {
	URL    string `json:"url"`
	PubKey string `json:"pubKey,omitempty"`
}

type genesisView struct {
	Hash       string         `json:"hash"`
	Version    int32          `json:"version"`
	Time       int64          `json:"time"`
	Nonce      uint32         `json:"nonce"`
	Bits       hexutil.Uint64 `json:"bits"`
	MerkleRoot string         `json:"merkleRoot"`
	Coinbase   string         `json:"coinbaseTxid"`
}

func newVersionView(v uint32) versionView {
	return versionView{Version: hexutil.Uint64(v), Prefix: chaincfg.ExtendedKeyPrefix(v)}
}

func newParamsView(p *chaincfg.Params) paramsView {
	magic := p.MagicBytes()
	hd := p.HDKeyVersions()
	return paramsView{
		ID:                p.ID(),
		PaymentProtocolID: p.PaymentProtocolID(),
		Fingerprint:       p.Fingerprint().String(),
		GenesisHash:       p.GenesisHash().String(),
		Port:              p.Port(),
		PacketMagic:       hexutil.Uint64(p.PacketMagic()),
		MagicBytes:        magic[:],

		TargetTimespan: p.TargetTimespan().String(),
		TargetSpacing:  p.TargetSpacing().String(),
		Interval:       p.Interval(),
		MaxTarget:      (*hexutil.Big)(p.MaxTarget()),
		MaxTargetBits:  hexutil.Uint64(p.MaxTargetBits()),

		AddressHeader:          hexutil.Uint64(p.AddressHeader()),
		P2SHHeader:             hexutil.Uint64(p.P2SHHeader()),
		DumpedPrivateKeyHeader: hexutil.Uint64(p.DumpedPrivateKeyHeader()),
		SegwitAddressHRP:       p.SegwitAddressHRP(),
		HDKeys: hdKeysView{
			P2PKHPub:   newVersionView(hd.P2PKHPub),
			P2PKHPriv:  newVersionView(hd.P2PKHPriv),
			P2WPKHPub:  newVersionView(hd.P2WPKHPub),
			P2WPKHPriv: newVersionView(hd.P2WPKHPriv),
		},

		SpendableCoinbaseDepth:      p.SpendableCoinbaseDepth(),
		MajorityWindow:              p.MajorityWindow(),
		MajorityEnforceBlockUpgrade: p.MajorityEnforceBlockUpgrade(),
		MajorityRejectBlockOutdated: p.MajorityRejectBlockOutdated(),

		Checkpoints: newCheckpointsView(p.Checkpoints()),
		Seeds:       newSeedsView(p.Seeds()),
	}
}

func newCheckpointsView(c *chaincfg.Checkpoints) []checkpointView {
	all := c.All()
	out := make([]checkpointView, 0, len(all))
	for _, cp := range all {
		out = append(out, checkpointView{Height: uint64(cp.Height), Hash: cp.Hash.String()})
	}
	return out
}

func newSeedsView(s chaincfg.Seeds) seedsView {
	v := seedsView{
		DNS:   s.DNS(),
		HTTP:  []httpSeedView{},
		Addrs: []string{},
	}
	if v.DNS == nil {
		v.DNS = []string{}
	}
	for _, h := range s.HTTP() {
		v.HTTP = append(v.HTTP, httpSeedView{URL: h.URL, PubKey: h.PubKey})
	}
	for _, ip := range s.AddrIPs() {
		v.Addrs = append(v.Addrs, ip.String())
	}
	return v
}

// newGenesisView renders a verified block. hash is the pinned identity that
// verification already matched against the header.
func newGenesisView(hash chainhash.Hash, b *wire.MsgBlock) genesisView {
	h := b.Header
	v := genesisView{
		Hash:       hash.String(),
		Version:    h.Version,
		Time:       h.Timestamp.Unix(),
		Nonce:      h.Nonce,
		Bits:       hexutil.Uint64(h.Bits),
		MerkleRoot: h.MerkleRoot.String(),
	}
	if len(b.Transactions) > 0 {
		v.Coinbase = b.Transactions[0].TxHash().String()
	}
	return v
}
