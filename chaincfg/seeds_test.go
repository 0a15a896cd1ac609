package chaincfg

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeds_addrIPs(t *testing.T) {
	s := newSeeds(SeedsConfig{Addrs: []uint32{0x3b1172d2, 0xc5b07eaf, 0x28ddcd77}})

	want := []net.IP{
		net.IPv4(59, 17, 114, 210),
		net.IPv4(197, 176, 126, 175),
		net.IPv4(40, 221, 205, 119),
	}
	got := s.AddrIPs()
	assert.Len(t, got, len(want))
	for i := range want {
		assert.Truef(t, want[i].Equal(got[i]), "seed %d = %s, want %s", i, got[i], want[i])
	}
}

func TestSeeds_immutable(t *testing.T) {
	cfg := SeedsConfig{
		DNS:   []string{"a.example", "b.example"},
		HTTP:  []HTTPSeed{{URL: "https://seed.example/peers"}},
		Addrs: []uint32{1},
	}
	s := newSeeds(cfg)

	// Changing the literal after construction must not leak in.
	cfg.DNS[0] = "evil.example"
	cfg.HTTP[0].URL = "https://evil.example"
	cfg.Addrs[0] = 2

	// Nor may changing a returned slice.
	s.DNS()[1] = "evil.example"
	s.Addrs()[0] = 3

	assert.Equal(t, []string{"a.example", "b.example"}, s.DNS())
	assert.Equal(t, []HTTPSeed{{URL: "https://seed.example/peers"}}, s.HTTP())
	assert.Equal(t, []uint32{1}, s.Addrs())
}

func TestSeeds_empty(t *testing.T) {
	s := newSeeds(SeedsConfig{})
	assert.Empty(t, s.DNS())
	assert.Empty(t, s.HTTP())
	assert.Empty(t, s.Addrs())
	assert.Empty(t, s.AddrIPs())
}

func TestExtendedKeyPrefix(t *testing.T) {
	tests := []struct {
		version uint32
		want    string
	}{
		{0x0488b21e, "xpub"},
		{0x0488ade4, "xprv"},
		{0x04b24746, "zpub"},
		{0x04b2430c, "zprv"},
		{0x043587cf, "tpub"},
		{0x04358394, "tprv"},
		{0x045f1cf6, "vpub"},
		{0x045f18bc, "vprv"},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, ExtendedKeyPrefix(tt.version), "version %08x", tt.version)
	}
}
