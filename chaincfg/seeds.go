package chaincfg

import (
	"net"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
)

// HTTPSeed describes an HTTP peer discovery endpoint. It is stored and
// handed to the discovery subsystem as-is.
type HTTPSeed struct {
	// URL of the discovery endpoint.
	URL string

	// PubKey is the hex-encoded key the endpoint signs its responses with.
	// Empty when the endpoint is unauthenticated.
	PubKey string
}

// Seeds lists the bootstrap sources used by the peer discovery subsystem.
// It carries no behaviour; reachability is the discovery subsystem's job.
type Seeds struct {
	dns  []string
	http []HTTPSeed
	addr []uint32
}

// SeedsConfig is the literal form Seeds are built from.
type SeedsConfig struct {
	DNS  []string
	HTTP []HTTPSeed

	// Addrs are raw IPv4 addresses in big-endian order, which is what the
	// peer seeding code expects (0x3b1172d2 is 59.17.114.210).
	Addrs []uint32
}

func newSeeds(cfg SeedsConfig) Seeds {
	return Seeds{
		dns:  append([]string(nil), cfg.DNS...),
		http: append([]HTTPSeed(nil), cfg.HTTP...),
		addr: append([]uint32(nil), cfg.Addrs...),
	}
}

// DNS returns the DNS seed hostnames in order.
func (s Seeds) DNS() []string {
	return append([]string(nil), s.dns...)
}

// HTTP returns the HTTP discovery endpoints. The list may be empty.
func (s Seeds) HTTP() []HTTPSeed {
	return append([]HTTPSeed(nil), s.http...)
}

// Addrs returns the raw big-endian IPv4 seed addresses.
func (s Seeds) Addrs() []uint32 {
	return append([]uint32(nil), s.addr...)
}

// AddrIPs decodes Addrs into IPv4 addresses.
func (s Seeds) AddrIPs() []net.IP {
	out := make([]net.IP, 0, len(s.addr))
	for _, a := range s.addr {
		b := bigendian.Uint32ToBytes(a)
		out = append(out, net.IPv4(b[0], b[1], b[2], b[3]))
	}
	return out
}
