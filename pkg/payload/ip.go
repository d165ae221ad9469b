package payload

import "net/netip"

// nonPublicRanges lists private and reserved blocks a consumer address must
// not fall into.
var nonPublicRanges = []netip.Prefix{
	// private
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("fc00::/7"),
	// reserved
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("127.0.0.0/8"),
	netip.MustParsePrefix("169.254.0.0/16"),
	netip.MustParsePrefix("240.0.0.0/4"),
	netip.MustParsePrefix("::/128"),
	netip.MustParsePrefix("::1/128"),
	netip.MustParsePrefix("::ffff:0:0/96"),
	netip.MustParsePrefix("fe80::/10"),
}

// publicIP reports whether value is an IPv4 or IPv6 literal outside every
// private and reserved range. Zoned addresses are rejected.
func publicIP(value string) bool {
	addr, err := netip.ParseAddr(value)
	if err != nil || addr.Zone() != "" {
		return false
	}
	for _, p := range nonPublicRanges {
		if p.Contains(addr) {
			return false
		}
	}
	return true
}
