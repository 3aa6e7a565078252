// Package ipinterval converts IPv4 address ranges to and from interval
// sets. An address is represented by its 32-bit value, so the range
// 10.0.0.0-10.0.0.255 becomes [167772160, 167772415].
package ipinterval

import (
	"encoding/binary"
	"fmt"
	"math"
	"net/netip"
	"strings"

	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/multiset"
	"go4.org/netipx"
)

// ParseRange reads an address, a prefix ("10.0.0.0/24") or an inclusive
// range ("10.0.0.1-10.0.0.9").
func ParseRange(s string) (netipx.IPRange, error) {
	switch {
	case strings.Contains(s, "/"):
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netipx.IPRange{}, err
		}
		return netipx.RangeOfPrefix(p), nil
	case strings.Contains(s, "-"):
		return netipx.ParseIPRange(s)
	default:
		a, err := netip.ParseAddr(s)
		if err != nil {
			return netipx.IPRange{}, err
		}
		return netipx.IPRangeFrom(a, a), nil
	}
}

// FromRange returns the closed interval of the address values in r.
func FromRange(r netipx.IPRange) (interval.Interval, error) {
	if !r.IsValid() {
		return interval.Interval{}, fmt.Errorf("invalid ip range %s", r)
	}
	if !r.From().Is4() {
		return interval.Interval{}, fmt.Errorf("ip range %s is not IPv4", r)
	}
	return interval.Closed(float64(toUint32(r.From())), float64(toUint32(r.To())))
}

// FromIPSet returns the interval set of the address values in s.
func FromIPSet(s *netipx.IPSet) (multiset.MultiSet, error) {
	var b multiset.Builder
	for _, r := range s.Ranges() {
		i, err := FromRange(r)
		if err != nil {
			return multiset.MultiSet{}, err
		}
		b.Add(i)
	}
	return b.Set()
}

// ToIPSet returns the addresses whose values lie in m. Open and
// fractional bounds are tightened to the nearest address inside.
func ToIPSet(m multiset.MultiSet) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, i := range m.Members() {
		from, to, ok := addressBounds(i)
		if !ok {
			continue
		}
		if from < 0 || to > math.MaxUint32 {
			return nil, fmt.Errorf("interval %s is outside of the IPv4 address space", i)
		}
		b.AddRange(netipx.IPRangeFrom(fromUint32(uint32(from)), fromUint32(uint32(to))))
	}
	return b.IPSet()
}

// addressBounds returns the first and last integer value inside i. ok is
// false when i holds no integer.
func addressBounds(i interval.Interval) (from, to float64, ok bool) {
	from = math.Ceil(i.Low())
	if from == i.Low() && i.LOpen() {
		from++
	}
	to = math.Floor(i.High())
	if to == i.High() && i.HOpen() {
		to--
	}
	return from, to, from <= to
}

func toUint32(a netip.Addr) uint32 {
	b := a.As4()
	return binary.BigEndian.Uint32(b[:])
}

func fromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}
