package domain

import (
	"fmt"
	"strings"
)

// Tier buckets an influencer by follower count.
type Tier string

const (
	TierNano  Tier = "Nano"
	TierMicro Tier = "Micro"
	TierMid   Tier = "Mid"
	TierMacro Tier = "Macro"
	TierMega  Tier = "Mega"
)

// Tiers is the canonical tier order used by every breakdown.
var Tiers = []Tier{TierNano, TierMicro, TierMid, TierMacro, TierMega}

// Classify derives the tier from a follower count.
func Classify(followers int64) Tier {
	switch {
	case followers < 10_000:
		return TierNano
	case followers < 100_000:
		return TierMicro
	case followers < 500_000:
		return TierMid
	case followers < 1_000_000:
		return TierMacro
	default:
		return TierMega
	}
}

// Index returns the position of t in Tiers, or len(Tiers) for unknown values.
func (t Tier) Index() int {
	for i, known := range Tiers {
		if t == known {
			return i
		}
	}
	return len(Tiers)
}

func ParseTier(s string) (Tier, error) {
	for _, known := range Tiers {
		if strings.EqualFold(strings.TrimSpace(s), string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown tier %q: %w", s, ErrBadInput)
}
