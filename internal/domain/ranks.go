package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Rank struct {
	Code              RankCode        `toml:"code" yaml:"code"`
	Name              string          `toml:"name" yaml:"name"`
	Rate              decimal.Decimal `toml:"rate" yaml:"rate"`
	VolumeRequirement decimal.Decimal `toml:"volume_requirement" yaml:"volume_requirement"`
	ActivePartners    int             `toml:"active_partners" yaml:"active_partners"`
}

// RankPlan is an ordered list of ranks, lowest first. The last rank is the top rank.
type RankPlan struct {
	Ranks []Rank `toml:"ranks" yaml:"ranks"`
}

var ErrInvalidRankPlan = errors.New("invalid rank plan")

func DefaultRankPlan() RankPlan {
	return RankPlan{Ranks: []Rank{
		{Code: "start", Name: "Start", Rate: decimal.RequireFromString("0.04"), VolumeRequirement: decimal.Zero, ActivePartners: 0},
		{Code: "builder", Name: "Builder", Rate: decimal.RequireFromString("0.08"), VolumeRequirement: decimal.NewFromInt(10000), ActivePartners: 3},
		{Code: "leader", Name: "Leader", Rate: decimal.RequireFromString("0.12"), VolumeRequirement: decimal.NewFromInt(50000), ActivePartners: 6},
		{Code: "manager", Name: "Manager", Rate: decimal.RequireFromString("0.15"), VolumeRequirement: decimal.NewFromInt(125000), ActivePartners: 10},
		{Code: "director", Name: "Director", Rate: decimal.RequireFromString("0.18"), VolumeRequirement: decimal.NewFromInt(250000), ActivePartners: 12},
	}}
}

// Validate checks that codes are unique and that rates and requirements never
// decrease along the plan.
func (p RankPlan) Validate() error {
	if len(p.Ranks) == 0 {
		return fmt.Errorf("%w: no ranks", ErrInvalidRankPlan)
	}
	seen := make(map[RankCode]struct{}, len(p.Ranks))
	for i, r := range p.Ranks {
		if r.Code == "" {
			return fmt.Errorf("%w: rank %d has no code", ErrInvalidRankPlan, i)
		}
		if _, ok := seen[r.Code]; ok {
			return fmt.Errorf("%w: duplicate rank %q", ErrInvalidRankPlan, r.Code)
		}
		seen[r.Code] = struct{}{}
		if r.Rate.IsNegative() || r.VolumeRequirement.IsNegative() || r.ActivePartners < 0 {
			return fmt.Errorf("%w: rank %q has negative values", ErrInvalidRankPlan, r.Code)
		}
		if i > 0 {
			prev := p.Ranks[i-1]
			if r.Rate.LessThan(prev.Rate) || r.VolumeRequirement.LessThan(prev.VolumeRequirement) {
				return fmt.Errorf("%w: rank %q is below %q", ErrInvalidRankPlan, r.Code, prev.Code)
			}
		}
	}
	return nil
}

func (p RankPlan) Entry() Rank {
	return p.Ranks[0]
}

func (p RankPlan) Top() Rank {
	return p.Ranks[len(p.Ranks)-1]
}

func (p RankPlan) MaxRate() decimal.Decimal {
	return p.Top().Rate
}

func (p RankPlan) Lookup(code RankCode) (Rank, bool) {
	for _, r := range p.Ranks {
		if r.Code == code {
			return r, true
		}
	}
	return Rank{}, false
}

// Level returns the position of the rank in the plan, or -1 for an unranked account.
func (p RankPlan) Level(code RankCode) int {
	for i, r := range p.Ranks {
		if r.Code == code {
			return i
		}
	}
	return -1
}

// Rate returns the nominal commission rate of a rank; unknown ranks earn nothing.
func (p RankPlan) Rate(code RankCode) decimal.Decimal {
	if r, ok := p.Lookup(code); ok {
		return r.Rate
	}
	return decimal.Zero
}

// Next returns the rank above code, or the top rank if code is already at the top.
func (p RankPlan) Next(code RankCode) Rank {
	lvl := p.Level(code)
	if lvl+1 < len(p.Ranks) {
		return p.Ranks[lvl+1]
	}
	return p.Top()
}

// Above returns the ranks above code, highest first.
func (p RankPlan) Above(code RankCode) []Rank {
	lvl := p.Level(code)
	out := make([]Rank, 0, len(p.Ranks))
	for i := len(p.Ranks) - 1; i > lvl; i-- {
		out = append(out, p.Ranks[i])
	}
	return out
}
