package pricing

import (
	"math"
	"time"

	"github.com/outcomelabs/clobcore/pkg/types"
)

// ComputeExecutablePrices routes a buy on either side of a binary market to
// its cheapest execution path. The NO side is the economic complement of the
// YES side (YES + NO ≈ 1), so when a book is thin or unquoted a synthetic
// quote is derived from the opposite side via 1 - price:
//
//	priceFor     = min(askYes, 1 - bidNo)
//	priceAgainst = min(askNo, 1 - bidYes)
//
// where a missing NO quote is itself synthesized from the YES book first.
// The function is total: missing quotes degrade to a 0 price ("not
// executable") with absent odds, never an error. It runs on every price
// refresh tick.
func ComputeExecutablePrices(mp types.MarketPrices) types.ExecutablePrices {
	start := time.Now()
	defer func() { RoutingDurationSeconds.Observe(time.Since(start).Seconds()) }()

	bidNo := mp.BestBidNo
	if bidNo == nil && mp.BestAskYes != nil {
		bidNo = complement(*mp.BestAskYes)
	}

	askNo := mp.BestAskNo
	if askNo == nil && mp.BestBidYes != nil {
		askNo = complement(*mp.BestBidYes)
	}

	// Cheapest of buying YES at its ask or synthesizing a YES-equivalent
	// position by selling NO at its bid.
	priceFor := math.Inf(1)
	if mp.BestAskYes != nil {
		priceFor = *mp.BestAskYes
	}
	if bidNo != nil && 1-*bidNo < priceFor {
		priceFor = 1 - *bidNo
	}

	priceAgainst := math.Inf(1)
	if askNo != nil {
		priceAgainst = *askNo
	}
	if mp.BestBidYes != nil && 1-*mp.BestBidYes < priceAgainst {
		priceAgainst = 1 - *mp.BestBidYes
	}

	out := types.ExecutablePrices{
		PriceFor:     finiteOrZero(priceFor),
		PriceAgainst: finiteOrZero(priceAgainst),
	}

	if out.PriceFor > 0 {
		odds := 1 / out.PriceFor
		out.OddsFor = &odds
	}
	if out.PriceAgainst > 0 {
		odds := 1 / out.PriceAgainst
		out.OddsAgainst = &odds
	}

	if out.PriceFor == 0 && out.PriceAgainst == 0 {
		UnroutableQuotesTotal.Inc()
	}

	return out
}

func complement(p float64) *float64 {
	c := 1 - p
	return &c
}

// finiteOrZero maps "no quotes reachable on either route" to the 0 price the
// caller must treat as not executable.
func finiteOrZero(p float64) float64 {
	if math.IsInf(p, 0) || math.IsNaN(p) {
		return 0
	}
	return p
}
