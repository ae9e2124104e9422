package types

// MarketPrices holds top-of-book quotes for the two outcome tokens of a
// binary market, each a probability in [0, 1]. A nil field means that side of
// the book is unquoted. Market data is supplied externally; this core only
// consumes the shape.
type MarketPrices struct {
	BestBidYes *float64
	BestAskYes *float64
	BestBidNo  *float64
	BestAskNo  *float64
}

// ExecutablePrices is the routed entry price and decimal odds for buying each
// side of a binary market. A zero price signals "not executable" (no quotes
// reachable on either route); odds are nil whenever the corresponding price
// is not executable. Derived, never persisted.
type ExecutablePrices struct {
	PriceFor     float64  `json:"priceFor"`
	PriceAgainst float64  `json:"priceAgainst"`
	OddsFor      *float64 `json:"oddsFor,omitempty"`
	OddsAgainst  *float64 `json:"oddsAgainst,omitempty"`
}
