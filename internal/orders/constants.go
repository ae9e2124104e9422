package orders

const (
	// Exchange EIP-712 domain. The verifying contract is the CTF exchange on
	// Polygon; the relay re-derives the order hash against this exact domain.
	exchangeDomainName    = "Polymarket CTF Exchange"
	exchangeDomainVersion = "1"
	defaultChainID        = 137
	verifyingContract     = "0x4bFb41d5B3570DeFd03C39a9A4D8dE6Bd8B8982E"

	// Open taker: any counter-party may fill.
	nullAddress = "0x0000000000000000000000000000000000000000"

	// Settlement asset smallest unit (6-decimal fixed point).
	collateralUnits = 1e6

	// Salt is drawn from [0, saltRange). Uniqueness, not secrecy.
	saltRange = 1_000_000_000

	orderPath = "/pm-post-order"
)
