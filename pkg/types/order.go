package types

// Side is the taker direction of an order, encoded as 0/1 in the signed payload.
type Side int

const (
	Buy  Side = 0
	Sell Side = 1
)

// String returns the wire name of the side.
func (s Side) String() string {
	if s == Sell {
		return "SELL"
	}
	return "BUY"
}

// OrderType controls how the relay's matching engine treats an order.
type OrderType string

const (
	GTC OrderType = "GTC" // good till cancelled
	FOK OrderType = "FOK" // fill or kill
	GTD OrderType = "GTD" // good till date (expiration)
)

// OrderDomain is the EIP-712 domain transmitted verbatim with each signed
// order so the relay can re-derive the exact hash that was signed.
type OrderDomain struct {
	Name              string `json:"name"`
	Version           string `json:"version"`
	ChainID           int64  `json:"chainId"`
	VerifyingContract string `json:"verifyingContract"`
}

// TypedField is one field of an EIP-712 type descriptor.
type TypedField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TypedOrder is the canonical unsigned order record. All uint256 fields are
// decimal strings; amounts are in the settlement asset's smallest unit
// (6-decimal fixed point).
type TypedOrder struct {
	Salt          string `json:"salt"`
	Maker         string `json:"maker"`
	Signer        string `json:"signer"`
	Taker         string `json:"taker"` // null address: any counter-party may fill
	TokenID       string `json:"tokenId"`
	MakerAmount   string `json:"makerAmount"`
	TakerAmount   string `json:"takerAmount"`
	Expiration    string `json:"expiration"`
	Nonce         string `json:"nonce"`
	FeeRateBps    string `json:"feeRateBps"`
	Side          int    `json:"side"`
	SignatureType int    `json:"signatureType"` // 0 = EOA
}

// SignedOrder is a TypedOrder plus its signature and the exact domain and
// type descriptors used to produce it. Field renaming or reformatting breaks
// relay-side verification, so everything here is transmitted as-is.
type SignedOrder struct {
	Domain    OrderDomain             `json:"domain"`
	Types     map[string][]TypedField `json:"types"`
	Value     TypedOrder              `json:"value"`
	Signature string                  `json:"signature"`
}

// RelayAck is the relay's acknowledgement of a submitted order. The payload
// is opaque to this core; only the fields callers commonly inspect are named.
type RelayAck struct {
	Success  bool   `json:"success"`
	ErrorMsg string `json:"errorMsg"`
	OrderID  string `json:"orderId"`
	Status   string `json:"status"`
}
