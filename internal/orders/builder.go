package orders

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/outcomelabs/clobcore/pkg/signer"
	"github.com/outcomelabs/clobcore/pkg/types"
)

// BuildParams are the caller's trade intent.
type BuildParams struct {
	TokenID    string     // outcome token being bought or sold
	Price      float64    // entry price, a probability in (0, 1) exclusive
	Size       float64    // size in whole units of the settlement asset
	Side       types.Side // Buy or Sell
	Expiration int64      // unix timestamp after which the order is invalid
	ChainID    int64      // defaults to Polygon (137) when zero
}

// orderTypes is the 12-field Order descriptor. Field order is part of the
// signed hash and must not change.
var orderTypes = map[string][]types.TypedField{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	"Order": {
		{Name: "salt", Type: "uint256"},
		{Name: "maker", Type: "address"},
		{Name: "signer", Type: "address"},
		{Name: "taker", Type: "address"},
		{Name: "tokenId", Type: "uint256"},
		{Name: "makerAmount", Type: "uint256"},
		{Name: "takerAmount", Type: "uint256"},
		{Name: "expiration", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
		{Name: "feeRateBps", Type: "uint256"},
		{Name: "side", Type: "uint8"},
		{Name: "signatureType", Type: "uint8"},
	},
}

// BuildSignedOrder validates the trade intent, constructs the canonical typed
// order and signs it with the injected wallet capability. Maker and signer
// are the same wallet; salt and nonce make two builds of the same intent
// produce different signatures, which prevents order-hash collisions but is
// not idempotency protection.
//
// The returned SignedOrder carries the domain and type descriptors verbatim:
// the relay recomputes the signed hash from exactly this payload.
func BuildSignedOrder(params BuildParams, wallet signer.TypedDataSigner) (*types.SignedOrder, error) {
	if err := validate(params); err != nil {
		OrdersBuiltTotal.WithLabelValues("validation_error").Inc()
		return nil, err
	}

	chainID := params.ChainID
	if chainID == 0 {
		chainID = defaultChainID
	}

	address := wallet.Address().Hex()

	salt, err := newSalt()
	if err != nil {
		return nil, err
	}

	makerAmount := int64(math.Floor(params.Size * collateralUnits))
	takerAmount := int64(math.Floor(params.Price * params.Size * collateralUnits))

	value := types.TypedOrder{
		Salt:          salt.String(),
		Maker:         address,
		Signer:        address,
		Taker:         nullAddress,
		TokenID:       params.TokenID,
		MakerAmount:   strconv.FormatInt(makerAmount, 10),
		TakerAmount:   strconv.FormatInt(takerAmount, 10),
		Expiration:    strconv.FormatInt(params.Expiration, 10),
		Nonce:         strconv.FormatInt(time.Now().Unix(), 10),
		FeeRateBps:    "0",
		Side:          int(params.Side),
		SignatureType: 0, // EOA
	}

	domain := types.OrderDomain{
		Name:              exchangeDomainName,
		Version:           exchangeDomainVersion,
		ChainID:           chainID,
		VerifyingContract: verifyingContract,
	}

	sig, err := wallet.SignTypedData(orderTypedData(domain, value))
	if err != nil {
		OrdersBuiltTotal.WithLabelValues("signing_error").Inc()
		return nil, &types.SigningError{Op: "order", Err: err}
	}

	OrdersBuiltTotal.WithLabelValues("ok").Inc()

	return &types.SignedOrder{
		Domain:    domain,
		Types:     orderTypes,
		Value:     value,
		Signature: hexutil.Encode(sig),
	}, nil
}

func validate(params BuildParams) error {
	if params.TokenID == "" {
		return &types.ValidationError{Field: "tokenId", Message: "cannot be empty"}
	}
	if params.Price <= 0 || params.Price >= 1 {
		return &types.ValidationError{
			Field:   "price",
			Message: fmt.Sprintf("must be in (0, 1) exclusive, got %v", params.Price),
		}
	}
	if params.Size <= 0 {
		return &types.ValidationError{
			Field:   "size",
			Message: fmt.Sprintf("must be positive, got %v", params.Size),
		}
	}
	if params.Expiration <= time.Now().Unix() {
		return &types.ValidationError{Field: "expiration", Message: "must be a future unix timestamp"}
	}
	if params.Side != types.Buy && params.Side != types.Sell {
		return &types.ValidationError{
			Field:   "side",
			Message: fmt.Sprintf("must be Buy (0) or Sell (1), got %d", params.Side),
		}
	}
	return nil
}

// newSalt draws a random per-order value in [0, saltRange).
func newSalt() (*big.Int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(saltRange))
	if err != nil {
		return nil, fmt.Errorf("draw salt: %w", err)
	}
	return n, nil
}

// orderTypedData mirrors the wire structures into go-ethereum's signer types.
func orderTypedData(domain types.OrderDomain, value types.TypedOrder) apitypes.TypedData {
	apiTypes := apitypes.Types{}
	for name, fields := range orderTypes {
		list := make([]apitypes.Type, 0, len(fields))
		for _, f := range fields {
			list = append(list, apitypes.Type{Name: f.Name, Type: f.Type})
		}
		apiTypes[name] = list
	}

	return apitypes.TypedData{
		Types:       apiTypes,
		PrimaryType: "Order",
		Domain: apitypes.TypedDataDomain{
			Name:              domain.Name,
			Version:           domain.Version,
			ChainId:           ethmath.NewHexOrDecimal256(domain.ChainID),
			VerifyingContract: domain.VerifyingContract,
		},
		Message: apitypes.TypedDataMessage{
			"salt":          value.Salt,
			"maker":         value.Maker,
			"signer":        value.Signer,
			"taker":         value.Taker,
			"tokenId":       value.TokenID,
			"makerAmount":   value.MakerAmount,
			"takerAmount":   value.TakerAmount,
			"expiration":    value.Expiration,
			"nonce":         value.Nonce,
			"feeRateBps":    value.FeeRateBps,
			"side":          strconv.Itoa(value.Side),
			"signatureType": strconv.Itoa(value.SignatureType),
		},
	}
}
