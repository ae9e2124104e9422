package orders

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/outcomelabs/clobcore/pkg/signer"
	"github.com/outcomelabs/clobcore/pkg/types"
)

const testKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func testWallet(t *testing.T) *signer.PrivateKeySigner {
	t.Helper()
	w, err := signer.NewPrivateKeySigner(testKey)
	if err != nil {
		t.Fatalf("setup signer: %v", err)
	}
	return w
}

func validParams() BuildParams {
	return BuildParams{
		TokenID:    "71321045679252212594626385532706912750332728571942532289631379312455583992563",
		Price:      0.2,
		Size:       100,
		Side:       types.Buy,
		Expiration: time.Now().Add(time.Hour).Unix(),
	}
}

func TestBuildSignedOrder_Amounts(t *testing.T) {
	order, err := BuildSignedOrder(validParams(), testWallet(t))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// price=0.2, size=100: makerAmount=floor(100*1e6), takerAmount=floor(0.2*100*1e6).
	if order.Value.MakerAmount != "100000000" {
		t.Errorf("expected makerAmount 100000000, got %s", order.Value.MakerAmount)
	}
	if order.Value.TakerAmount != "20000000" {
		t.Errorf("expected takerAmount 20000000, got %s", order.Value.TakerAmount)
	}
}

func TestBuildSignedOrder_CanonicalFields(t *testing.T) {
	wallet := testWallet(t)
	params := validParams()

	order, err := BuildSignedOrder(params, wallet)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	address := wallet.Address().Hex()
	if order.Value.Maker != address || order.Value.Signer != address {
		t.Errorf("expected maker and signer to be the wallet %s, got maker=%s signer=%s",
			address, order.Value.Maker, order.Value.Signer)
	}
	if order.Value.Taker != nullAddress {
		t.Errorf("expected open taker %s, got %s", nullAddress, order.Value.Taker)
	}
	if order.Value.FeeRateBps != "0" {
		t.Errorf("expected feeRateBps 0, got %s", order.Value.FeeRateBps)
	}
	if order.Value.Side != int(types.Buy) {
		t.Errorf("expected side 0, got %d", order.Value.Side)
	}
	if order.Value.SignatureType != 0 {
		t.Errorf("expected EOA signature type 0, got %d", order.Value.SignatureType)
	}
	if order.Value.TokenID != params.TokenID {
		t.Errorf("expected tokenId preserved, got %s", order.Value.TokenID)
	}

	if order.Domain.Name != exchangeDomainName || order.Domain.ChainID != defaultChainID {
		t.Errorf("unexpected domain: %+v", order.Domain)
	}
	if order.Domain.VerifyingContract != verifyingContract {
		t.Errorf("expected verifying contract %s, got %s", verifyingContract, order.Domain.VerifyingContract)
	}

	if len(order.Types["Order"]) != 12 {
		t.Errorf("expected 12 Order fields, got %d", len(order.Types["Order"]))
	}
	if !strings.HasPrefix(order.Signature, "0x") {
		t.Errorf("expected hex signature, got %q", order.Signature)
	}
}

func TestBuildSignedOrder_SaltDiffersAcrossBuilds(t *testing.T) {
	wallet := testWallet(t)
	params := validParams()

	first, err := BuildSignedOrder(params, wallet)
	if err != nil {
		t.Fatalf("first build failed: %v", err)
	}

	second, err := BuildSignedOrder(params, wallet)
	if err != nil {
		t.Fatalf("second build failed: %v", err)
	}

	// Amounts are deterministic; salt (and therefore signature) is not.
	if first.Value.MakerAmount != second.Value.MakerAmount {
		t.Error("expected deterministic makerAmount across builds")
	}
	if first.Value.TakerAmount != second.Value.TakerAmount {
		t.Error("expected deterministic takerAmount across builds")
	}
	if first.Value.Salt == second.Value.Salt {
		t.Error("expected salts to differ across builds")
	}
	if first.Signature == second.Signature {
		t.Error("expected signatures to differ across builds")
	}
}

func TestBuildSignedOrder_SignatureRecoversToWallet(t *testing.T) {
	wallet := testWallet(t)

	order, err := BuildSignedOrder(validParams(), wallet)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	sig, err := hexutil.Decode(order.Signature)
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}

	recovered, err := signer.RecoverAddress(orderTypedData(order.Domain, order.Value), sig)
	if err != nil {
		t.Fatalf("recover failed: %v", err)
	}

	if recovered != wallet.Address() {
		t.Errorf("signature recovered to %s, want %s", recovered.Hex(), wallet.Address().Hex())
	}
}

func TestBuildSignedOrder_Validation(t *testing.T) {
	wallet := testWallet(t)

	cases := []struct {
		name   string
		mutate func(*BuildParams)
		field  string
	}{
		{"zero price", func(p *BuildParams) { p.Price = 0 }, "price"},
		{"price of one", func(p *BuildParams) { p.Price = 1 }, "price"},
		{"negative price", func(p *BuildParams) { p.Price = -0.1 }, "price"},
		{"zero size", func(p *BuildParams) { p.Size = 0 }, "size"},
		{"negative size", func(p *BuildParams) { p.Size = -5 }, "size"},
		{"past expiration", func(p *BuildParams) { p.Expiration = time.Now().Add(-time.Minute).Unix() }, "expiration"},
		{"empty token", func(p *BuildParams) { p.TokenID = "" }, "tokenId"},
		{"bad side", func(p *BuildParams) { p.Side = types.Side(7) }, "side"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams()
			tc.mutate(&params)

			_, err := BuildSignedOrder(params, wallet)

			var validationErr *types.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected *types.ValidationError, got %T: %v", err, err)
			}
			if validationErr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, validationErr.Field)
			}
		})
	}
}

// refusingSigner simulates a wallet that rejects the signing request.
type refusingSigner struct{}

func (refusingSigner) Address() common.Address {
	return common.HexToAddress("0x1234567890abcdef1234567890abcdef12345678")
}

func (refusingSigner) SignTypedData(apitypes.TypedData) ([]byte, error) {
	return nil, errors.New("user rejected request")
}

func TestBuildSignedOrder_SigningRefused(t *testing.T) {
	_, err := BuildSignedOrder(validParams(), refusingSigner{})

	var signingErr *types.SigningError
	if !errors.As(err, &signingErr) {
		t.Fatalf("expected *types.SigningError, got %T: %v", err, err)
	}
}
