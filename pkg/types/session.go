package types

// L2Credentials is the short-lived API key/passphrase pair issued by the
// relay after verifying a wallet-signed challenge.
type L2Credentials struct {
	Key        string `json:"key"`
	Passphrase string `json:"passphrase"`
}

// ClobSession couples a wallet address with its derived trading credentials.
// It is owned by the caller that derived it and is never mutated, only
// replaced by re-derivation. Expiry is enforced server-side.
type ClobSession struct {
	Address string
	L2      L2Credentials
}
