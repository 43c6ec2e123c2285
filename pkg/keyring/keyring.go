// Package keyring stores the web bridge access token in the operating
// system's native keyring service, with a file-based fallback when no
// keyring is available.
package keyring

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/zalando/go-keyring"
)

// Keyring addresses one secret in the system keyring.
type Keyring struct {
	AppName  string
	KeyField string
}

var (
	keyringSet    = keyring.Set
	keyringGet    = keyring.Get
	keyringDelete = keyring.Delete
	randRead      = rand.Read
)

// NewKeyring addresses the web bridge token.
func NewKeyring() *Keyring {
	return &Keyring{
		AppName:  "pomod",
		KeyField: "web-token",
	}
}

// SetToken generates a fresh 32-byte random token, stores its hex form
// in the keyring, and returns it.
func (k *Keyring) SetToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := randRead(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)
	if err := keyringSet(k.AppName, k.KeyField, token); err != nil {
		return "", err
	}
	return token, nil
}

// Token returns the stored token.
func (k *Keyring) Token() (string, error) {
	return keyringGet(k.AppName, k.KeyField)
}

// EnsureToken returns the stored token, generating one first if none
// exists yet.
func (k *Keyring) EnsureToken() (string, error) {
	token, err := keyringGet(k.AppName, k.KeyField)
	if err == nil && token != "" {
		return token, nil
	}
	return k.SetToken()
}

// DeleteToken removes the stored token.
func (k *Keyring) DeleteToken() error {
	return keyringDelete(k.AppName, k.KeyField)
}
