package keyring

import (
	"errors"
	"testing"
)

func TestSetToken(t *testing.T) {
	origSet := keyringSet
	origRandRead := randRead
	defer func() {
		keyringSet = origSet
		randRead = origRandRead
	}()

	var setApp, setKey, setValue string
	keyringSet = func(app, key, value string) error {
		setApp = app
		setKey = key
		setValue = value
		return nil
	}
	randRead = func(b []byte) (int, error) {
		for i := range b {
			b[i] = byte(i)
		}
		return len(b), nil
	}

	kr := NewKeyring()
	token, err := kr.SetToken()
	if err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(token))
	}
	if setApp != kr.AppName || setKey != kr.KeyField || setValue != token {
		t.Fatalf("unexpected set call: %q %q %q", setApp, setKey, setValue)
	}
}

func TestEnsureToken_ReturnsExisting(t *testing.T) {
	origGet := keyringGet
	origSet := keyringSet
	defer func() {
		keyringGet = origGet
		keyringSet = origSet
	}()

	keyringGet = func(app, key string) (string, error) {
		return "existing-token", nil
	}
	keyringSet = func(string, string, string) error {
		t.Fatal("EnsureToken regenerated an existing token")
		return nil
	}

	kr := NewKeyring()
	token, err := kr.EnsureToken()
	if err != nil {
		t.Fatalf("EnsureToken: %v", err)
	}
	if token != "existing-token" {
		t.Fatalf("got %q", token)
	}
}

func TestEnsureToken_GeneratesWhenAbsent(t *testing.T) {
	origGet := keyringGet
	origSet := keyringSet
	origRandRead := randRead
	defer func() {
		keyringGet = origGet
		keyringSet = origSet
		randRead = origRandRead
	}()

	var stored string
	keyringGet = func(string, string) (string, error) {
		if stored == "" {
			return "", errors.New("secret not found")
		}
		return stored, nil
	}
	keyringSet = func(_, _, value string) error {
		stored = value
		return nil
	}
	randRead = func(b []byte) (int, error) {
		for i := range b {
			b[i] = 0x07
		}
		return len(b), nil
	}

	kr := NewKeyring()
	first, err := kr.EnsureToken()
	if err != nil {
		t.Fatalf("EnsureToken: %v", err)
	}
	second, err := kr.EnsureToken()
	if err != nil {
		t.Fatalf("EnsureToken: %v", err)
	}
	if first != second {
		t.Fatalf("token not stable: %q vs %q", first, second)
	}
}

func TestSetToken_RandError(t *testing.T) {
	origRandRead := randRead
	defer func() { randRead = origRandRead }()

	randRead = func(b []byte) (int, error) { return 0, errors.New("rand fail") }
	if _, err := NewKeyring().SetToken(); err == nil {
		t.Fatal("expected rand error")
	}
}

func TestDeleteToken(t *testing.T) {
	origDelete := keyringDelete
	defer func() { keyringDelete = origDelete }()

	var deleteApp, deleteKey string
	keyringDelete = func(app, key string) error {
		deleteApp = app
		deleteKey = key
		return nil
	}
	kr := NewKeyring()
	if err := kr.DeleteToken(); err != nil {
		t.Fatalf("DeleteToken: %v", err)
	}
	if deleteApp != kr.AppName || deleteKey != kr.KeyField {
		t.Fatalf("unexpected delete call: %q %q", deleteApp, deleteKey)
	}
}
