package config

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService groups leadfinder secrets in the OS keychain.
	KeyringService = appName
	keyringAccount = "apify"
)

// Token returns the stored API token, or "" when none is stored.
func Token() (string, error) {
	tok, err := keyring.Get(KeyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(tok), nil
}

// SetToken stores token. An empty token deletes the stored one.
func SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return DeleteToken()
	}
	return keyring.Set(KeyringService, keyringAccount, token)
}

func DeleteToken() error {
	err := keyring.Delete(KeyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
