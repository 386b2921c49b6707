// Package auth reads the drive bearer token from the system keyring or the environment.
// The token is never acquired here: the operator copies it from a logged-in browser session.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pikbatch/pikbatch/constant"
	"github.com/zalando/go-keyring"
)

// EnvToken overrides the stored token when set.
const EnvToken = "PIKBATCH_ACCESS_TOKEN"

const service = "pikbatch"

// ErrMissingCredential is returned when no token is available under the fixed key.
var ErrMissingCredential = errors.New("missing credential: no " + constant.TokenKey + " found, run \"pikbatch auth set\" first")

// Store is a string-keyed credential source.
type Store interface {
	Get(key string) (string, error)
}

// Keyring is the Store backed by the operating system keyring.
type Keyring struct{}

func (Keyring) Get(key string) (string, error) {
	return keyring.Get(service, key)
}

// Env is the Store backed by process environment variables, keyed by the variable name.
type Env struct{}

func (Env) Get(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", keyring.ErrNotFound
	}
	return value, nil
}

// Default is the credential source used by the CLI: the environment first, then the keyring.
func Default() Store {
	return chain{
		{store: Env{}, key: EnvToken},
		{store: Keyring{}},
	}
}

type link struct {
	store Store
	key   string
}

// chain tries stores in order, translating the requested key per store when needed.
type chain []link

func (c chain) Get(key string) (string, error) {
	for _, l := range c {
		k := key
		if l.key != "" {
			k = l.key
		}

		value, err := l.store.Get(k)
		if err == nil && strings.TrimSpace(value) != "" {
			return value, nil
		}
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return "", err
		}
	}
	return "", keyring.ErrNotFound
}

// Token reads the drive token from the store. Absence is ErrMissingCredential.
func Token(store Store) (string, error) {
	token, err := store.Get(constant.TokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrMissingCredential
	}
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingCredential
	}
	return token, nil
}

// SetToken persists the drive token to the system keyring.
func SetToken(token string) error {
	return keyring.Set(service, constant.TokenKey, strings.TrimSpace(token))
}

// DeleteToken removes the drive token from the system keyring. Removing an absent token is not an error.
func DeleteToken() error {
	if err := keyring.Delete(service, constant.TokenKey); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}
