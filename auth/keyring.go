// Package auth stores per-source bearer tokens in the system keyring.
package auth

import (
	"errors"
	"fmt"

	"github.com/statepane/statepane/constant"
	"github.com/zalando/go-keyring"
)

func user(source string) string {
	return source + "-token"
}

// SetToken stores the token of source.
func SetToken(source, token string) error {
	if err := keyring.Set(constant.App, user(source), token); err != nil {
		return fmt.Errorf("store token for %s: %w", source, err)
	}
	return nil
}

// GetToken returns the token of source, or "" if none is stored.
func GetToken(source string) (string, error) {
	token, err := keyring.Get(constant.App, user(source))
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return token, err
}

// DeleteToken removes the token of source. Deleting a missing token is not an error.
func DeleteToken(source string) error {
	err := keyring.Delete(constant.App, user(source))
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
