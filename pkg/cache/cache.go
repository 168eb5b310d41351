// Package cache persists the OAuth2 access token handed to the backup tool.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

const (
	dirPerms  = 0o700
	filePerms = 0o600
)

// Token is the cached token record: the provider's token response plus the granted scope.
type Token struct {
	oauth2.Token
	Scope string `json:"scope,omitempty"`
}

// FromOAuth2 wraps a freshly exchanged token, keeping the scope the provider returned.
func FromOAuth2(tok *oauth2.Token) *Token {
	t := &Token{Token: *tok}
	if scope, ok := tok.Extra("scope").(string); ok {
		t.Scope = scope
	}
	return t
}

// OAuth2 returns the token in the form the oauth2 transport expects.
func (t *Token) OAuth2() *oauth2.Token {
	tok := t.Token
	return &tok
}

// Load reads the token cached at path.
// Returns (nil, nil) if the file does not exist. The token is returned as stored;
// an expired token is only reported.
func Load(path string, logger zerolog.Logger) (*Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading access file: %w", err)
	}

	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parsing access file %s: %w", path, err)
	}

	if !tok.Expiry.IsZero() && tok.Expiry.Before(time.Now()) {
		logger.Warn().Time("expiry", tok.Expiry).Str("path", path).Msg("cached access token has expired")
	}

	return &tok, nil
}

// Save writes the token to path, creating the parent directory with owner-only permissions.
func Save(path string, tok *Token) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerms); err != nil {
		return fmt.Errorf("creating access file directory: %w", err)
	}

	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding access token: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, filePerms); err != nil {
		return fmt.Errorf("writing access file: %w", err)
	}

	return nil
}
