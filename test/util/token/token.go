package token

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/golang-jwt/jwt/v4"
)

type custom struct {
	ObjectId string `json:"oid"`
	TenantId string `json:"tid"`
	jwt.RegisteredClaims
}

// CreateTestToken returns a signed JWT shaped like an ARM access token.
func CreateTestToken(oid, audience string) (string, error) {
	signingKey := []byte("test-secret-key")

	claims := custom{
		ObjectId: oid,
		TenantId: "00000000-0000-0000-0000-000000000000",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "test-subject",
			Audience:  []string{audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        "unique-id",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("error signing token: %v", err)
	}

	return tokenString, nil
}

// Credential is an azcore.TokenCredential handing out a fixed test token
// and recording the scopes it was asked for.
type Credential struct {
	Token  string
	Scopes [][]string
	Err    error
}

var _ azcore.TokenCredential = &Credential{}

// NewCredential returns a Credential whose token was minted by CreateTestToken.
func NewCredential() (*Credential, error) {
	t, err := CreateTestToken("11111111-1111-1111-1111-111111111111", "https://management.example.com")
	if err != nil {
		return nil, err
	}

	return &Credential{Token: t}, nil
}

func (c *Credential) GetToken(ctx context.Context, options policy.TokenRequestOptions) (azcore.AccessToken, error) {
	c.Scopes = append(c.Scopes, options.Scopes)
	if c.Err != nil {
		return azcore.AccessToken{}, c.Err
	}

	return azcore.AccessToken{Token: c.Token, ExpiresOn: time.Now().Add(time.Hour)}, nil
}
