package jwtx

import (
	"errors"
	"time"
)

// KeyRing bundles the session signer with the verifier and key set built
// from it, so the app wires one value instead of three.
type KeyRing struct {
	Signer   Signer
	Verifier Verifier
	KeySet   *KeySet

	issuer   string
	audience []string
}

// NewKeyRing loads pemKey as the active signing key.
func NewKeyRing(pemKey []byte, issuer string, audience []string) (*KeyRing, error) {
	if issuer == "" {
		return nil, errors.New("jwtx: issuer is required")
	}

	signer, err := NewSignerEdDSA("", pemKey)
	if err != nil {
		return nil, err
	}
	if err := signer.Validate(); err != nil {
		return nil, err
	}

	keyset := NewKeySet()
	if err := keyset.AddSigner(signer); err != nil {
		return nil, err
	}

	return &KeyRing{
		Signer:   signer,
		Verifier: NewVerifierEdDSA(keyset, issuer, audience),
		KeySet:   keyset,
		issuer:   issuer,
		audience: audience,
	}, nil
}

// IssueSession signs a session for p.
func (k *KeyRing) IssueSession(p SessionParams, ttl time.Duration, now time.Time) (string, Claims, error) {
	claims := NewSessionClaims(p, ttl, k.issuer, k.audience, now)
	token, err := k.Signer.Sign(claims)
	if err != nil {
		return "", Claims{}, err
	}
	return token, claims, nil
}

func (k *KeyRing) IsReady() bool { return k.KeySet.IsReady() }
