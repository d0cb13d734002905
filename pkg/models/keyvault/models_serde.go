package keyvault

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/gork-labs/azwire/pkg/pager"
)

type keyAttributesWire struct {
	Enabled         *bool                  `json:"enabled,omitempty"`
	Expires         *int64                 `json:"exp,omitempty"`
	NotBefore       *int64                 `json:"nbf,omitempty"`
	Exportable      *bool                  `json:"exportable,omitempty"`
	Created         *int64                 `json:"created,omitempty"`
	Updated         *int64                 `json:"updated,omitempty"`
	RecoverableDays *int32                 `json:"recoverableDays,omitempty"`
	RecoveryLevel   *DeletionRecoveryLevel `json:"recoveryLevel,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (a KeyAttributes) MarshalJSON() ([]byte, error) {
	return json.Marshal(keyAttributesWire{
		Enabled:         a.Enabled,
		Expires:         toUnix(a.Expires),
		NotBefore:       toUnix(a.NotBefore),
		Exportable:      a.Exportable,
		Created:         toUnix(a.Created),
		Updated:         toUnix(a.Updated),
		RecoverableDays: a.RecoverableDays,
		RecoveryLevel:   a.RecoveryLevel,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *KeyAttributes) UnmarshalJSON(data []byte) error {
	var w keyAttributesWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("unmarshalling type KeyAttributes: %w", err)
	}
	*a = KeyAttributes{
		Enabled:         w.Enabled,
		Expires:         fromUnix(w.Expires),
		NotBefore:       fromUnix(w.NotBefore),
		Exportable:      w.Exportable,
		Created:         fromUnix(w.Created),
		Updated:         fromUnix(w.Updated),
		RecoverableDays: w.RecoverableDays,
		RecoveryLevel:   w.RecoveryLevel,
	}
	return nil
}

func toUnix(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	s := t.Unix()
	return &s
}

func fromUnix(s *int64) *time.Time {
	if s == nil {
		return nil
	}
	t := time.Unix(*s, 0).UTC()
	return &t
}

type jsonWebKeyWire struct {
	KID    *string                `json:"kid,omitempty"`
	Kty    *JSONWebKeyType        `json:"kty,omitempty"`
	KeyOps []*JSONWebKeyOperation `json:"key_ops,omitempty"`
	Crv    *JSONWebKeyCurveName   `json:"crv,omitempty"`
	N      *string                `json:"n,omitempty"`
	E      *string                `json:"e,omitempty"`
	X      *string                `json:"x,omitempty"`
	Y      *string                `json:"y,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (k JSONWebKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonWebKeyWire{
		KID:    k.KID,
		Kty:    k.Kty,
		KeyOps: k.KeyOps,
		Crv:    k.Crv,
		N:      encodeBase64URL(k.N),
		E:      encodeBase64URL(k.E),
		X:      encodeBase64URL(k.X),
		Y:      encodeBase64URL(k.Y),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *JSONWebKey) UnmarshalJSON(data []byte) error {
	var w jsonWebKeyWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("unmarshalling type JSONWebKey: %w", err)
	}
	out := JSONWebKey{KID: w.KID, Kty: w.Kty, KeyOps: w.KeyOps, Crv: w.Crv}
	for _, f := range []struct {
		name string
		src  *string
		dst  *[]byte
	}{
		{"n", w.N, &out.N},
		{"e", w.E, &out.E},
		{"x", w.X, &out.X},
		{"y", w.Y, &out.Y},
	} {
		b, err := decodeBase64URL(f.src)
		if err != nil {
			return fmt.Errorf("unmarshalling type JSONWebKey: field %q: %w", f.name, err)
		}
		*f.dst = b
	}
	*k = out
	return nil
}

func encodeBase64URL(b []byte) *string {
	if b == nil {
		return nil
	}
	s := runtime.EncodeByteArray(b, runtime.Base64URLFormat)
	return &s
}

// decodeBase64URL accepts key material with or without trailing padding.
func decodeBase64URL(s *string) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	var b []byte
	if err := runtime.DecodeByteArray(strings.TrimRight(*s, "="), &b, runtime.Base64URLFormat); err != nil {
		return nil, err
	}
	return b, nil
}

// NextPageLink implements pager.Page.
func (r KeyListResult) NextPageLink() string { return pager.Link(r.NextLink) }
