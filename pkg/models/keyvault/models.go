// Package keyvault holds the Key Vault key listing models.
package keyvault

import (
	"time"

	"github.com/gork-labs/azwire/pkg/unions"
)

// KeyItem - The key item containing key metadata.
type KeyItem struct {
	// Key identifier.
	KID *string `json:"kid,omitempty"`

	// The key management attributes.
	Attributes *KeyAttributes `json:"attributes,omitempty"`

	// Application specific metadata in the form of key-value pairs.
	Tags map[string]*string `json:"tags,omitempty"`

	// READ-ONLY; True if the key's lifetime is managed by key vault. If this is a key backing a certificate, then managed will
	// be true.
	Managed *bool `json:"managed,omitempty"`
}

// KeyAttributes - The attributes of a key managed by the key vault service. Times
// travel as seconds since the Unix epoch; see MarshalJSON.
type KeyAttributes struct {
	// Determines whether the object is enabled.
	Enabled *bool `json:"enabled,omitempty"`

	// Expiry date in UTC.
	Expires *time.Time `json:"exp,omitempty"`

	// Not before date in UTC.
	NotBefore *time.Time `json:"nbf,omitempty"`

	// Indicates if the private key can be exported.
	Exportable *bool `json:"exportable,omitempty"`

	// READ-ONLY; Creation time in UTC.
	Created *time.Time `json:"created,omitempty"`

	// READ-ONLY; Last updated time in UTC.
	Updated *time.Time `json:"updated,omitempty"`

	// READ-ONLY; softDelete data retention days. Value should be >=7 and <=90 when softDelete enabled, otherwise 0.
	RecoverableDays *int32 `json:"recoverableDays,omitempty"`

	// READ-ONLY; Reflects the deletion recovery level currently in effect for keys in the current vault.
	RecoveryLevel *DeletionRecoveryLevel `json:"recoveryLevel,omitempty"`
}

// KeyListResult - The key list result.
type KeyListResult struct {
	// READ-ONLY; The URL to get the next set of keys.
	NextLink *string `json:"nextLink,omitempty"`

	// READ-ONLY; A response message containing a list of keys in the key vault along with a link to the next page of keys.
	Value []*KeyItem `json:"value,omitempty"`
}

// JSONWebKey - As of http://tools.ietf.org/html/draft-ietf-jose-json-web-key-18. Key
// material travels base64url encoded without padding.
type JSONWebKey struct {
	// Key identifier.
	KID *string `json:"kid,omitempty"`

	// JsonWebKey Key Type (kty).
	Kty *JSONWebKeyType `json:"kty,omitempty"`

	KeyOps []*JSONWebKeyOperation `json:"key_ops,omitempty"`

	// Elliptic curve name.
	Crv *JSONWebKeyCurveName `json:"crv,omitempty"`

	// RSA modulus.
	N []byte `json:"n,omitempty"`

	// RSA public exponent.
	E []byte `json:"e,omitempty"`

	// X component of an EC public key.
	X []byte `json:"x,omitempty"`

	// Y component of an EC public key.
	Y []byte `json:"y,omitempty"`
}

// Unions returns the registries of every discriminated union in the package.
// Key Vault key models carry none.
func Unions() []unions.Descriptor {
	return nil
}
