package keyvault

import "github.com/gork-labs/azwire/pkg/openenum"

// DeletionRecoveryLevel - Reflects the deletion recovery level currently in effect for keys in the current vault. If it
// contains 'Purgeable' the key can be permanently deleted by a privileged user; otherwise, only the system can purge the
// key, at the end of the retention interval.
type DeletionRecoveryLevel string

const (
	DeletionRecoveryLevelPurgeable                                  DeletionRecoveryLevel = "Purgeable"
	DeletionRecoveryLevelRecoverablePurgeable                       DeletionRecoveryLevel = "Recoverable+Purgeable"
	DeletionRecoveryLevelRecoverable                                DeletionRecoveryLevel = "Recoverable"
	DeletionRecoveryLevelRecoverableProtectedSubscription           DeletionRecoveryLevel = "Recoverable+ProtectedSubscription"
	DeletionRecoveryLevelCustomizedRecoverablePurgeable             DeletionRecoveryLevel = "CustomizedRecoverable+Purgeable"
	DeletionRecoveryLevelCustomizedRecoverable                      DeletionRecoveryLevel = "CustomizedRecoverable"
	DeletionRecoveryLevelCustomizedRecoverableProtectedSubscription DeletionRecoveryLevel = "CustomizedRecoverable+ProtectedSubscription"
)

var deletionRecoveryLevels = openenum.New("DeletionRecoveryLevel",
	openenum.V(DeletionRecoveryLevelPurgeable),
	openenum.Variant[DeletionRecoveryLevel]{Name: "RecoverablePurgeable", Value: DeletionRecoveryLevelRecoverablePurgeable},
	openenum.V(DeletionRecoveryLevelRecoverable),
	openenum.Variant[DeletionRecoveryLevel]{Name: "RecoverableProtectedSubscription", Value: DeletionRecoveryLevelRecoverableProtectedSubscription},
	openenum.Variant[DeletionRecoveryLevel]{Name: "CustomizedRecoverablePurgeable", Value: DeletionRecoveryLevelCustomizedRecoverablePurgeable},
	openenum.V(DeletionRecoveryLevelCustomizedRecoverable),
	openenum.Variant[DeletionRecoveryLevel]{Name: "CustomizedRecoverableProtectedSubscription", Value: DeletionRecoveryLevelCustomizedRecoverableProtectedSubscription},
)

// PossibleDeletionRecoveryLevelValues returns the possible values for the DeletionRecoveryLevel const type.
func PossibleDeletionRecoveryLevelValues() []DeletionRecoveryLevel {
	return deletionRecoveryLevels.Values()
}

// IsKnown reports whether l is a documented DeletionRecoveryLevel.
func (l DeletionRecoveryLevel) IsKnown() bool { return deletionRecoveryLevels.IsKnown(l) }

// MarshalJSON implements json.Marshaler.
func (l DeletionRecoveryLevel) MarshalJSON() ([]byte, error) {
	return deletionRecoveryLevels.MarshalJSON(l)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *DeletionRecoveryLevel) UnmarshalJSON(data []byte) error {
	return deletionRecoveryLevels.UnmarshalJSON(data, l)
}

// JSONWebKeyCurveName - Elliptic curve name.
type JSONWebKeyCurveName string

const (
	JSONWebKeyCurveNameP256  JSONWebKeyCurveName = "P-256"
	JSONWebKeyCurveNameP384  JSONWebKeyCurveName = "P-384"
	JSONWebKeyCurveNameP521  JSONWebKeyCurveName = "P-521"
	JSONWebKeyCurveNameP256K JSONWebKeyCurveName = "P-256K"
)

var jsonWebKeyCurveNames = openenum.New("JsonWebKeyCurveName",
	openenum.Variant[JSONWebKeyCurveName]{Name: "P256", Value: JSONWebKeyCurveNameP256},
	openenum.Variant[JSONWebKeyCurveName]{Name: "P384", Value: JSONWebKeyCurveNameP384},
	openenum.Variant[JSONWebKeyCurveName]{Name: "P521", Value: JSONWebKeyCurveNameP521},
	openenum.Variant[JSONWebKeyCurveName]{Name: "P256K", Value: JSONWebKeyCurveNameP256K},
)

// PossibleJSONWebKeyCurveNameValues returns the possible values for the JSONWebKeyCurveName const type.
func PossibleJSONWebKeyCurveNameValues() []JSONWebKeyCurveName {
	return jsonWebKeyCurveNames.Values()
}

// IsKnown reports whether n is a documented JSONWebKeyCurveName.
func (n JSONWebKeyCurveName) IsKnown() bool { return jsonWebKeyCurveNames.IsKnown(n) }

// MarshalJSON implements json.Marshaler.
func (n JSONWebKeyCurveName) MarshalJSON() ([]byte, error) {
	return jsonWebKeyCurveNames.MarshalJSON(n)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *JSONWebKeyCurveName) UnmarshalJSON(data []byte) error {
	return jsonWebKeyCurveNames.UnmarshalJSON(data, n)
}

// JSONWebKeyOperation - JSON web key operations.
type JSONWebKeyOperation string

const (
	JSONWebKeyOperationEncrypt   JSONWebKeyOperation = "encrypt"
	JSONWebKeyOperationDecrypt   JSONWebKeyOperation = "decrypt"
	JSONWebKeyOperationSign      JSONWebKeyOperation = "sign"
	JSONWebKeyOperationVerify    JSONWebKeyOperation = "verify"
	JSONWebKeyOperationWrapKey   JSONWebKeyOperation = "wrapKey"
	JSONWebKeyOperationUnwrapKey JSONWebKeyOperation = "unwrapKey"
	JSONWebKeyOperationImport    JSONWebKeyOperation = "import"
	JSONWebKeyOperationExport    JSONWebKeyOperation = "export"
)

var jsonWebKeyOperations = openenum.New("JsonWebKeyOperation",
	openenum.Variant[JSONWebKeyOperation]{Name: "Encrypt", Value: JSONWebKeyOperationEncrypt},
	openenum.Variant[JSONWebKeyOperation]{Name: "Decrypt", Value: JSONWebKeyOperationDecrypt},
	openenum.Variant[JSONWebKeyOperation]{Name: "Sign", Value: JSONWebKeyOperationSign},
	openenum.Variant[JSONWebKeyOperation]{Name: "Verify", Value: JSONWebKeyOperationVerify},
	openenum.Variant[JSONWebKeyOperation]{Name: "WrapKey", Value: JSONWebKeyOperationWrapKey},
	openenum.Variant[JSONWebKeyOperation]{Name: "UnwrapKey", Value: JSONWebKeyOperationUnwrapKey},
	openenum.Variant[JSONWebKeyOperation]{Name: "Import", Value: JSONWebKeyOperationImport},
	openenum.Variant[JSONWebKeyOperation]{Name: "Export", Value: JSONWebKeyOperationExport},
)

// PossibleJSONWebKeyOperationValues returns the possible values for the JSONWebKeyOperation const type.
func PossibleJSONWebKeyOperationValues() []JSONWebKeyOperation {
	return jsonWebKeyOperations.Values()
}

// IsKnown reports whether o is a documented JSONWebKeyOperation.
func (o JSONWebKeyOperation) IsKnown() bool { return jsonWebKeyOperations.IsKnown(o) }

// MarshalJSON implements json.Marshaler.
func (o JSONWebKeyOperation) MarshalJSON() ([]byte, error) {
	return jsonWebKeyOperations.MarshalJSON(o)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *JSONWebKeyOperation) UnmarshalJSON(data []byte) error {
	return jsonWebKeyOperations.UnmarshalJSON(data, o)
}

// JSONWebKeyType - JsonWebKey Key Type (kty), as defined in https://tools.ietf.org/html/draft-ietf-jose-json-web-algorithms-40.
type JSONWebKeyType string

const (
	JSONWebKeyTypeEC     JSONWebKeyType = "EC"
	JSONWebKeyTypeECHSM  JSONWebKeyType = "EC-HSM"
	JSONWebKeyTypeRSA    JSONWebKeyType = "RSA"
	JSONWebKeyTypeRSAHSM JSONWebKeyType = "RSA-HSM"
	JSONWebKeyTypeOct    JSONWebKeyType = "oct"
	JSONWebKeyTypeOctHSM JSONWebKeyType = "oct-HSM"
)

var jsonWebKeyTypes = openenum.New("JsonWebKeyType",
	openenum.V(JSONWebKeyTypeEC),
	openenum.Variant[JSONWebKeyType]{Name: "ECHSM", Value: JSONWebKeyTypeECHSM},
	openenum.V(JSONWebKeyTypeRSA),
	openenum.Variant[JSONWebKeyType]{Name: "RSAHSM", Value: JSONWebKeyTypeRSAHSM},
	openenum.Variant[JSONWebKeyType]{Name: "Oct", Value: JSONWebKeyTypeOct},
	openenum.Variant[JSONWebKeyType]{Name: "OctHSM", Value: JSONWebKeyTypeOctHSM},
)

// PossibleJSONWebKeyTypeValues returns the possible values for the JSONWebKeyType const type.
func PossibleJSONWebKeyTypeValues() []JSONWebKeyType {
	return jsonWebKeyTypes.Values()
}

// IsKnown reports whether t is a documented JSONWebKeyType.
func (t JSONWebKeyType) IsKnown() bool { return jsonWebKeyTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t JSONWebKeyType) MarshalJSON() ([]byte, error) { return jsonWebKeyTypes.MarshalJSON(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *JSONWebKeyType) UnmarshalJSON(data []byte) error {
	return jsonWebKeyTypes.UnmarshalJSON(data, t)
}

// Enums returns the tables of every enum in the package.
func Enums() []openenum.Descriptor {
	return []openenum.Descriptor{
		deletionRecoveryLevels,
		jsonWebKeyCurveNames,
		jsonWebKeyOperations,
		jsonWebKeyTypes,
	}
}
