package unions

// Discriminator is implemented by every shape of a discriminated union. The
// value it returns is the wire value of the union's tag field for that shape.
type Discriminator interface {
	// DiscriminatorValue returns the unique discriminator value for this type.
	// This value must match what's in the JSON discriminator field.
	DiscriminatorValue() string
}

// DiscriminatorField is implemented by union registries to report which JSON
// field carries the discriminator value (e.g. "type", "deploymentType",
// "osType").
type DiscriminatorField interface {
	// DiscriminatorFieldName returns the name of the JSON field that contains
	// the discriminator value.
	DiscriminatorFieldName() string
}

// Descriptor is the type-erased view of a Registry.
type Descriptor interface {
	DiscriminatorField
	Name() string
	Values() []string
	NewShape(tag string) (any, bool)
}
