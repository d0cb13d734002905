package unions

// Provider gives a Tagged field access to its union's registry. Providers are
// zero-size types, so a Tagged value can decode itself without any state.
type Provider[S Discriminator] interface {
	Registry() *Registry[S]
}

// Tagged is a struct field holding one shape of the union described by P.
//
//	type InfrastructureConfiguration = unions.Tagged[InfrastructureConfigurationClassification, infrastructureConfigurations]
type Tagged[S Discriminator, P Provider[S]] struct {
	Value S
}

// MarshalJSON implements json.Marshaler.
func (t Tagged[S, P]) MarshalJSON() ([]byte, error) {
	var p P
	return p.Registry().Encode(t.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tagged[S, P]) UnmarshalJSON(data []byte) error {
	var p P
	v, err := p.Registry().Decode(data)
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

// Discriminator returns the tag value of the held shape, or "" when empty.
func (t Tagged[S, P]) Discriminator() string {
	if isNil(t.Value) {
		return ""
	}
	return t.Value.DiscriminatorValue()
}

// Union returns the registry the field decodes with.
func (t Tagged[S, P]) Union() Descriptor {
	var p P
	return p.Registry()
}
