// Package models is the catalog of wire models shipped with azwire. It maps
// qualified model names such as "workloads.SAPVirtualInstance" to factories
// and describes the unions and open enums each model reaches.
package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/gork-labs/azwire/pkg/models/deviceupdate"
	"github.com/gork-labs/azwire/pkg/models/keyvault"
	"github.com/gork-labs/azwire/pkg/models/streamanalytics"
	"github.com/gork-labs/azwire/pkg/models/workloads"
	"github.com/gork-labs/azwire/pkg/openenum"
	"github.com/gork-labs/azwire/pkg/unions"
)

// Model is one catalog entry.
type Model struct {
	Name string
	Doc  string
	New  func() any
}

var catalog = map[string]Model{}

var enumsByType = map[reflect.Type]openenum.Descriptor{}

func register(name, doc string, ctor func() any) {
	if _, dup := catalog[name]; dup {
		panic(fmt.Sprintf("models: %s registered twice", name))
	}
	catalog[name] = Model{Name: name, Doc: doc, New: ctor}
}

func init() {
	register("streamanalytics.Output", "A Stream Analytics job output.",
		func() any { return new(streamanalytics.Output) })
	register("streamanalytics.StreamingJob", "A Stream Analytics streaming job.",
		func() any { return new(streamanalytics.StreamingJob) })
	register("workloads.SAPVirtualInstance", "A Virtual Instance for SAP solutions.",
		func() any { return new(workloads.SAPVirtualInstance) })
	register("workloads.SAPConfiguration", "The configuration union of a Virtual Instance for SAP solutions.",
		func() any { return new(workloads.SAPConfiguration) })
	register("workloads.InfrastructureConfiguration", "The SAP deployment infrastructure union.",
		func() any { return new(workloads.InfrastructureConfiguration) })
	register("workloads.ProviderInstance", "An SAP monitor provider instance.",
		func() any { return new(workloads.ProviderInstance) })
	register("deviceupdate.Device", "A device registered with Device Update for IoT Hub.",
		func() any { return new(deviceupdate.Device) })
	register("deviceupdate.Operation", "An update import or delete operation.",
		func() any { return new(deviceupdate.Operation) })
	register("keyvault.KeyItem", "A Key Vault key listing entry.",
		func() any { return new(keyvault.KeyItem) })
	register("keyvault.JSONWebKey", "A JSON web key.",
		func() any { return new(keyvault.JSONWebKey) })

	for _, enums := range [][]openenum.Descriptor{
		streamanalytics.Enums(),
		workloads.Enums(),
		deviceupdate.Enums(),
		keyvault.Enums(),
	} {
		for _, e := range enums {
			enumsByType[e.GoType()] = e
		}
	}
}

// Names returns the catalog's model names, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Model, error) {
	m, ok := catalog[name]
	if !ok {
		return Model{}, fmt.Errorf("unknown model %q", name)
	}
	return m, nil
}

// Decode decodes data into a fresh instance of the named model and checks its
// required fields.
func Decode(name string, data []byte) (any, error) {
	m, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	v := m.New()
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	if err := Validate(v); err != nil {
		return nil, fmt.Errorf("validate %s: %w", name, err)
	}
	return v, nil
}

// Validate checks the required fields of a decoded model, including every
// union shape it holds.
func Validate(v any) error {
	return unions.Validator().Struct(v)
}
