package a

type Color string

const (
	ColorRed   Color = "red"
	ColorGreen Color = "green"
)

func (c Color) IsKnown() bool { return c == ColorRed || c == ColorGreen }

type Closed string

func describe(c Color) string {
	switch c { // want `switch on open enum Color has no default case`
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	}
	return ""
}

func describeDefault(c Color) string {
	switch c {
	case ColorRed:
		return "red"
	default:
		return string(c)
	}
}

func describePointer(c *Color) bool {
	switch *c { // want `switch on open enum Color has no default case`
	case ColorRed:
		return true
	}
	return false
}

func closed(c Closed) int {
	switch c {
	case "x":
		return 1
	}
	return 0
}

func tagless(c Color) bool {
	switch {
	case c == ColorRed:
		return true
	}
	return false
}

type Shape interface{ isShape() }

type Circle struct{}

func (*Circle) DiscriminatorValue() string { return "circle" }
func (*Circle) isShape()                   {}

type Disc struct{}

func (*Disc) DiscriminatorValue() string { return "circle" } // want `duplicate discriminator value "circle" for isShape also used by Circle`
func (*Disc) isShape()                   {}

type Other interface{ isOther() }

type OtherCircle struct{}

func (OtherCircle) DiscriminatorValue() string { return "circle" }
func (OtherCircle) isOther()                   {}

type Blank struct{}

func (Blank) DiscriminatorValue() string { return "" } // want `empty discriminator value on Blank`
func (Blank) isOther()                   {}

type DeploymentType string

const (
	DeploymentTypeSingleServer DeploymentType = "SingleServer"
	DeploymentTypeThreeTier    DeploymentType = "ThreeTier"
)

const threeTier = "ThreeTier"

type Infrastructure interface{ isInfrastructure() }

type SingleServer struct{}

func (*SingleServer) DiscriminatorValue() string { return string(DeploymentTypeSingleServer) }
func (*SingleServer) isInfrastructure()          {}

type ThreeTier struct{}

func (*ThreeTier) DiscriminatorValue() string { return string(DeploymentTypeThreeTier) }
func (*ThreeTier) isInfrastructure()          {}

type LegacyThreeTier struct{}

func (*LegacyThreeTier) DiscriminatorValue() string { return threeTier } // want `duplicate discriminator value "ThreeTier" for isInfrastructure also used by ThreeTier`
func (*LegacyThreeTier) isInfrastructure()          {}

type CopiedSingleServer struct{}

func (CopiedSingleServer) DiscriminatorValue() string { return string(DeploymentTypeSingleServer) } // want `duplicate discriminator value "SingleServer" for isInfrastructure also used by SingleServer`
func (CopiedSingleServer) isInfrastructure()          {}

type Dynamic struct{ tag string }

func (d Dynamic) DiscriminatorValue() string { return d.tag }
func (Dynamic) isInfrastructure()            {}

const devicesPath = "/deviceupdate/{instanceId}/v2/management/devices"

func ExpandPath(template string, params map[string]string) (string, error) { return template, nil }

func NewListPager[T any](client any, path string, opts any) *T { return nil }

func paths() {
	_, _ = ExpandPath(devicesPath, nil)
	_, _ = ExpandPath("/a/{}/b", nil)         // want `path template has an empty placeholder`
	_, _ = ExpandPath("/a/{id}/{id}", nil)    // want `path template repeats placeholder \{id\}`
	_, _ = ExpandPath("a/b", nil)             // want `path template must start with /`
	_ = NewListPager[int](nil, "/a/{id", nil) // want `path template has an unbalanced brace`
	_ = NewListPager[int](nil, devicesPath, nil)
}
