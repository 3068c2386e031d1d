package domain

// ServiceType identifies one of the platform verticals.
type ServiceType string

const (
	ServiceLavage     ServiceType = "lavage"
	ServiceRestaurant ServiceType = "restaurant"
	ServiceFastfood   ServiceType = "fastfood"
	ServiceCoiffure   ServiceType = "coiffure"
	ServiceBoutique   ServiceType = "boutique"
)

// AllServiceTypes lists every vertical, in catalog order.
var AllServiceTypes = []ServiceType{
	ServiceLavage,
	ServiceRestaurant,
	ServiceFastfood,
	ServiceCoiffure,
	ServiceBoutique,
}

// ParseServiceType validates a service type string.
func ParseServiceType(s string) (ServiceType, bool) {
	t := ServiceType(s)
	for _, known := range AllServiceTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Template identifies the front-end template family a service renders with.
type Template string

const (
	TemplateCrsine Template = "crsine"
	TemplateTastyc Template = "tastyc"
	TemplateHybrid Template = "hybrid"
)

// BookingFlow describes which booking experience a service exposes.
type BookingFlow string

const (
	FlowAdvanced BookingFlow = "advanced"
	FlowSimple   BookingFlow = "simple"
	FlowNone     BookingFlow = "none"
)

// Capability is a recognized feature flag. The wire form is a free-form
// string set; everything the booking core does not recognize maps to
// CapabilityUnknown and is ignored, which keeps unknown flags forward
// compatible.
type Capability string

const (
	CapabilityVehicleForm    Capability = "vehicle-form"
	CapabilityTableSelection Capability = "table-selection"
	CapabilityDynamicPricing Capability = "dynamic-pricing"
	CapabilityQRTracking     Capability = "qr-tracking"
	CapabilityUnknown        Capability = ""
)

// ParseCapability maps a feature string to a recognized capability.
// The second result is false for unrecognized flags.
func ParseCapability(s string) (Capability, bool) {
	switch Capability(s) {
	case CapabilityVehicleForm:
		return CapabilityVehicleForm, true
	case CapabilityTableSelection:
		return CapabilityTableSelection, true
	case CapabilityDynamicPricing:
		return CapabilityDynamicPricing, true
	case CapabilityQRTracking:
		return CapabilityQRTracking, true
	default:
		return CapabilityUnknown, false
	}
}

// DetailKind says which detail payload a service's booking flow requires.
type DetailKind string

const (
	DetailVehicle DetailKind = "vehicle"
	DetailTable   DetailKind = "table"
	DetailNone    DetailKind = "none"
)

// ServiceConfig is the static configuration of one vertical. Loaded once at
// process start and never mutated afterwards, so it is safe to share
// between goroutines without locking.
type ServiceConfig struct {
	ID          string
	Name        string
	Type        ServiceType
	Template    Template
	Features    []string
	BookingFlow BookingFlow
	HasMenu     bool
	HasGallery  bool
	HasReviews  bool
}

// HasFeature reports raw feature-set membership.
func (c *ServiceConfig) HasFeature(feature string) bool {
	for _, f := range c.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// Capabilities returns the recognized subset of the feature set.
func (c *ServiceConfig) Capabilities() []Capability {
	caps := make([]Capability, 0, len(c.Features))
	for _, f := range c.Features {
		if cap, ok := ParseCapability(f); ok {
			caps = append(caps, cap)
		}
	}
	return caps
}

// DetailKind derives the required detail payload from the capabilities:
// vehicle-form wins over table-selection if a catalog ever declared both.
func (c *ServiceConfig) DetailKind() DetailKind {
	if c.HasFeature(string(CapabilityVehicleForm)) {
		return DetailVehicle
	}
	if c.HasFeature(string(CapabilityTableSelection)) {
		return DetailTable
	}
	return DetailNone
}
