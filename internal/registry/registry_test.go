package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
)

func TestNew_DefaultsCoverEveryVertical(t *testing.T) {
	reg, err := New(nil)
	require.NoError(t, err)

	all := reg.All()
	require.Len(t, all, len(domain.AllServiceTypes))

	lavage := reg.Get(domain.ServiceLavage)
	assert.Equal(t, domain.FlowAdvanced, lavage.BookingFlow)
	assert.Equal(t, domain.TemplateCrsine, lavage.Template)
	assert.True(t, lavage.HasFeature("vehicle-form"))
	assert.True(t, lavage.HasFeature("dynamic-pricing"))

	boutique := reg.Get(domain.ServiceBoutique)
	assert.Equal(t, domain.FlowNone, boutique.BookingFlow)
	assert.Empty(t, boutique.Capabilities())

	fastfood := reg.Get(domain.ServiceFastfood)
	assert.Equal(t, domain.FlowSimple, fastfood.BookingFlow)
	assert.False(t, fastfood.HasFeature("dynamic-pricing"))
}

func TestNew_OverridesReplaceDefaults(t *testing.T) {
	reg, err := New([]domain.ServiceConfig{
		{
			ID:          "lavage",
			Name:        "Lavage Auto Premium",
			Type:        domain.ServiceLavage,
			Template:    domain.TemplateCrsine,
			Features:    []string{"vehicle-form"},
			BookingFlow: domain.FlowAdvanced,
		},
	})
	require.NoError(t, err)

	lavage := reg.Get(domain.ServiceLavage)
	assert.Equal(t, "Lavage Auto Premium", lavage.Name)
	assert.False(t, lavage.HasFeature("dynamic-pricing"))

	// Other verticals keep their defaults.
	restaurant := reg.Get(domain.ServiceRestaurant)
	assert.True(t, restaurant.HasFeature("table-selection"))
}

func TestNew_RejectsBadEntries(t *testing.T) {
	_, err := New([]domain.ServiceConfig{
		{ID: "pressing", Type: domain.ServiceType("pressing")},
	})
	assert.Error(t, err)

	_, err = New([]domain.ServiceConfig{
		{ID: "mon-lavage", Type: domain.ServiceLavage},
	})
	assert.Error(t, err)
}

func TestGetByID(t *testing.T) {
	reg, err := New(nil)
	require.NoError(t, err)

	cfg, ok := reg.GetByID("restaurant")
	require.True(t, ok)
	assert.Equal(t, domain.ServiceRestaurant, cfg.Type)

	_, ok = reg.GetByID("pressing")
	assert.False(t, ok)
}

func TestSupportsDetail(t *testing.T) {
	reg, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, domain.DetailVehicle, reg.SupportsDetail(domain.ServiceLavage))
	assert.Equal(t, domain.DetailVehicle, reg.SupportsDetail(domain.ServiceCoiffure))
	assert.Equal(t, domain.DetailTable, reg.SupportsDetail(domain.ServiceRestaurant))
	assert.Equal(t, domain.DetailNone, reg.SupportsDetail(domain.ServiceFastfood))
	assert.Equal(t, domain.DetailNone, reg.SupportsDetail(domain.ServiceBoutique))
}
