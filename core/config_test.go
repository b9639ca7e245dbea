package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Configuration {
	return Configuration{
		Region:          RegionAsiaPacific,
		Industry:        IndustryElectronics,
		Currency:        CurrencyUSD,
		ShippingMethods: []ShippingMethod{ShippingSea, ShippingAir, ShippingRail},
		NodeCount:       6,
		RiskProfile:     RiskLow,
	}
}

func TestConfigurationValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestConfigurationValidate_EmptyShippingMethods(t *testing.T) {
	cfg := validConfig()
	cfg.ShippingMethods = nil
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestConfigurationValidate_NodeCountBounds(t *testing.T) {
	tests := []struct {
		name      string
		nodeCount int
		wantErr   bool
	}{
		{"below minimum", 2, true},
		{"at minimum", 3, false},
		{"at maximum", 12, false},
		{"above maximum", 13, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.NodeCount = tt.nodeCount
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfiguration))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigurationValidate_UnknownEnums(t *testing.T) {
	cfg := validConfig()
	cfg.Region = "Atlantis"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)

	cfg = validConfig()
	cfg.Industry = "Alchemy"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)

	cfg = validConfig()
	cfg.Currency = "DOGE"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)

	cfg = validConfig()
	cfg.ShippingMethods = []ShippingMethod{"Teleport"}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)

	cfg = validConfig()
	cfg.RiskProfile = "Extreme"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)
}

func TestConfigurationValidate_DuplicateShippingMethods(t *testing.T) {
	cfg := validConfig()
	cfg.ShippingMethods = []ShippingMethod{ShippingSea, ShippingSea}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)
}

func TestConfigurationUsesMethod(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.UsesMethod(ShippingSea))
	assert.False(t, cfg.UsesMethod(ShippingTruck))
}

func TestConfigurationClone_Isolated(t *testing.T) {
	cfg := validConfig()
	cp := cfg.Clone()
	cp.ShippingMethods[0] = ShippingTruck
	assert.Equal(t, ShippingSea, cfg.ShippingMethods[0])
}
