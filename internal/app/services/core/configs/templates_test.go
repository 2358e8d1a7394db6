package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBusinessConfig(t *testing.T) {
	t.Run("barbershop template", func(t *testing.T) {
		config := DefaultBusinessConfig("company1", "barbershop")

		assert.Equal(t, "company1", config.CompanyID)
		assert.Equal(t, "barbershop", config.AppliedTemplate)
		assert.True(t, config.Modules.Appointments)
		assert.Equal(t, 30, config.Appointments.IntervalMinutes)

		names := make([]string, 0, len(config.Services))
		for _, service := range config.Services {
			names = append(names, service.Name)
			assert.True(t, service.Active)
		}
		assert.Contains(t, names, "Corte Masculino")
		assert.Contains(t, names, "Barba")
		assert.Contains(t, names, "Corte + Barba")

		for _, service := range config.Services {
			if service.Name == "Corte Masculino" {
				assert.Equal(t, 40.0, service.Price)
				assert.Equal(t, 30, service.DurationMinutes)
			}
		}
	})

	t.Run("unknown type falls back to other", func(t *testing.T) {
		config := DefaultBusinessConfig("company1", "bakery")
		assert.Equal(t, "other", config.AppliedTemplate)
	})

	t.Run("notifications default on", func(t *testing.T) {
		for _, businessType := range []string{"barbershop", "restaurant", "tattoo", "distributor", "other"} {
			config := DefaultBusinessConfig("company1", businessType)
			assert.True(t, config.Notifications.EmailOnNewBooking, businessType)
			assert.True(t, config.Notifications.EmailCustomerConfirmation, businessType)
		}
	})

	t.Run("timestamps are set", func(t *testing.T) {
		config := DefaultBusinessConfig("company1", "other")
		assert.False(t, config.CreatedAt.IsZero())
		assert.False(t, config.UpdatedAt.IsZero())
	})
}

func TestTemplateOrderCoversEveryTemplate(t *testing.T) {
	assert.Len(t, templateOrder, len(businessTemplates))
	for _, key := range templateOrder {
		_, ok := businessTemplates[key]
		assert.True(t, ok, key)
	}
}
