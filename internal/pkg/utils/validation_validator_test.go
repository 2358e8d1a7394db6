package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
)

func validBooking() *requests.PublicBooking {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(constvars.CalendarDateLayout)
	return &requests.PublicBooking{
		Name:         "Ana Souza",
		Email:        "ana@example.com",
		Phone:        "11988880001",
		ServiceName:  "Corte",
		ServicePrice: 40,
		Date:         tomorrow,
		Time:         "09:00",
	}
}

func TestValidatePublicBooking(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validBooking()))
	})

	t.Run("past date is rejected", func(t *testing.T) {
		booking := validBooking()
		booking.Date = "2020-01-01"
		assert.Error(t, ValidateStruct(booking))
	})

	t.Run("malformed time is rejected", func(t *testing.T) {
		booking := validBooking()
		booking.Time = "25:00"
		assert.Error(t, ValidateStruct(booking))

		booking.Time = "9:00"
		assert.Error(t, ValidateStruct(booking))
	})

	t.Run("missing phone is rejected", func(t *testing.T) {
		booking := validBooking()
		booking.Phone = ""
		assert.Error(t, ValidateStruct(booking))
	})

	t.Run("short phone is rejected", func(t *testing.T) {
		booking := validBooking()
		booking.Phone = "123"
		assert.Error(t, ValidateStruct(booking))
	})

	t.Run("international phone passes", func(t *testing.T) {
		booking := validBooking()
		booking.Phone = "+55 11 98888-0001"
		assert.NoError(t, ValidateStruct(booking))
	})
}

func TestSanitizePublicBookingRequest(t *testing.T) {
	booking := &requests.PublicBooking{
		Name:        "  Ana Souza  ",
		Email:       " ANA@Example.COM ",
		Phone:       " 11988880001 ",
		ServiceName: " Corte ",
		Date:        " 2024-06-10 ",
		Time:        " 09:00 ",
	}
	SanitizePublicBookingRequest(booking)

	assert.Equal(t, "Ana Souza", booking.Name)
	assert.Equal(t, "ana@example.com", booking.Email)
	assert.Equal(t, "11988880001", booking.Phone)
	assert.Equal(t, "Corte", booking.ServiceName)
	assert.Equal(t, "2024-06-10", booking.Date)
	assert.Equal(t, "09:00", booking.Time)
}

func TestValidateRegisterUser(t *testing.T) {
	valid := &requests.RegisterUser{
		Name:         "Demo Owner",
		Email:        "demo@example.com",
		Password:     "secret1",
		CompanyName:  "Barbearia Demo",
		BusinessType: "barbershop",
	}
	assert.NoError(t, ValidateStruct(valid))

	unknownType := *valid
	unknownType.BusinessType = "bakery"
	assert.Error(t, ValidateStruct(&unknownType))

	shortPassword := *valid
	shortPassword.Password = "123"
	assert.Error(t, ValidateStruct(&shortPassword))
}
