package utils

import (
	"strings"

	"bizsuite-service/internal/pkg/dto/requests"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.BusinessType = strings.ToLower(strings.TrimSpace(input.BusinessType))
	input.Phone = strings.TrimSpace(input.Phone)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = normalizeEmail(input.Email)
}

func SanitizeCreateCustomerRequest(input *requests.CreateCustomer) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeUpdateCustomerRequest(input *requests.UpdateCustomer) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeCreateProductRequest(input *requests.CreateProduct) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)
	input.Unit = strings.TrimSpace(input.Unit)
}

func SanitizeUpdateProductRequest(input *requests.UpdateProduct) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)
	input.Unit = strings.TrimSpace(input.Unit)
}

func SanitizePublicBookingRequest(input *requests.PublicBooking) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Notes = strings.TrimSpace(input.Notes)
	input.ServiceName = strings.TrimSpace(input.ServiceName)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.ServiceName = strings.TrimSpace(input.ServiceName)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Notes = strings.TrimSpace(input.Notes)
}
