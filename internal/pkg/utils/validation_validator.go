package utils

import (
	"regexp"
	"time"

	"bizsuite-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	phoneRegex = regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	dateRegex  = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	clockRegex = regexp.MustCompile(constvars.RegexTimeHHMM)
	slugRegex  = regexp.MustCompile(constvars.RegexCompanySlug)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone", validatePhoneNumber)
	validate.RegisterValidation("date_ymd", validateDateYMD)
	validate.RegisterValidation("clock_hhmm", validateClockHHMM)
	validate.RegisterValidation("not_past", validateNotPastDate)
	validate.RegisterValidation("slug", validateSlug)
	validate.RegisterValidation("weekday_key", validateWeekdayKey)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateDateYMD(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !dateRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse(constvars.CalendarDateLayout, value)
	return err == nil
}

func validateClockHHMM(fl validator.FieldLevel) bool {
	return clockRegex.MatchString(fl.Field().String())
}

// not_past compares calendar days, so booking for later today stays valid.
func validateNotPastDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	date, err := time.Parse(constvars.CalendarDateLayout, value)
	if err != nil {
		return false
	}
	today := TruncateToDay(time.Now())
	return !date.Before(today)
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

func validateWeekdayKey(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	}
	return false
}
