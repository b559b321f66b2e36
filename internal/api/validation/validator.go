package validation

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var whatsappRegex = regexp.MustCompile(`^[+0-9\s-]+$`)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	// DTOs carry their rules in binding tags
	v.SetTagName("binding")
	v.RegisterValidation("whatsapp", validateWhatsapp)
	v.RegisterValidation("todayorfuture", validateTodayOrFuture)

	// Report errors under the json field name so the form can highlight
	// the exact input.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateWhatsapp checks if the value looks like a phone number:
// digits, spaces, dashes and a leading plus
func validateWhatsapp(fl validator.FieldLevel) bool {
	return whatsappRegex.MatchString(fl.Field().String())
}

// validateTodayOrFuture checks if the value parses as a calendar date
// that is not earlier than the current local date. Time-of-day is
// ignored: exactly "today" passes.
func validateTodayOrFuture(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	date, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		// Date pickers occasionally submit full timestamps
		date, err = time.ParseInLocation(time.RFC3339, value, time.Local)
		if err != nil {
			return false
		}
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	return !day.Before(today)
}

// fieldMessages maps "field.tag" to the message shown next to the form
// input. Unknown combinations fall back to a generic message.
var fieldMessages = map[string]string{
	"name.required": "Please share your full name.",
	"name.min":      "Please share your full name.",
	"name.max":      "Name feels a little too long.",

	"whatsapp.required": "Please enter a valid WhatsApp number.",
	"whatsapp.min":      "Please enter a valid WhatsApp number.",
	"whatsapp.max":      "WhatsApp number looks too long.",
	"whatsapp.whatsapp": "Use digits only, with country code if needed.",

	"weddingDate.required":      "Please choose a valid wedding date (today or later).",
	"weddingDate.todayorfuture": "Please choose a valid wedding date (today or later).",

	"city.required": "Which city are you celebrating in?",
	"city.min":      "Which city are you celebrating in?",
	"city.max":      "City name feels a little too long.",

	"firstName.required": "Please share your first name.",
	"firstName.min":      "Please share your first name.",
	"firstName.max":      "First name feels a little too long.",

	"lastName.required": "Please share your last name.",
	"lastName.min":      "Please share your last name.",
	"lastName.max":      "Last name feels a little too long.",

	"email.required": "Please enter a valid email address.",
	"email.email":    "Please enter a valid email address.",
	"email.max":      "Email address looks too long.",

	"subject.required": "What is your message about?",
	"subject.min":      "What is your message about?",
	"subject.max":      "Subject feels a little too long.",

	"message.required": "Tell us a little more about your day (at least 10 characters).",
	"message.min":      "Tell us a little more about your day (at least 10 characters).",
	"message.max":      "Message is a little too long.",
}

// DecodeFields copies raw JSON values onto the DTO's fields by json
// name. A wrong-typed value is reported as a field error for that field
// alone; the rest of the payload still decodes, so every problem can be
// surfaced in one response.
func DecodeFields(raw map[string]json.RawMessage, dst interface{}) map[string][]string {
	fieldErrors := make(map[string][]string)

	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		value, ok := raw[name]
		if !ok {
			continue
		}

		if err := json.Unmarshal(value, v.Field(i).Addr().Interface()); err != nil {
			fieldErrors[name] = append(fieldErrors[name], "This field looks invalid.")
		}
	}

	return fieldErrors
}

// FormatValidationError turns validator errors into a field-to-messages
// mapping. Every violated field is reported so the caller can surface
// all of them at once.
func FormatValidationError(err error) map[string][]string {
	fieldErrors := make(map[string][]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fieldErrors
	}

	for _, e := range validationErrors {
		field := e.Field()
		message, found := fieldMessages[field+"."+e.Tag()]
		if !found {
			message = "This field looks invalid."
		}
		fieldErrors[field] = append(fieldErrors[field], message)
	}

	return fieldErrors
}
