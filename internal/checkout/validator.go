package checkout

import (
	"reflect"
	"strings"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// Validator wraps a configured validator/v10 instance with the checkout
// schema's cross-field rules and human-readable messages.
type Validator struct {
	v       *validatorv10.Validate
	nowFunc func() time.Time
}

// NewValidator returns a validator with the struct-level checkout rules
// registered.
func NewValidator() *Validator {
	v := validatorv10.New()

	// report errors under json field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	cv := &Validator{v: v, nowFunc: time.Now}
	v.RegisterStructValidation(cv.formStructValidation, Form{})
	return cv
}

// formStructValidation holds the rules the flat tags cannot express: the
// address is required (>= 10 trimmed characters) only for delivery orders,
// and the delivery date may not be in the past.
func (cv *Validator) formStructValidation(sl validatorv10.StructLevel) {
	form := sl.Current().Interface().(Form)

	if form.DeliveryOption == OptionDelivery {
		if len(strings.TrimSpace(form.Address)) < 10 {
			sl.ReportError(form.Address, "address", "Address", "delivery_address", "")
		}
	}

	if form.DeliveryDate != "" {
		if d, err := time.Parse(dateLayout, form.DeliveryDate); err == nil {
			now := cv.nowFunc()
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if d.Before(today) {
				sl.ReportError(form.DeliveryDate, "deliveryDate", "DeliveryDate", "date_not_past", "")
			}
		}
	}
}

// Validate runs the schema against a trimmed copy of the form. It returns
// the normalized snapshot on success, or a field→message map with every
// invalid field reported (first error per field wins).
func (cv *Validator) Validate(f Form) (Form, map[string]string) {
	normalized := Normalize(f)
	if err := cv.v.Struct(normalized); err != nil {
		return Form{}, fieldErrorsToMap(err)
	}
	return normalized, nil
}

func fieldErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		out["form"] = err.Error()
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = messageFor(field, fe.Tag())
	}
	return out
}

// messageFor mirrors the storefront's inline form messages.
func messageFor(field, tag string) string {
	switch field {
	case "fullName":
		switch tag {
		case "min", "required":
			return "Name must be at least 2 characters"
		case "max":
			return "Name is too long"
		}
	case "phone":
		switch tag {
		case "min", "required":
			return "Phone number must be at least 10 digits"
		case "max":
			return "Phone number is too long"
		}
	case "deliveryOption":
		return "Please choose delivery or pickup"
	case "address":
		return "Please enter a valid address (at least 10 characters)"
	case "deliveryDate":
		if tag == "date_not_past" {
			return "Delivery date cannot be in the past"
		}
		return "Please select a delivery date"
	case "deliveryTime":
		return "Please select a delivery time"
	case "notes":
		return "Notes are too long"
	}
	return "Invalid value"
}
