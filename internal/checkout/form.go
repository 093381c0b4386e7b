// Package checkout holds and validates the buyer's delivery details.
package checkout

import (
	"strings"
	"sync"
)

// Delivery options
const (
	OptionDelivery = "delivery"
	OptionPickup   = "pickup"
)

// DeliveryDetails are the optional fine-grained delivery sub-fields.
type DeliveryDetails struct {
	SecondaryPhone   string `json:"secondaryPhone,omitempty"`
	DeliveryLocation string `json:"deliveryLocation,omitempty"`
	Landmark         string `json:"landmark,omitempty"`
}

// Form is the checkout form snapshot.
type Form struct {
	FullName        string          `json:"fullName" validate:"required,min=2,max=100"`
	Phone           string          `json:"phone" validate:"required,min=10,max=15"`
	DeliveryOption  string          `json:"deliveryOption" validate:"required,oneof=delivery pickup"`
	Address         string          `json:"address"`
	DeliveryDate    string          `json:"deliveryDate" validate:"required"` // YYYY-MM-DD
	DeliveryTime    string          `json:"deliveryTime" validate:"required"`
	Notes           string          `json:"notes" validate:"max=500"`
	DeliveryDetails DeliveryDetails `json:"deliveryDetails"`
}

func emptyForm() Form {
	return Form{DeliveryOption: OptionDelivery}
}

// State is a dependency-injected checkout form container. It is created
// empty, mutated field by field, validated on submit, and reset afterwards.
type State struct {
	mu        sync.Mutex
	form      Form
	fieldErrs map[string]string
	validator *Validator
}

// NewState returns an empty form state bound to a validator.
func NewState(v *Validator) *State {
	return &State{form: emptyForm(), fieldErrs: map[string]string{}, validator: v}
}

// SetField sets a top-level field by its json name and clears any recorded
// validation error for that field. Unknown names are ignored.
func (s *State) SetField(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch name {
	case "fullName":
		s.form.FullName = value
	case "phone":
		s.form.Phone = value
	case "deliveryOption":
		s.form.DeliveryOption = value
	case "address":
		s.form.Address = value
	case "deliveryDate":
		s.form.DeliveryDate = value
	case "deliveryTime":
		s.form.DeliveryTime = value
	case "notes":
		s.form.Notes = value
	default:
		return
	}
	delete(s.fieldErrs, name)
}

// SetDeliveryDetail sets a nested delivery sub-field by its json name
// without touching top-level validation state.
func (s *State) SetDeliveryDetail(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch name {
	case "secondaryPhone":
		s.form.DeliveryDetails.SecondaryPhone = value
	case "deliveryLocation":
		s.form.DeliveryDetails.DeliveryLocation = value
	case "landmark":
		s.form.DeliveryDetails.Landmark = value
	}
}

// Form returns a copy of the current form.
func (s *State) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Errors returns a copy of the recorded per-field errors.
func (s *State) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make(map[string]string, len(s.fieldErrs))
	for k, v := range s.fieldErrs {
		cp[k] = v
	}
	return cp
}

// Validate checks the whole form. On success it returns the normalized
// snapshot and nil. On failure it records and returns a field→message map;
// every invalid field is reported, first error per field wins.
func (s *State) Validate() (Form, map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized, errs := s.validator.Validate(s.form)
	if len(errs) > 0 {
		s.fieldErrs = errs
		return Form{}, errs
	}
	s.fieldErrs = map[string]string{}
	return normalized, nil
}

// Reset restores the initial empty snapshot. Used after a successful
// submission.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = emptyForm()
	s.fieldErrs = map[string]string{}
}

// Normalize trims user-entered text and blanks the address-related fields
// for pickup orders, which never require one.
func Normalize(f Form) Form {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Address = strings.TrimSpace(f.Address)
	f.Notes = strings.TrimSpace(f.Notes)
	if f.DeliveryOption == OptionPickup {
		f.Address = ""
		f.DeliveryDetails.DeliveryLocation = ""
		f.DeliveryDetails.Landmark = ""
	}
	return f
}
