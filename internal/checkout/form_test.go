package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedValidator() *Validator {
	v := NewValidator()
	v.nowFunc = func() time.Time {
		return time.Date(2024, time.January, 20, 10, 0, 0, 0, time.UTC)
	}
	return v
}

func validDeliveryForm() Form {
	return Form{
		FullName:       "Ram Sharma",
		Phone:          "+9779841234567",
		DeliveryOption: OptionDelivery,
		Address:        "Baluwatar, Kathmandu, near the old banyan tree",
		DeliveryDate:   "2024-01-25",
		DeliveryTime:   "2:00 PM",
	}
}

func TestValidate_DeliveryFormPasses(t *testing.T) {
	v := fixedValidator()

	normalized, errs := v.Validate(validDeliveryForm())
	require.Nil(t, errs)
	assert.Equal(t, "Ram Sharma", normalized.FullName)
}

func TestValidate_AddressRequiredOnlyForDelivery(t *testing.T) {
	v := fixedValidator()

	delivery := validDeliveryForm()
	delivery.Address = ""
	_, errs := v.Validate(delivery)
	require.NotNil(t, errs)
	assert.Equal(t, "Please enter a valid address (at least 10 characters)", errs["address"])

	// under ten trimmed characters still fails
	delivery.Address = "  short   "
	_, errs = v.Validate(delivery)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "address")

	// pickup with an empty address always validates
	pickup := validDeliveryForm()
	pickup.DeliveryOption = OptionPickup
	pickup.Address = ""
	normalized, errs := v.Validate(pickup)
	require.Nil(t, errs)
	assert.Empty(t, normalized.Address)
}

func TestValidate_AllInvalidFieldsReportedTogether(t *testing.T) {
	v := fixedValidator()

	_, errs := v.Validate(Form{DeliveryOption: OptionPickup})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "fullName")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "deliveryDate")
	assert.Contains(t, errs, "deliveryTime")
}

func TestValidate_FieldMessages(t *testing.T) {
	v := fixedValidator()

	f := validDeliveryForm()
	f.FullName = "A"
	f.Phone = "123"
	_, errs := v.Validate(f)
	require.NotNil(t, errs)
	assert.Equal(t, "Name must be at least 2 characters", errs["fullName"])
	assert.Equal(t, "Phone number must be at least 10 digits", errs["phone"])
}

func TestValidate_NotesBounded(t *testing.T) {
	v := fixedValidator()

	f := validDeliveryForm()
	for len(f.Notes) <= 500 {
		f.Notes += "please write happy birthday on top "
	}
	_, errs := v.Validate(f)
	require.NotNil(t, errs)
	assert.Equal(t, "Notes are too long", errs["notes"])
}

func TestValidate_DateNotInPast(t *testing.T) {
	v := fixedValidator()

	f := validDeliveryForm()
	f.DeliveryDate = "2024-01-19"
	_, errs := v.Validate(f)
	require.NotNil(t, errs)
	assert.Equal(t, "Delivery date cannot be in the past", errs["deliveryDate"])

	// same-day delivery is allowed
	f.DeliveryDate = "2024-01-20"
	_, errs = v.Validate(f)
	assert.Nil(t, errs)
}

func TestNormalize_PickupDropsAddressFields(t *testing.T) {
	f := validDeliveryForm()
	f.DeliveryOption = OptionPickup
	f.DeliveryDetails.DeliveryLocation = "Thamel"
	f.DeliveryDetails.Landmark = "next to the bridge"

	n := Normalize(f)
	assert.Empty(t, n.Address)
	assert.Empty(t, n.DeliveryDetails.DeliveryLocation)
	assert.Empty(t, n.DeliveryDetails.Landmark)
}

func TestState_SetFieldClearsRecordedError(t *testing.T) {
	s := NewState(fixedValidator())

	_, errs := s.Validate()
	require.NotNil(t, errs)
	require.Contains(t, s.Errors(), "fullName")

	s.SetField("fullName", "Ram Sharma")
	assert.NotContains(t, s.Errors(), "fullName")
	// other field errors are untouched
	assert.Contains(t, s.Errors(), "phone")
}

func TestState_ValidateAndReset(t *testing.T) {
	s := NewState(fixedValidator())
	s.SetField("fullName", "  Sita Devi ")
	s.SetField("phone", "+9779851234567")
	s.SetField("deliveryOption", OptionPickup)
	s.SetField("deliveryDate", "2024-02-01")
	s.SetField("deliveryTime", "10:00 AM")
	s.SetDeliveryDetail("secondaryPhone", "+9779812345678")

	snapshot, errs := s.Validate()
	require.Nil(t, errs)
	assert.Equal(t, "Sita Devi", snapshot.FullName)
	assert.Equal(t, "+9779812345678", snapshot.DeliveryDetails.SecondaryPhone)

	s.Reset()
	assert.Equal(t, emptyForm(), s.Form())
	assert.Empty(t, s.Errors())
}
