package validators_test

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

func TestIsPhoneValid(t *testing.T) {
	assert.True(t, validators.IsPhoneValid("(21) 99999-8888"))
	assert.True(t, validators.IsPhoneValid("+5521999998888"))
	assert.False(t, validators.IsPhoneValid("12345"))
	assert.False(t, validators.IsPhoneValid("abc"))
}

func TestIsSlotLabel(t *testing.T) {
	assert.True(t, validators.IsSlotLabel("08:30"))
	assert.True(t, validators.IsSlotLabel("08:30:00"))
	assert.False(t, validators.IsSlotLabel("8h30"))
	assert.False(t, validators.IsSlotLabel("+9:00"))
	assert.False(t, validators.IsSlotLabel("10:00:5"))
}

func TestRegister_BindingTags(t *testing.T) {
	require.NoError(t, validators.Register())

	type req struct {
		Time  string    `binding:"required,slotlabel"`
		Phone string    `binding:"required,phone"`
		Slots *[]string `binding:"omitempty,dive,slotlabel"`
	}

	ok := []string{"10:00"}
	assert.NoError(t, binding.Validator.ValidateStruct(req{Time: "10:00", Phone: "21999998888", Slots: &ok}))
	assert.Error(t, binding.Validator.ValidateStruct(req{Time: "25:00", Phone: "21999998888"}))
	assert.Error(t, binding.Validator.ValidateStruct(req{Time: "10:00", Phone: "1"}))

	bad := []string{"10:00", "nope"}
	assert.Error(t, binding.Validator.ValidateStruct(req{Time: "10:00", Phone: "21999998888", Slots: &bad}))
}
