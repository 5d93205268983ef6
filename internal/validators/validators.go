package validators

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
)

var phoneDigits = regexp.MustCompile(`^\+?[0-9]{10,13}$`)

// IsSlotLabel aceita "HH:MM" ou "HH:MM:SS".
func IsSlotLabel(s string) bool {
	_, err := slot.ParseLabel(s)
	return err == nil
}

// IsPhoneValid aceita telefones brasileiros com DDD, com ou sem +55,
// ignorando espaços, parênteses e hífens.
func IsPhoneValid(phone string) bool {
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneDigits.MatchString(clean)
}

// Register adiciona as tags "slotlabel" e "phone" ao validador do gin.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("slotlabel", func(fl validator.FieldLevel) bool {
		return IsSlotLabel(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsPhoneValid(fl.Field().String())
	})
}
