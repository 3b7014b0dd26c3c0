package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email   string `validate:"required,email"`
	Website string `validate:"omitempty,url"`
}

func TestValidate_Passes(t *testing.T) {
	assert.Nil(t, Validate(&sample{Email: "ana@grupounion.com.br"}))
}

func TestValidate_ReportsFailedRulePerField(t *testing.T) {
	fields := Validate(&sample{Email: "não-é-email", Website: "tampouco-url"})

	assert.Equal(t, "email", fields["Email"])
	assert.Equal(t, "url", fields["Website"])
}
