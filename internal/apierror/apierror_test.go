package apierror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomia(t *testing.T) {
	err := NotFound("Vehículo %s no encontrado", "AB123CD")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "Vehículo AB123CD no encontrado", err.Error())

	assert.True(t, errors.Is(Validation("campo requerido"), ErrValidation))
	assert.True(t, errors.Is(Conflict("duplicado"), ErrConflict))
}

func TestTaxonomiaSobreviveWrap(t *testing.T) {
	err := fmt.Errorf("creando vehículo: %w", Conflict("matrícula duplicada"))
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestNewValidationFields(t *testing.T) {
	v := NewValidationFields(map[string]string{"email": "formato inválido"})
	assert.Equal(t, "Error de validacion", v.Detail)
	assert.Equal(t, "formato inválido", v.Fields["email"])
}
