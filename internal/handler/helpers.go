package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidationFields(fields))
		return false
	}
	return true
}

// respondError maps the service error taxonomy onto HTTP status codes.
// Unclassified errors become a generic 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apierror.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, apierror.ErrValidation), errors.Is(err, apierror.ErrConflict):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}

// pathID parses the ":id" style UUID path parameter. Returns false and writes
// the 400 response when invalid — mirror of bindAndValidate's contract.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return uuid.Nil, false
	}
	return id, true
}
