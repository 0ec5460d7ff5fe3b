// httperr.go - JSON error responses shared by all handlers

package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Message writes a plain {"message": ...} error body.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Internal logs the underlying error server-side and returns a generic 500
// so store details never leak to clients.
func Internal(c *gin.Context, log zerolog.Logger, err error) {
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("internal error")
	Message(c, http.StatusInternalServerError, "Server error")
}

// Validation translates a binding failure into a 400 response. Validator
// errors come back with per-field messages; anything else (malformed JSON,
// wrong types) gets a single message.
func Validation(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldName(fe)] = constraintMessage(fe)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": fields})
		return
	}
	Message(c, http.StatusBadRequest, err.Error())
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	return strings.ToLower(name[:1]) + name[1:]
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Split(fe.Param(), " "), ", "))
	default:
		return "is invalid"
	}
}
