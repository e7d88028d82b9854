package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexnogueira4/side-take-home/internal/response"
	"github.com/alexnogueira4/side-take-home/internal/validation"
)

// Context keys under which validated source values are stored.
const (
	QueryKey  = "validated:query"
	ParamsKey = "validated:params"
	BodyKey   = "validated:body"
)

// Targets names the input sources a route validates. Nil schemas are skipped.
type Targets struct {
	Query  validation.Schema
	Params validation.Schema
	Body   validation.Schema
}

// Validate checks every named source before the handler runs. Violations from
// all sources are collected and reported in a single 400 response; on success
// the normalized values are stored in the context under the source's key.
func Validate(t Targets) gin.HandlerFunc {
	return func(c *gin.Context) {
		var violations []validation.FieldError

		if t.Query != nil {
			normalized, err := t.Query.ValidateValues(c.Request.URL.Query())
			if err == nil {
				c.Set(QueryKey, normalized)
			}
			violations = appendViolations(violations, err)
		}

		if t.Params != nil {
			values := make(map[string][]string, len(c.Params))
			for _, p := range c.Params {
				values[p.Key] = []string{p.Value}
			}
			normalized, err := t.Params.ValidateValues(values)
			if err == nil {
				c.Set(ParamsKey, normalized)
			}
			violations = appendViolations(violations, err)
		}

		if t.Body != nil {
			var body map[string]any
			if err := c.ShouldBindJSON(&body); err != nil {
				violations = append(violations, validation.FieldError{
					Message: "request body must be a JSON object",
				})
			} else {
				normalized, err := t.Body.ValidateJSON(body)
				if err == nil {
					c.Set(BodyKey, normalized)
				}
				violations = appendViolations(violations, err)
			}
		}

		if len(violations) > 0 {
			err := &validation.ValidationError{Fields: violations}
			response.ApiError(c, http.StatusBadRequest, err.Error())
			return
		}

		c.Next()
	}
}

func appendViolations(violations []validation.FieldError, err error) []validation.FieldError {
	if err == nil {
		return violations
	}
	var v *validation.ValidationError
	if errors.As(err, &v) {
		return append(violations, v.Fields...)
	}
	return append(violations, validation.FieldError{Message: err.Error()})
}
