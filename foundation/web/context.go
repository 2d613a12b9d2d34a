package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries the gin context plus a context.Context that middleware may
// replace (claims are injected there by Authenticate).
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrs []string
	queryErrs []string
}

// Respond writes data as json with the given status.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError writes the error response. Request errors keep their status
// and message; anything else is an opaque 500.
func (c *Context) RespondError(err error) error {
	if webErr, ok := errors.Cause(err).(*Error); ok {
		body := map[string]interface{}{
			"error":  webErr.Err.Error(),
			"status": false,
		}
		if len(webErr.Fields) > 0 {
			body["fields"] = webErr.Fields
		}
		c.JSON(webErr.Status, body)
		return nil
	}

	c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":  "internal server error",
		"status": false,
	})
	return err
}

// BindFunc binds the request body into data and checks that the named struct
// fields are present (non-nil pointers / non-zero values).
func (c *Context) BindFunc(data interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(data); err != nil {
		return NewRequestError(errors.Wrap(err, "parsing request body"), http.StatusBadRequest)
	}

	if len(requiredFields) == 0 {
		return nil
	}

	fields := map[string]string{}
	v := reflect.ValueOf(data).Elem()
	for _, name := range requiredFields {
		for _, part := range strings.Split(name, ",") {
			f := v.FieldByName(strings.TrimSpace(part))
			if !f.IsValid() {
				continue
			}
			if f.Kind() == reflect.Ptr && f.IsNil() {
				fields[part] = "required field"
				continue
			}
			if f.Kind() != reflect.Ptr && f.IsZero() {
				fields[part] = "required field"
			}
		}
	}
	if len(fields) > 0 {
		return &Error{
			Err:    errors.New("required fields are missing"),
			Status: http.StatusBadRequest,
			Fields: fields,
		}
	}

	return nil
}

// GetParam reads a path parameter as the given kind. Parse failures are
// collected and surfaced by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, fmt.Sprintf("param %q must be an integer", name))
			return 0
		}
		return n
	case reflect.String:
		return value
	default:
		c.paramErrs = append(c.paramErrs, fmt.Sprintf("param %q has unsupported kind", name))
		return nil
	}
}

func (c *Context) ValidParam() error {
	if len(c.paramErrs) == 0 {
		return nil
	}
	return NewRequestError(errors.New(strings.Join(c.paramErrs, "; ")), http.StatusBadRequest)
}

// GetQueryFunc reads an optional query parameter as a pointer of the given
// kind. A missing parameter yields a typed nil pointer so callers can assign
// the result straight into filter structs.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, exists := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !exists {
			return (*int)(nil)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Sprintf("query %q must be an integer", name))
			return (*int)(nil)
		}
		return &n
	case reflect.Float64:
		if !exists {
			return (*float64)(nil)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Sprintf("query %q must be a number", name))
			return (*float64)(nil)
		}
		return &f
	case reflect.Bool:
		if !exists {
			return (*bool)(nil)
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Sprintf("query %q must be a boolean", name))
			return (*bool)(nil)
		}
		return &b
	case reflect.String:
		if !exists {
			return (*string)(nil)
		}
		return &value
	default:
		c.queryErrs = append(c.queryErrs, fmt.Sprintf("query %q has unsupported kind", name))
		return nil
	}
}

func (c *Context) ValidQuery() error {
	if len(c.queryErrs) == 0 {
		return nil
	}
	return NewRequestError(errors.New(strings.Join(c.queryErrs, "; ")), http.StatusBadRequest)
}
