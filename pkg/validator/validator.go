package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidJSON is returned by DecodeRequest when the body is empty, is not
// a single JSON object, or a field value does not match its Go type.
var ErrInvalidJSON = errors.New("invalid JSON body")

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := jsonName(fld)
		// ignore explicitly ignored
		if name == "-" {
			return fld.Name
		}
		return name
	})
}

// jsonName is the object key a struct field decodes from.
func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		return fld.Name
	}
	return name
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

func formatFieldError(e validator.FieldError) string {
	if e.Tag() == "required" {
		return "This field is required"
	}
	return fmt.Sprintf("Validation failed on '%s'", e.Tag())
}

// DecodeRequest decodes the JSON request body into the struct T and validates it.
// The body must hold exactly one JSON object; trailing data is rejected.
// Keys match json tags exactly, so "NAME" never fills a field tagged "name".
// Decoding failures wrap ErrInvalidJSON; validation failures are returned
// as validator.ValidationErrors. Response writing is left to the caller.
func DecodeRequest[T any](r *http.Request) (*T, error) {
	dec := json.NewDecoder(r.Body)
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidJSON)
	}

	var req T
	if err := decodeFields(fields, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if err := Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// decodeFields fills the exported fields of the struct dst from the entries
// of fields whose key equals the field's json name. Other keys are ignored.
func decodeFields(fields map[string]json.RawMessage, dst any) error {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("decode target %s is not a struct", t)
	}
	for i := range t.NumField() {
		fld := t.Field(i)
		if !fld.IsExported() {
			continue
		}
		name := jsonName(fld)
		raw, ok := fields[name]
		if !ok || name == "-" {
			continue
		}
		if err := json.Unmarshal(raw, v.Field(i).Addr().Interface()); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}
