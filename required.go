package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrMissingKey indicates that the token payload is missing a field
// tagged as `json:"...,required"` on the destination struct.
//
// Use errors.Is(err, ErrMissingKey) to check for it.
var ErrMissingKey = errors.New("jwt: token is missing a required field")

// UnmarshalWithRequired binds JSON payload bytes to "dest" like the
// standard unmarshaler and then rejects zero values on struct fields
// carrying the ",required" JSON tag option.
//
// Enable it package-wide with:
//
//	jwt.Unmarshal = jwt.UnmarshalWithRequired
func UnmarshalWithRequired(payload []byte, dest any) error {
	if err := json.Unmarshal(payload, dest); err != nil {
		return err
	}

	return meetRequirements(reflect.ValueOf(dest))
}

// HasRequiredJSONTag reports whether an exported struct field carries
// the ",required" JSON tag option.
func HasRequiredJSONTag(field reflect.StructField) bool {
	if isExported := field.PkgPath == ""; !isExported {
		return false
	}

	tag := field.Tag.Get("json")
	return strings.Contains(tag, ",required")
}

func meetRequirements(val reflect.Value) (err error) {
	val = reflect.Indirect(val)
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		// skip unexported fields here.
		if isExported := field.PkgPath == ""; !isExported {
			continue
		}

		if fieldTyp := indirectType(field.Type); fieldTyp.Kind() == reflect.Struct {
			if err = meetRequirements(val.Field(i)); err != nil {
				return err
			}

			continue
		}

		if HasRequiredJSONTag(field) {
			if val.Field(i).IsZero() {
				return fmt.Errorf("%w: %q", ErrMissingKey, field.Name)
			}
		}
	}

	return
}

// indirectType unwraps pointer and container types to the element type.
func indirectType(typ reflect.Type) reflect.Type {
	switch typ.Kind() {
	case reflect.Ptr, reflect.Array, reflect.Chan, reflect.Map, reflect.Slice:
		return typ.Elem()
	}
	return typ
}
