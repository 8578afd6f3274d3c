// Package inputval validates form input structs declared with `validate`
// and `label` tags, producing user-facing messages.
//
// Example:
//
//	type createInput struct {
//	    Name  string `validate:"required,max=120" label:"Name"`
//	    Email string `validate:"required,email" label:"Email"`
//	}
//
//	if result := inputval.Validate(input); result.HasErrors() {
//	    renderWithError(result.First())
//	    return
//	}
package inputval

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// FieldError is one failed rule on one field.
type FieldError struct {
	Field   string
	Message string
}

// Result collects the failures from one Validate call.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first failure message, or "".
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every failure message with "; ".
func (r *Result) All() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the string fields of a struct against their `validate`
// tags, in field order. At most one error is reported per field. Fields
// without a validate tag are skipped.
func Validate(input any) *Result {
	result := &Result{}

	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return result
	}
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		rules := field.Tag.Get("validate")
		if rules == "" || field.Type.Kind() != reflect.String {
			continue
		}
		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}
		value := v.Field(i).String()

		if msg := checkRules(value, rules, label); msg != "" {
			result.Errors = append(result.Errors, FieldError{Field: field.Name, Message: msg})
		}
	}
	return result
}

// checkRules runs the field's rules in tag order and returns the first
// failure message. Rules other than required pass on empty values, so an
// optional field only validates when filled in.
func checkRules(value, rules, label string) string {
	for _, rule := range strings.Split(rules, ",") {
		rule = strings.TrimSpace(rule)

		switch {
		case rule == "required":
			if strings.TrimSpace(value) == "" {
				return fmt.Sprintf("%s is required.", label)
			}
		case value == "":
			// optional and empty: nothing further to check

		case strings.HasPrefix(rule, "max="):
			n, err := strconv.Atoi(strings.TrimPrefix(rule, "max="))
			if err == nil && len(value) > n {
				return fmt.Sprintf("%s must be at most %d characters.", label, n)
			}
		case rule == "email":
			if !IsValidEmail(value) {
				return "A valid email address is required."
			}
		case rule == "httpurl":
			if !IsValidHTTPURL(value) {
				return fmt.Sprintf("%s must be a valid http or https URL.", label)
			}
		}
	}
	return ""
}
