// Package formcheck is the self-test run against every contact form payload
// after it has been sent. Each check is a pure predicate that never panics:
// a failure inside a check is reported as a failed Result.
package formcheck

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLength    = 2
	MaxNameLength    = 100
	MinMessageLength = 10
	MaxMessageLength = 5000
)

// RequiredFields are checked in this order.
var RequiredFields = []string{"name", "email", "subject", "message"}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Payload is the decoded JSON object that was submitted.
type Payload map[string]any

// Decode parses a JSON document into a Payload. A JSON null decodes to a nil
// Payload, which CheckShape rejects.
func Decode(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return p, nil
}

// Result is the outcome of one check.
type Result struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

func pass(msg string) Result { return Result{Passed: true, Message: msg} }
func fail(msg string) Result { return Result{Message: msg} }

// guard runs check and turns a panic into a failed result carrying the panic
// value.
func guard(check func() Result) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = fail(fmt.Sprint(r))
		}
	}()

	return check()
}

// CheckShape passes when the payload is a non-nil object.
func CheckShape(p Payload) Result {
	return guard(func() Result {
		if p == nil {
			return fail("Data object is invalid")
		}
		return pass("Form data validation successful")
	})
}

// CheckEmailFormat passes when email looks like local@domain.tld with no
// whitespace.
func CheckEmailFormat(email any) Result {
	return guard(func() Result {
		s, _ := email.(string)
		if !emailPattern.MatchString(s) {
			return fail("Invalid email format")
		}
		return pass("Email format is valid")
	})
}

// CheckRequiredFields passes when every required field is a string that is
// not blank. It reports the first offending field.
func CheckRequiredFields(p Payload) Result {
	return guard(func() Result {
		for _, field := range RequiredFields {
			v, ok := p[field]
			if !ok || v == nil {
				return fail(fmt.Sprintf(
					"Required field '%s' is missing", field,
				))
			}

			s, ok := v.(string)
			if !ok {
				return fail(fmt.Sprintf(
					"Required field '%s' is not text", field,
				))
			}
			if strings.TrimSpace(s) == "" {
				return fail(fmt.Sprintf(
					"Required field '%s' is missing", field,
				))
			}
		}
		return pass("All required fields are present")
	})
}

// CheckFieldTypes passes when every required field is a string.
func CheckFieldTypes(p Payload) Result {
	return guard(func() Result {
		for _, field := range RequiredFields {
			if _, ok := p[field].(string); !ok {
				return fail("Invalid data types")
			}
		}
		return pass("All data types are correct")
	})
}

// CheckNameLength passes for names of 2 to 100 characters.
func CheckNameLength(name any) Result {
	return guard(func() Result {
		n := utf8.RuneCountInString(name.(string))
		switch {
		case n < MinNameLength:
			return fail("Name too short (min 2 chars)")
		case n > MaxNameLength:
			return fail("Name too long (max 100 chars)")
		}
		return pass("Name length is valid")
	})
}

// CheckMessageLength passes for messages of 10 to 5000 characters.
func CheckMessageLength(message any) Result {
	return guard(func() Result {
		n := utf8.RuneCountInString(message.(string))
		switch {
		case n < MinMessageLength:
			return fail("Message too short (min 10 chars)")
		case n > MaxMessageLength:
			return fail("Message too long (max 5000 chars)")
		}
		return pass("Message length is valid")
	})
}
