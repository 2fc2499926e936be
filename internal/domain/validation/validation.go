// Package validation evaluates required-field rule sets for entity factories.
//
// Every rule in a set is evaluated. Failed rules are recorded in a bitmask and
// rendered into one message that names exactly the failed subjects, grouped by
// the phrase they share:
//
//	Name and description cannot be null or empty
//	Quantity must be greater than zero
package validation

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Canonical phrases shared by the rule constructors.
const (
	PhraseRequired = "cannot be null or empty"
	PhrasePositive = "must be greater than zero"
	PhraseNegative = "cannot be negative"
)

// Rule is one named predicate over a creation request.
type Rule struct {
	Field   string      // request field name, reported in Error.Fields
	Subject string      // lower-case noun used in the message
	Phrase  string      // canonical failure phrase
	Valid   func() bool // true when the rule holds
}

// Error is the single failure produced by Check.
type Error struct {
	Mask   uint64   // bit i is set when rule i failed; rules past 64 are not reflected
	Fields []string // failed field names in rule order
	msg    string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) HTTPCode() int { return http.StatusBadRequest }

func (e *Error) ErrorCode() string { return "VALIDATION_FAILED" }

func (e *Error) Message() string { return e.msg }

func (e *Error) Details() string { return strings.Join(e.Fields, ",") }

// Is makes errors.Is(err, domainerrors.ErrValidationFailed) hold.
func (e *Error) Is(target error) bool {
	return target == error(domainerrors.ErrValidationFailed)
}

// Has reports whether the named field failed.
func (e *Error) Has(field string) bool {
	return slices.Contains(e.Fields, field)
}

// Check evaluates every rule and returns nil when all hold.
func Check(rules ...Rule) error {
	var (
		mask   uint64
		fields []string
		failed []Rule
	)

	for i, rule := range rules {
		if rule.Valid() {
			continue
		}
		if i < 64 {
			mask |= 1 << uint(i)
		}
		if !slices.Contains(fields, rule.Field) {
			fields = append(fields, rule.Field)
		}
		failed = append(failed, rule)
	}

	if len(failed) == 0 {
		return nil
	}

	return &Error{
		Mask:   mask,
		Fields: fields,
		msg:    format(failed),
	}
}

// format groups failed subjects by phrase in first-appearance order.
func format(failed []Rule) string {
	var phrases []string
	subjects := make(map[string][]string)

	for _, rule := range failed {
		if _, ok := subjects[rule.Phrase]; !ok {
			phrases = append(phrases, rule.Phrase)
		}
		if !slices.Contains(subjects[rule.Phrase], rule.Subject) {
			subjects[rule.Phrase] = append(subjects[rule.Phrase], rule.Subject)
		}
	}

	clauses := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		clauses = append(clauses, joinList(subjects[phrase])+" "+phrase)
	}

	msg := joinList(clauses)

	return strings.ToUpper(msg[:1]) + msg[1:]
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// NotBlank requires a non-empty string after trimming.
func NotBlank(field, subject, value string) Rule {
	return Rule{
		Field:   field,
		Subject: subject,
		Phrase:  PhraseRequired,
		Valid:   func() bool { return strings.TrimSpace(value) != "" },
	}
}

// NotNil requires a non-nil pointer.
func NotNil[T any](field, subject string, value *T) Rule {
	return Rule{
		Field:   field,
		Subject: subject,
		Phrase:  PhraseRequired,
		Valid:   func() bool { return value != nil },
	}
}

// NotZeroID requires a reference to be set.
func NotZeroID(field, subject string, id uuid.UUID) Rule {
	return Rule{
		Field:   field,
		Subject: subject,
		Phrase:  PhraseRequired,
		Valid:   func() bool { return id != uuid.Nil },
	}
}

// NotEmpty requires at least one element.
func NotEmpty[T any](field, subject string, items []T) Rule {
	return Rule{
		Field:   field,
		Subject: subject,
		Phrase:  PhraseRequired,
		Valid:   func() bool { return len(items) > 0 },
	}
}

// Positive requires a decimal strictly greater than zero.
func Positive(field, subject string, value decimal.Decimal) Rule {
	return Rule{
		Field:   field,
		Subject: subject,
		Phrase:  PhrasePositive,
		Valid:   func() bool { return value.IsPositive() },
	}
}

// NotNegative requires a decimal of zero or more. A nil value passes; pair it
// with NotNil when presence is also required.
func NotNegative(field, subject string, value *decimal.Decimal) Rule {
	return Rule{
		Field:   field,
		Subject: subject,
		Phrase:  PhraseNegative,
		Valid:   func() bool { return value == nil || !value.IsNegative() },
	}
}

// PositiveInt requires an integer strictly greater than zero.
func PositiveInt(field, subject string, value int) Rule {
	return Rule{
		Field:   field,
		Subject: subject,
		Phrase:  PhrasePositive,
		Valid:   func() bool { return value > 0 },
	}
}

// InRange requires min <= value <= max.
func InRange(field, subject string, value, min, max int) Rule {
	return Rule{
		Field:   field,
		Subject: subject,
		Phrase:  fmt.Sprintf("must be within the range %d-%d", min, max),
		Valid:   func() bool { return value >= min && value <= max },
	}
}

// Must wraps an arbitrary precomputed condition.
func Must(field, subject, phrase string, ok bool) Rule {
	return Rule{
		Field:   field,
		Subject: subject,
		Phrase:  phrase,
		Valid:   func() bool { return ok },
	}
}
