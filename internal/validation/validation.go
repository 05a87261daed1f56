// Package validation holds the per-operation input structs and the rule
// helpers they are built from. Each operation validates its full input before
// any domain logic runs and returns every violation at once.
package validation

import (
	"regexp"
	"strings"
)

type Violations map[string][]string

func (v Violations) Add(field, msg string) { v[field] = append(v[field], msg) }

func (v Violations) Empty() bool { return len(v) == 0 }

var (
	emailRegex   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	contactRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
)

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "The "+field+" field is required.")
	}
}

func RequiredID(field string, id uint, v Violations) {
	if id == 0 {
		v.Add(field, "The "+field+" field is required.")
	}
}

func MaxLen(field, value string, maxLen int, v Violations) {
	if len(value) > maxLen {
		v.Add(field, "The "+field+" field is too long.")
	}
}

func Email(field, value string, v Violations) {
	if value != "" && !emailRegex.MatchString(value) {
		v.Add(field, "The "+field+" must be a valid email address.")
	}
}

func ContactNumber(field, value string, v Violations) {
	if value != "" && !contactRegex.MatchString(value) {
		v.Add(field, "The "+field+" must be 10 to 15 digits.")
	}
}

func MinInt(field string, value, minValue int, v Violations) {
	if value < minValue {
		v.Add(field, "The "+field+" field is out of range.")
	}
}
