package rules

import (
	"errors"
	"net/url"

	"github.com/araddon/dateparse"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ValidDate reports whether s parses as a calendar date or timestamp.
//
// Any layout the general-purpose parser recognises is accepted, including
// ambiguous month/day orders and named months. The check is deliberately
// loose and is not an ISO-8601 validator.
func ValidDate(s string) bool {
	_, err := dateparse.ParseAny(s)
	return err == nil
}

// ValidURL reports whether s is an absolute URL with a scheme and an
// authority. Relative references are rejected.
func ValidURL(s string) bool {
	return validation.Validate(s,
		validation.Required,
		is.RequestURL,
		validation.By(hasAuthority),
	) == nil
}

func hasAuthority(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}
