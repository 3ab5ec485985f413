// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/clarin-dspace/handle-resolver/internal/errors"
	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// HandleSyntax validates "<prefix>/<suffix>" with both parts non-empty.
var HandleSyntax = validation.NewStringRuleWithError(
	isHandle,
	validation.NewError("validation_handle_syntax", "must be a handle of the form prefix/suffix"),
)

// NamingAuthority validates a naming authority handle such as "0.NA/123456789".
var NamingAuthority = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.HasPrefix(s, domain.NAPrefix) && len(s) > len(domain.NAPrefix)
	},
	validation.NewError("validation_naming_authority", "must be a naming authority of the form 0.NA/prefix"),
)

// Prefix validates a bare handle prefix (no slash, no whitespace).
var Prefix = validation.NewStringRuleWithError(
	func(s string) bool {
		return s != "" && !strings.ContainsAny(s, "/ \t\r\n")
	},
	validation.NewError("validation_prefix", "must be a handle prefix without slashes"),
)

func isHandle(s string) bool {
	prefix, suffix, found := strings.Cut(s, "/")
	return found && prefix != "" && suffix != ""
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
