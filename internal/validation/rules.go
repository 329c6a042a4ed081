package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Custom validator tags
const (
	TagUsername = "username"
	TagMailbox  = "mailbox"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9가-힣_]+$`)
	// ASCII local part, dotted hostname labels and an alphabetic TLD of at least two letters
	mailboxPattern = regexp.MustCompile(`^[A-Za-z0-9_'+\-.]*[A-Za-z0-9_+\-]@([A-Za-z0-9][A-Za-z0-9\-]*\.)+[A-Za-z]{2,}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation(TagUsername, func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation(TagMailbox, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return mailboxPattern.MatchString(s) && !strings.HasPrefix(s, ".") && !strings.Contains(s, "..")
	}); err != nil {
		panic(err)
	}

	return v
}

// Tag rejects a value failing the validator tag, e.g. "required" or "max=20".
func Tag(tag, message string) Rule {
	return func(value string) (string, bool) {
		return message, validate.Var(value, tag) == nil
	}
}

// Required rejects an empty value.
func Required(message string) Rule {
	return Tag("required", message)
}

// MinLen rejects a value shorter than n characters.
func MinLen(n int, message string) Rule {
	return Tag("min="+strconv.Itoa(n), message)
}

// MaxLen rejects a value longer than n characters.
func MaxLen(n int, message string) Rule {
	return Tag("max="+strconv.Itoa(n), message)
}

// Email rejects a value that is not a bare address of the form local@domain.tld.
func Email(message string) Rule {
	return Tag("email,"+TagMailbox, message)
}

// OneOf rejects a value outside the allowed set. The message is fixed and
// never echoes the rejected value.
func OneOf(message string, allowed ...string) Rule {
	return Tag("oneof="+strings.Join(allowed, " "), message)
}
