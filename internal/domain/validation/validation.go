// Package validation implements the rule sets that guard entity payloads
// before they reach the repositories. It checks shape-validity only;
// referential validity (does this owner exist?) stays with the owning service.
package validation

import (
	"strings"
	"unicode"

	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/errors"

	"github.com/go-playground/validator/v10"
)

// minPasswordLength is the floor of the account password policy.
const minPasswordLength = 8

// AccountPayload is the candidate shape shared by Owner, Vet and User
// payloads: the identity fields every account record carries.
type AccountPayload struct {
	Name     string `validate:"notblank"`
	Email    string `validate:"notblank,email,emaildomain"`
	Username string `validate:"notblank,min=5"`
	Password string `validate:"required,password"`
}

// UserPayload extends the account shape with an explicit role, since User
// operations accept the role from the caller instead of deriving it.
type UserPayload struct {
	AccountPayload
	Role string `validate:"role"`
}

// PetPayload is the candidate shape of a pet record.
type PetPayload struct {
	Name    string  `validate:"notblank"`
	Breed   string  `validate:"notblank"`
	Color   string  `validate:"notblank"`
	Age     int     `validate:"gte=0"`
	Weight  float64 `validate:"gte=0"`
	Type    string  `validate:"pettype"`
	OwnerID string  `validate:"notblank"`
}

// Engine wraps a configured validator instance. One engine is shared by all
// services; it is safe for concurrent use.
type Engine struct {
	validate *validator.Validate
}

// New builds the engine and registers the clinic's custom rules.
func New() (*Engine, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	rules := map[string]validator.Func{
		"notblank":    notBlank,
		"emaildomain": emailDomain,
		"password":    strongPassword,
		"role":        validRole,
		"pettype":     validPetType,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, errors.Wrapf(err, "register %q validation", tag)
		}
	}

	return &Engine{validate: v}, nil
}

// ValidateOwner checks an owner candidate against the account rule set.
func (e *Engine) ValidateOwner(payload *AccountPayload) error {
	return e.check("owner", payload)
}

// ValidateVet checks a vet candidate against the account rule set.
func (e *Engine) ValidateVet(payload *AccountPayload) error {
	return e.check("vet", payload)
}

// ValidateUser checks a user candidate, including its role value.
func (e *Engine) ValidateUser(payload *UserPayload) error {
	return e.check("user", payload)
}

// ValidatePet checks a pet candidate against the pet rule set.
func (e *Engine) ValidatePet(payload *PetPayload) error {
	return e.check("pet", payload)
}

// check runs the rule set and converts validator failures into the domain's
// structured ValidationError so they surface to callers as a client fault.
func (e *Engine) check(entityKind string, payload any) error {
	err := e.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrapf(err, "validate %s payload", entityKind)
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domainerrors.FieldViolation{
			Field:   strings.ToLower(fe.Field()),
			Rule:    fe.Tag(),
			Message: messageFor(fe),
		})
	}

	return domainerrors.NewValidationError(entityKind, violations)
}

// messageFor renders a human-readable description for a single failure.
func messageFor(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "notblank", "required":
		return field + " must not be blank"
	case "email", "emaildomain":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param() + " characters long"
	case "gte":
		return field + " must not be negative"
	case "password":
		return field + " must be at least 8 characters and contain an uppercase letter, a lowercase letter, a digit and a symbol"
	case "role":
		return field + " must be one of ADMIN, OWNER or VET"
	case "pettype":
		return field + " must be a supported species"
	default:
		return field + " is invalid"
	}
}

// notBlank rejects empty and whitespace-only strings.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// emailDomain requires a dotted domain after the @, which the baseline email
// rule does not (it accepts e.g. "user@localhost").
func emailDomain(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	at := strings.LastIndex(value, "@")
	if at < 0 {
		return false
	}

	domain := value[at+1:]

	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// strongPassword enforces the account password policy.
func strongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < minPasswordLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSymbol
}

// validRole accepts only members of the Role enum.
func validRole(fl validator.FieldLevel) bool {
	_, ok := entity.ParseRole(fl.Field().String())

	return ok
}

// validPetType accepts only members of the PetType enum.
func validPetType(fl validator.FieldLevel) bool {
	_, ok := entity.ParsePetType(fl.Field().String())

	return ok
}
