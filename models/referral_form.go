package models

import (
	"errors"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// whitespace matches the runes treated as blank, Unicode separators and
// the BOM included.
const whitespace = `\s\x{0B}\p{Z}\x{FEFF}`

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z` + whitespace + `]+$`)
	phoneRegex = regexp.MustCompile(`^\+?\d{10,}$`)
	emailRegex = regexp.MustCompile(`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`)
)

// RelationshipTypes are the options of the relationship select.
var RelationshipTypes = []string{"Amigo", "Colega", "Familiar", "Otra relación"}

// AcquaintanceTimes lists the "how long have you known them" options.
// The empty value means none selected.
var AcquaintanceTimes = []string{"", "Menos de 1 año", "1-3 años", "Más de 3 años"}

const DefaultRelationshipType = "Otra relación"

// ReferralForm is the state of the "Referir nuevo talento" form.
type ReferralForm struct {
	FullName             string `json:"fullName" form:"fullName" validate:"personname"`
	Position             string `json:"position" form:"position" validate:"mintrimmed=2"`
	Phone                string `json:"phone" form:"phone" validate:"omitempty,phonenumber"`
	Email                string `json:"email" form:"email" validate:"omitempty,simpleemail"`
	RelationshipType     string `json:"relationshipType" form:"relationshipType" validate:"relationship"`
	AcquaintanceTime     string `json:"acquaintanceTime" form:"acquaintanceTime" validate:"acquaintance"`
	RecommendationReason string `json:"recommendationReason" form:"recommendationReason" validate:"nonblank"`
	AttachedFile         string `json:"attachedFile,omitempty" form:"-"`
}

// FieldErrors maps a form field (its JSON name) to the message shown under it.
type FieldErrors map[string]string

var fieldMessages = map[string]string{
	"fullName":             "Campo requerido. Solo letras y espacios, mínimo 3 caracteres.",
	"position":             "Campo requerido, mínimo 2 caracteres.",
	"phone":                "Formato numérico inválido (ej. 10 dígitos).",
	"email":                "Formato de email inválido.",
	"relationshipType":     "Selecciona un tipo de relación de la lista.",
	"acquaintanceTime":     "Selecciona un tiempo de la lista.",
	"recommendationReason": "Este campo es requerido.",
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "personname", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return utf8.RuneCountInString(trimBlank(s)) >= 3 && nameRegex.MatchString(s)
	})
	mustRegister(v, "mintrimmed", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(trimBlank(fl.Field().String())) >= n
	})
	mustRegister(v, "phonenumber", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(stripSpaces(fl.Field().String()))
	})
	mustRegister(v, "simpleemail", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	mustRegister(v, "nonblank", func(fl validator.FieldLevel) bool {
		return trimBlank(fl.Field().String()) != ""
	})
	mustRegister(v, "relationship", func(fl validator.FieldLevel) bool {
		return slices.Contains(RelationshipTypes, fl.Field().String())
	})
	mustRegister(v, "acquaintance", func(fl validator.FieldLevel) bool {
		return slices.Contains(AcquaintanceTimes, fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func isBlank(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r) || unicode.In(r, unicode.Z)
}

func trimBlank(s string) string {
	return strings.TrimFunc(s, isBlank)
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if isBlank(r) {
			return -1
		}
		return r
	}, s)
}

// NewReferralForm returns an empty form with the default relationship.
func NewReferralForm() ReferralForm {
	return ReferralForm{RelationshipType: DefaultRelationshipType}
}

// Validate checks every field and returns the failing ones. It never
// returns nil; an empty map means the form can be submitted.
func (f ReferralForm) Validate() FieldErrors {
	errs := FieldErrors{}

	var verrs validator.ValidationErrors
	if err := formValidator.Struct(f); errors.As(err, &verrs) {
		for _, fe := range verrs {
			errs[fe.Field()] = fieldMessages[fe.Field()]
		}
	}

	return errs
}

// SubmitEnabled reports whether the submit button is active.
func (f ReferralForm) SubmitEnabled() bool {
	return len(f.Validate()) == 0
}
