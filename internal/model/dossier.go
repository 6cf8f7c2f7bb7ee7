package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type SwimLevel string

const (
	SwimLevelNovice       SwimLevel = "Novice"
	SwimLevelIntermediate SwimLevel = "Intermédiaire"
	SwimLevelExpert       SwimLevel = "Expert"
)

// SwimLevels lists the accepted swim levels in display order.
var SwimLevels = []SwimLevel{SwimLevelNovice, SwimLevelIntermediate, SwimLevelExpert}

func (s SwimLevel) Valid() bool {
	for _, l := range SwimLevels {
		if s == l {
			return true
		}
	}
	return false
}

var (
	ErrReadOnlyField = errors.New("field is read-only")
	ErrUnknownField  = errors.New("unknown field")
	ErrInvalidValue  = errors.New("invalid value")
)

// CandidateDossier is the application record. Identity fields come from the
// pre-identification and cannot be edited; the rest is filled by the
// candidate and only checked for presence at submission.
type CandidateDossier struct {
	ID         string `json:"id" mapstructure:"id"`
	FirstName  string `json:"firstName" mapstructure:"firstName"`
	LastName   string `json:"lastName" mapstructure:"lastName"`
	Age        int    `json:"age" mapstructure:"age"`
	Address    string `json:"address" mapstructure:"address"`
	PostalCode string `json:"postalCode" mapstructure:"postalCode"`
	City       string `json:"city" mapstructure:"city"`
	Profession string `json:"profession" mapstructure:"profession"`

	PassportNumber      string    `json:"passportNumber" mapstructure:"passportNumber" validate:"required"`
	SwimLevel           SwimLevel `json:"swimLevel" mapstructure:"swimLevel" validate:"required,oneof=Novice Intermédiaire Expert"`
	EmergencyContact    string    `json:"emergencyContact" mapstructure:"emergencyContact" validate:"required"`
	DoctorName          string    `json:"doctorName" mapstructure:"doctorName" validate:"required"`
	MedicalStatus       string    `json:"medicalStatus" mapstructure:"medicalStatus" validate:"required"`
	MotivationLetter    string    `json:"motivationLetter" mapstructure:"motivationLetter" validate:"required"`
	DietaryRestrictions string    `json:"dietaryRestrictions" mapstructure:"dietaryRestrictions"`
}

// MockCandidate is the record "already on file" for the pre-identified
// applicant.
func MockCandidate() CandidateDossier {
	return CandidateDossier{
		ID:         "KL-SENIOR-2026-884",
		FirstName:  "Eric",
		LastName:   "JUBAULT",
		Age:        54,
		Address:    "35 rue André Malraux",
		PostalCode: "37230",
		City:       "Luynes",
		Profession: "Chargé de projets ferroviaire",
	}
}

// Clone returns an independent copy. The dossier holds only values, so a
// plain copy is enough; the method keeps call sites explicit.
func (d CandidateDossier) Clone() CandidateDossier {
	return d
}

func (d CandidateDossier) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

var readOnlyFields = map[string]struct{}{
	"id": {}, "firstName": {}, "lastName": {}, "age": {},
	"address": {}, "postalCode": {}, "city": {}, "profession": {},
}

// SetField applies one user edit addressed by its JSON name.
func (d *CandidateDossier) SetField(name, value string) error {
	if _, ok := readOnlyFields[name]; ok {
		return fmt.Errorf("%s: %w", name, ErrReadOnlyField)
	}
	switch name {
	case "passportNumber":
		d.PassportNumber = value
	case "swimLevel":
		level := SwimLevel(value)
		if value != "" && !level.Valid() {
			return fmt.Errorf("%s %q: %w", name, value, ErrInvalidValue)
		}
		d.SwimLevel = level
	case "emergencyContact":
		d.EmergencyContact = value
	case "doctorName":
		d.DoctorName = value
	case "medicalStatus":
		d.MedicalStatus = value
	case "motivationLetter":
		d.MotivationLetter = value
	case "dietaryRestrictions":
		d.DietaryRestrictions = value
	default:
		return fmt.Errorf("%s: %w", name, ErrUnknownField)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// MissingFields returns the JSON names of required supplementary fields that
// are blank or hold a value outside their enumeration. Whitespace-only
// values count as blank.
func (d CandidateDossier) MissingFields() []string {
	trimmed := d
	trimmed.PassportNumber = strings.TrimSpace(d.PassportNumber)
	trimmed.EmergencyContact = strings.TrimSpace(d.EmergencyContact)
	trimmed.DoctorName = strings.TrimSpace(d.DoctorName)
	trimmed.MedicalStatus = strings.TrimSpace(d.MedicalStatus)
	trimmed.MotivationLetter = strings.TrimSpace(d.MotivationLetter)

	err := validate.Struct(trimmed)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return missing
}

// EditableFields lists the JSON names the candidate may fill in.
var EditableFields = []string{
	"passportNumber", "swimLevel", "emergencyContact", "doctorName",
	"medicalStatus", "motivationLetter", "dietaryRestrictions",
}
