package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDossier() CandidateDossier {
	d := MockCandidate()
	d.PassportNumber = "18XX55555"
	d.SwimLevel = SwimLevelExpert
	d.EmergencyContact = "Marie Dubois 0611223344"
	d.DoctorName = "Dr. House"
	d.MedicalStatus = "RAS"
	d.MotivationLetter = "Je rêve de survivre sur une île depuis toujours."
	return d
}

func TestMockCandidate_SupplementaryFieldsEmpty(t *testing.T) {
	d := MockCandidate()

	assert.Equal(t, "KL-SENIOR-2026-884", d.ID)
	assert.Equal(t, "Eric", d.FirstName)
	assert.Empty(t, d.PassportNumber)
	assert.Empty(t, d.SwimLevel)
	assert.Empty(t, d.MotivationLetter)
	assert.Empty(t, d.DietaryRestrictions)
}

func TestSetField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr error
		check   func(t *testing.T, d CandidateDossier)
	}{
		{
			name:  "passport number",
			field: "passportNumber",
			value: "anything goes",
			check: func(t *testing.T, d CandidateDossier) { assert.Equal(t, "anything goes", d.PassportNumber) },
		},
		{
			name:  "swim level from enumeration",
			field: "swimLevel",
			value: "Intermédiaire",
			check: func(t *testing.T, d CandidateDossier) { assert.Equal(t, SwimLevelIntermediate, d.SwimLevel) },
		},
		{
			name:  "swim level cleared",
			field: "swimLevel",
			value: "",
			check: func(t *testing.T, d CandidateDossier) { assert.Empty(t, d.SwimLevel) },
		},
		{
			name:    "swim level outside enumeration",
			field:   "swimLevel",
			value:   "Olympique",
			wantErr: ErrInvalidValue,
		},
		{
			name:  "dietary restrictions",
			field: "dietaryRestrictions",
			value: "sans gluten",
			check: func(t *testing.T, d CandidateDossier) { assert.Equal(t, "sans gluten", d.DietaryRestrictions) },
		},
		{name: "identity is read-only", field: "lastName", value: "X", wantErr: ErrReadOnlyField},
		{name: "id is read-only", field: "id", value: "X", wantErr: ErrReadOnlyField},
		{name: "unknown field", field: "shoeSize", value: "44", wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := MockCandidate()
			err := d.SetField(tt.field, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, MockCandidate(), d)
				return
			}
			require.NoError(t, err)
			tt.check(t, d)
		})
	}
}

func TestMissingFields(t *testing.T) {
	t.Run("fresh dossier misses every required field", func(t *testing.T) {
		missing := MockCandidate().MissingFields()
		assert.ElementsMatch(t, []string{
			"passportNumber", "swimLevel", "emergencyContact",
			"doctorName", "medicalStatus", "motivationLetter",
		}, missing)
	})

	t.Run("complete dossier", func(t *testing.T) {
		assert.Empty(t, completeDossier().MissingFields())
	})

	t.Run("dietary restrictions are optional", func(t *testing.T) {
		d := completeDossier()
		d.DietaryRestrictions = ""
		assert.Empty(t, d.MissingFields())
	})

	t.Run("whitespace counts as blank", func(t *testing.T) {
		d := completeDossier()
		d.DoctorName = "   "
		assert.Equal(t, []string{"doctorName"}, d.MissingFields())
	})

	t.Run("no format check on passport", func(t *testing.T) {
		d := completeDossier()
		d.PassportNumber = "?"
		assert.Empty(t, d.MissingFields())
	})
}
