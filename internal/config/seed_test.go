package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fadilmartias/casting-intake/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDossierSeedFrom_Default(t *testing.T) {
	seed, err := LoadDossierSeedFrom("")

	require.NoError(t, err)
	assert.Equal(t, model.MockCandidate(), seed)
}

func TestLoadDossierSeedFrom_YAML(t *testing.T) {
	path := writeSeed(t, "dossier.yaml", `
id: KL-SENIOR-2026-901
firstName: Monique
lastName: LEROY
age: 61
city: Tours
`)

	seed, err := LoadDossierSeedFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "KL-SENIOR-2026-901", seed.ID)
	assert.Equal(t, "Monique", seed.FirstName)
	assert.Equal(t, "LEROY", seed.LastName)
	assert.Equal(t, 61, seed.Age)
	assert.Equal(t, "Tours", seed.City)
	// Not in the file, kept from the built-in record.
	assert.Equal(t, "37230", seed.PostalCode)
	assert.Empty(t, seed.MotivationLetter)
}

func TestLoadDossierSeedFrom_JSON(t *testing.T) {
	path := writeSeed(t, "dossier.json", `{"id":"KL-1","firstName":"Jean","postalCode":"75001"}`)

	seed, err := LoadDossierSeedFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "KL-1", seed.ID)
	assert.Equal(t, "75001", seed.PostalCode)
}

func TestLoadDossierSeedFrom_Errors(t *testing.T) {
	_, err := LoadDossierSeedFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeSeed(t, "blank.yaml", "id: \"\"\nfirstName: \"\"\n")
	_, err = LoadDossierSeedFrom(path)
	assert.Error(t, err)
}
