package config

import (
	"fmt"

	"github.com/fadilmartias/casting-intake/internal/model"
	"github.com/spf13/viper"
)

// LoadDossierSeed returns the pre-identified dossier every new session starts
// from. DOSSIER_SEED_FILE may point at a YAML or JSON file whose keys follow
// the dossier JSON names; fields it omits keep the built-in values.
func LoadDossierSeed() (model.CandidateDossier, error) {
	return LoadDossierSeedFrom(env().GetString("DOSSIER_SEED_FILE"))
}

func LoadDossierSeedFrom(path string) (model.CandidateDossier, error) {
	seed := model.MockCandidate()
	if path == "" {
		return seed, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return seed, fmt.Errorf("read dossier seed %s: %w", path, err)
	}
	if err := v.Unmarshal(&seed); err != nil {
		return seed, fmt.Errorf("decode dossier seed %s: %w", path, err)
	}
	if seed.ID == "" || seed.FirstName == "" {
		return seed, fmt.Errorf("dossier seed %s: id and firstName are required", path)
	}
	return seed, nil
}
