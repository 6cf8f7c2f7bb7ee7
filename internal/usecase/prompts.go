package usecase

import (
	"fmt"

	"google.golang.org/genai"
)

// HostName is the programme host the welcome message is attributed to.
const HostName = "Denis"

const (
	motivationPromptTemplate = `Tu es le directeur de casting de Koh Lanta Senior. Analyse cette lettre de motivation d'un candidat âgé : "%s". Donne un score sur 100 pour l'esprit d'aventure et un conseil court pour améliorer la candidature.`

	hostMessagePromptTemplate = `Génère un message d'accueil très court (1 phrase) de la part de Denis Brogniart pour le candidat %s qui vient compléter son dossier pour Koh Lanta Senior. Ton solennel et encourageant.`

	// FallbackAdvice accompanies FallbackScore whenever analysis fails.
	FallbackAdvice = "Impossible d'analyser pour le moment. Vérifiez votre connexion."
	FallbackScore  = 50

	hostMessageFallbackTemplate = "Bienvenue %s, la tribu vous attend."
)

func motivationPrompt(letter string) string {
	return fmt.Sprintf(motivationPromptTemplate, letter)
}

func hostMessagePrompt(firstName string) string {
	return fmt.Sprintf(hostMessagePromptTemplate, firstName)
}

func hostMessageFallback(firstName string) string {
	return fmt.Sprintf(hostMessageFallbackTemplate, firstName)
}

// motivationSchema constrains the analysis reply to {score, advice}.
var motivationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":  {Type: genai.TypeNumber, Description: "Score sur 100"},
		"advice": {Type: genai.TypeString, Description: "Conseil constructif"},
	},
	Required: []string{"score", "advice"},
}
