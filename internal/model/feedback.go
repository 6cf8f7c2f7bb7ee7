package model

// AiFeedback is the advisory result for one motivation letter text.
type AiFeedback struct {
	Score  float64 `json:"score"`
	Advice string  `json:"advice"`
}
