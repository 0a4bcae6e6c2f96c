package whatlang

import (
	"microblog-service/internal/domain/ports/output/language"

	"github.com/abadojack/whatlanggo"
)

// Detector guesses the ISO 639-1 code of a text. Guesses below minConfidence
// are reported as unknown.
type Detector struct {
	minConfidence float64
}

func NewDetector(minConfidence float64) *Detector {
	return &Detector{minConfidence: minConfidence}
}

func (d *Detector) Detect(text string) string {
	info := whatlanggo.Detect(text)
	if info.Lang == -1 || info.Confidence < d.minConfidence {
		return language.UnknownLanguage
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return language.UnknownLanguage
	}
	return code
}
