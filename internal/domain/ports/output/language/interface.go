package language

// UnknownLanguage is what detectors return when they cannot decide.
const UnknownLanguage = "UNKNOWN"

//go:generate mockery --name Detector --dir . --output ../../../../../mocks/language --outpkg mocks --with-expecter --filename Detector.go
type Detector interface {
	Detect(text string) string
}
