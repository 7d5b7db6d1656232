package language

// Language identifies one of the written languages the assistant supports.
type Language string

const (
	English Language = "english"
	Hindi   Language = "hindi"
	Tamil   Language = "tamil"
)

// Detect classifies text by script. Tamil is checked before Devanagari, so a
// string mixing both scripts resolves to Tamil; text in neither script is
// treated as English. Detect always returns a value.
func Detect(text string) Language {
	for _, r := range text {
		if r >= 0x0B80 && r <= 0x0BFF {
			return Tamil
		}
	}
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return Hindi
		}
	}
	return English
}

// All lists the supported languages in detection order.
func All() []Language {
	return []Language{Tamil, Hindi, English}
}
