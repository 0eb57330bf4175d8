package content

// Level is a JLPT proficiency level.
type Level string

const (
	N5 Level = "N5"
	N4 Level = "N4"
	N3 Level = "N3"
	N2 Level = "N2"
	N1 Level = "N1"
)

// Levels returns all levels ordered easiest to hardest.
func Levels() []Level {
	return []Level{N5, N4, N3, N2, N1}
}

// Valid reports whether l is a known JLPT level.
func (l Level) Valid() bool {
	switch l {
	case N5, N4, N3, N2, N1:
		return true
	}
	return false
}

// DisplayName returns a short difficulty label for the level.
func (l Level) DisplayName() string {
	switch l {
	case N5:
		return "Beginner"
	case N4:
		return "Basic"
	case N3:
		return "Intermediate"
	case N2:
		return "Upper-Intermediate"
	case N1:
		return "Advanced"
	}
	return string(l)
}
