package modes

type Mode uint8

const (
	ModeDevelopment Mode = iota + 1
	ModeProduction
)

func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "development"
	case ModeProduction:
		return "production"
	}
	return "unknown"
}

// Strict reports whether runtime self checks should be on by default.
func (m Mode) Strict() bool {
	return m != ModeProduction
}
