package diag

// Severity ranks a diagnostic. Все четыре фазы сейчас репортят только
// ошибки; Warning существует для Bag.HasErrors/HasWarnings и сортировки.
type Severity uint8

const (
	// SevWarning is for diagnostics that do not fail the analysis.
	SevWarning Severity = iota + 1
	// SevError is for diagnostics that fail the analysis.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
