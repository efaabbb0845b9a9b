package config

// OutputFormat selects how position reports are rendered.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable lines
	JSON                     // One JSON array of reports
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// SortMoves lists legal moves in UCI text order instead of generation order
	SortMoves bool

	// ShowBoard includes an ASCII diagram of each position in text output
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    Text,
		SortMoves: true,
	}
}

// JSONFormat reports whether output is JSON.
func (o *OutputConfig) JSONFormat() bool {
	return o.Format == JSON
}
