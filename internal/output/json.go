package output

import (
	"encoding/json"
	"io"
)

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Positions []*Report `json:"positions"`
}

// OutputReportsJSON outputs multiple reports as a JSON array.
func OutputReportsJSON(reports []*Report, w io.Writer) error {
	if reports == nil {
		reports = []*Report{}
	}
	return encodeJSON(w, &JSONOutput{Positions: reports})
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
