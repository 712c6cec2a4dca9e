package assembly

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON serializes a Description to w as indented JSON — the
// kernel-independent artifact the CLI emits per accepted solution.
func WriteJSON(w io.Writer, d Description) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("assembly: encode %s: %w", d.Name(), err)
	}
	return nil
}
