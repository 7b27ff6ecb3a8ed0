package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pippsza/clickup/internal/model"
)

// JSON writes the report as an indented JSON document. The same shape
// the dashboard consumes over HTTP.
func JSON(w io.Writer, rep *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report json: %w", err)
	}
	return nil
}
