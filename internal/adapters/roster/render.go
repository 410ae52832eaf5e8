package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/okian/champions/internal/domain/types"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is what gets rendered for one run.
type Report struct {
	RunID     string           `json:"run_id" yaml:"run_id"`
	Title     string           `json:"title,omitempty" yaml:"title,omitempty"`
	Champions []types.Champion `json:"champions" yaml:"champions"`
}

// countingWriter tracks bytes written through it.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// Encode renders rep to w in the given format and returns the byte count.
func Encode(w io.Writer, format string, rep Report) (int, error) {
	cw := &countingWriter{w: w}
	var err error
	switch strings.ToLower(format) {
	case FormatText:
		err = encodeText(cw, rep)
	case FormatJSON:
		enc := json.NewEncoder(cw)
		enc.SetIndent("", "  ")
		err = enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(cw)
		enc.SetIndent(2)
		if err = enc.Encode(rep); err == nil {
			err = enc.Close()
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return cw.n, fmt.Errorf("render %s: %w", format, err)
	}
	return cw.n, nil
}

func encodeText(w io.Writer, rep Report) error {
	if rep.Title != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", rep.Title); err != nil {
			return err
		}
	}
	if len(rep.Champions) == 0 {
		_, err := io.WriteString(w, "no champions\n")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "#\tNAME\tRANK\tCATEGORY"); err != nil {
		return err
	}
	for _, c := range rep.Champions {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", c.Position, c.Name, c.Rank, c.Category); err != nil {
			return err
		}
	}
	return tw.Flush()
}
