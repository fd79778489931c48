package scan

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valveflow/core"
)

// Write encodes recs to w in the given format. Text output parses back to
// the same records.
func Write(w io.Writer, recs []core.Record, f Format) error {
	switch f {
	case Text:
		return writeText(w, recs)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Valves: recs}); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
		return enc.Close()
	}

	return fmt.Errorf("Write: %v: %w", f, ErrUnknownFormat)
}

func writeText(w io.Writer, recs []core.Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range recs {
		fmt.Fprintf(bw, "Valve %s has flow rate=%d", rec.Name, rec.Flow)
		switch len(rec.Tunnels) {
		case 0:
		case 1:
			fmt.Fprintf(bw, "; tunnel leads to valve %s", rec.Tunnels[0])
		default:
			fmt.Fprintf(bw, "; tunnels lead to valves %s", strings.Join(rec.Tunnels, ", "))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
