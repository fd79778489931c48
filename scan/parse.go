package scan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valveflow/core"
)

var lineRx = regexp.MustCompile(
	`^Valve (\w+) has flow rate=([^;]*)(?:; tunnels? leads? to valves? (.*))?$`)

// document is the YAML layout.
type document struct {
	Valves []core.Record `yaml:"valves"`
}

// Parse reads every record from r in the given format.
func Parse(r io.Reader, f Format) ([]core.Record, error) {
	switch f {
	case Text:
		return parseText(r)
	case YAML:
		return parseYAML(r)
	}

	return nil, fmt.Errorf("Parse: %v: %w", f, ErrUnknownFormat)
}

// ParseFile opens path and parses it in the format given by its extension.
func ParseFile(path string) ([]core.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := Parse(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

func parseText(r io.Reader) ([]core.Record, error) {
	var recs []core.Record
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return recs, nil
}

func parseLine(line string) (core.Record, error) {
	m := lineRx.FindStringSubmatch(line)
	if m == nil {
		return core.Record{}, fmt.Errorf("%q: %w", line, ErrMalformedLine)
	}
	flow, err := strconv.Atoi(strings.TrimSpace(m[2]))
	if err != nil {
		return core.Record{}, fmt.Errorf("valve %s rate %q: %w", m[1], m[2], ErrBadFlowRate)
	}
	rec := core.Record{Name: m[1], Flow: flow}
	if m[3] == "" {
		return rec, nil
	}
	for _, name := range strings.Split(m[3], ",") {
		name = strings.TrimSpace(name)
		if name == "" || strings.ContainsAny(name, " \t") {
			return core.Record{}, fmt.Errorf("%q: tunnel list: %w", line, ErrMalformedLine)
		}
		rec.Tunnels = append(rec.Tunnels, name)
	}

	return rec, nil
}

func parseYAML(r io.Reader) ([]core.Record, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml: %w", err)
	}

	return doc.Valves, nil
}
