package scan_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/scan"
	"github.com/stretchr/testify/require"
)

func TestParseFile_Formats(t *testing.T) {
	text, err := scan.ParseFile("testdata/sample.txt")
	require.NoError(t, err)
	yml, err := scan.ParseFile("testdata/sample.yaml")
	require.NoError(t, err)

	require.Len(t, text, 10)
	require.Equal(t, text, yml)
	require.Equal(t, core.Record{Name: "HH", Flow: 22, Tunnels: []string{"GG"}}, text[7])
	require.Equal(t, []string{"DD", "II", "BB"}, text[0].Tunnels)

	_, err = core.NewGraph(text)
	require.NoError(t, err)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := scan.ParseFile("testdata/nope.txt")
	require.Error(t, err)
}

func TestParseText_Lines(t *testing.T) {
	cases := []struct {
		name string
		line string
		want core.Record
	}{
		{"plural", "Valve AA has flow rate=0; tunnels lead to valves DD, II", core.Record{Name: "AA", Tunnels: []string{"DD", "II"}}},
		{"singular", "Valve HH has flow rate=22; tunnel leads to valve GG", core.Record{Name: "HH", Flow: 22, Tunnels: []string{"GG"}}},
		{"no tunnels", "Valve ZZ has flow rate=5", core.Record{Name: "ZZ", Flow: 5}},
		{"long names", "Valve pump_1 has flow rate=7; tunnels lead to valves pump_2,pump_3", core.Record{Name: "pump_1", Flow: 7, Tunnels: []string{"pump_2", "pump_3"}}},
		{"crlf and padding", "  Valve AB has flow rate=3; tunnel leads to valve AA\r", core.Record{Name: "AB", Flow: 3, Tunnels: []string{"AA"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs, err := scan.Parse(strings.NewReader(tc.line), scan.Text)
			require.NoError(t, err)
			require.Equal(t, []core.Record{tc.want}, recs)
		})
	}
}

func TestParseText_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"garbage", "Valve AA has flow rate=0\nnot a valve\n", scan.ErrMalformedLine},
		{"bad clause", "Valve AA has flow rate=0; pipes to DD", scan.ErrMalformedLine},
		{"empty tunnel", "Valve AA has flow rate=0; tunnels lead to valves DD, , BB", scan.ErrMalformedLine},
		{"bad rate", "Valve AA has flow rate=ten; tunnel leads to valve BB", scan.ErrBadFlowRate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scan.Parse(strings.NewReader(tc.input), scan.Text)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := scan.Parse(strings.NewReader("\n\nValve AA has flow rate=x"), scan.Text)
	require.ErrorContains(t, err, "line 3")
}

func TestParse_BlankInput(t *testing.T) {
	recs, err := scan.Parse(strings.NewReader("\n  \n"), scan.Text)
	require.NoError(t, err)
	require.Empty(t, recs)

	recs, err = scan.Parse(strings.NewReader(""), scan.YAML)
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := scan.Parse(strings.NewReader("valves: {name: ["), scan.YAML)
	require.Error(t, err)
}

func TestWrite_RoundTrip(t *testing.T) {
	recs, err := scan.ParseFile("testdata/sample.txt")
	require.NoError(t, err)
	recs = append(recs, core.Record{Name: "KK", Flow: 1})

	for _, f := range []scan.Format{scan.Text, scan.YAML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, scan.Write(&buf, recs, f))
			back, err := scan.Parse(&buf, f)
			require.NoError(t, err)
			require.Len(t, back, len(recs))
			for i := range recs {
				require.Equal(t, recs[i].Name, back[i].Name)
				require.Equal(t, recs[i].Flow, back[i].Flow)
				require.ElementsMatch(t, recs[i].Tunnels, back[i].Tunnels)
			}
		})
	}
}

func TestWrite_TextLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, scan.Write(&buf, []core.Record{
		{Name: "AA", Flow: 0, Tunnels: []string{"BB", "CC"}},
		{Name: "BB", Flow: 4, Tunnels: []string{"AA"}},
	}, scan.Text))
	require.Equal(t,
		"Valve AA has flow rate=0; tunnels lead to valves BB, CC\n"+
			"Valve BB has flow rate=4; tunnel leads to valve AA\n",
		buf.String())
}

func TestFormats(t *testing.T) {
	require.Equal(t, scan.YAML, scan.FormatOf("net.YML"))
	require.Equal(t, scan.Text, scan.FormatOf("input.txt"))
	require.Equal(t, scan.Text, scan.FormatOf("input"))

	f, err := scan.ParseFormat("YAML")
	require.NoError(t, err)
	require.Equal(t, scan.YAML, f)
	_, err = scan.ParseFormat("json")
	require.ErrorIs(t, err, scan.ErrUnknownFormat)

	require.ErrorIs(t, scan.Write(&bytes.Buffer{}, nil, scan.Format(9)), scan.ErrUnknownFormat)
	_, err = scan.Parse(strings.NewReader(""), scan.Format(9))
	require.ErrorIs(t, err, scan.ErrUnknownFormat)
}
