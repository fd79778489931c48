package core_test

import "github.com/katalvlaran/valveflow/core"

// sampleRecords is the ten-valve reference network rooted at AA.
func sampleRecords() []core.Record {
	return []core.Record{
		{Name: "AA", Flow: 0, Tunnels: []string{"DD", "II", "BB"}},
		{Name: "BB", Flow: 13, Tunnels: []string{"CC", "AA"}},
		{Name: "CC", Flow: 2, Tunnels: []string{"DD", "BB"}},
		{Name: "DD", Flow: 20, Tunnels: []string{"CC", "AA", "EE"}},
		{Name: "EE", Flow: 3, Tunnels: []string{"FF", "DD"}},
		{Name: "FF", Flow: 0, Tunnels: []string{"EE", "GG"}},
		{Name: "GG", Flow: 0, Tunnels: []string{"FF", "HH"}},
		{Name: "HH", Flow: 22, Tunnels: []string{"GG"}},
		{Name: "II", Flow: 0, Tunnels: []string{"AA", "JJ"}},
		{Name: "JJ", Flow: 21, Tunnels: []string{"II"}},
	}
}
