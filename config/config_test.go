package config_test

import (
	"testing"

	"github.com/katalvlaran/valveflow/config"
	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/planner"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", "")
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), *cfg)

	sym, err := cfg.Symmetry()
	require.NoError(t, err)
	require.Equal(t, core.Directed, sym)
	require.Equal(t, planner.Request{Start: "AA", SingleBudget: 30, PairBudget: 26}, cfg.Request())
	require.Empty(t, cfg.SolverOptions())
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("VALVEFLOW_WORKERS", "3")

	cfg, err := config.Load("testdata/run.yaml", "testdata/run.env")
	require.NoError(t, err)

	require.Equal(t, "AA", cfg.Start)
	require.Equal(t, 20, cfg.SingleBudget) // file
	require.Equal(t, 12, cfg.PairBudget)   // env file over default
	require.Equal(t, 3, cfg.Workers)       // process env over file
	require.Equal(t, "mirror", cfg.Tunnels)
	require.True(t, cfg.Routes)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
	require.Len(t, cfg.SolverOptions(), 1)

	sym, err := cfg.Symmetry()
	require.NoError(t, err)
	require.Equal(t, core.Mirror, sym)
}

func TestLoad_EnvZeroBudget(t *testing.T) {
	t.Setenv("VALVEFLOW_SINGLE_BUDGET", "0")
	cfg, err := config.Load("", "")
	require.NoError(t, err)
	require.Zero(t, cfg.SingleBudget)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load("testdata/bad.yaml", "")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load("testdata/missing.yaml", "")
	require.Error(t, err)

	_, err = config.Load("", "testdata/missing.env")
	require.Error(t, err)

	t.Setenv("VALVEFLOW_PAIR_BUDGET", "lots")
	_, err = config.Load("", "")
	require.ErrorIs(t, err, config.ErrBadEnv)
}

func TestLoad_BadRoutesEnv(t *testing.T) {
	t.Setenv("VALVEFLOW_ROUTES", "maybe")
	_, err := config.Load("", "")
	require.ErrorIs(t, err, config.ErrBadEnv)
}

func TestValidate(t *testing.T) {
	cfg := config.Defaults()
	require.NoError(t, cfg.Validate())

	cfg.PairBudget = -1
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Defaults()
	cfg.Start = ""
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Defaults()
	cfg.LogFormat = "xml"
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}
