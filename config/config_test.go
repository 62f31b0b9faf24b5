package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"roadsweep/config"
	"roadsweep/eulerize"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, runtime.NumCPU(), cfg.Workers)
	require.Equal(t, eulerize.DefaultExactMatchLimit, cfg.ExactMatchLimit)
	require.Empty(t, cfg.MetricsAddr)
}

func TestLoad_AppliesDefaultsToUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, eulerize.DefaultExactMatchLimit, cfg.ExactMatchLimit)
}

func TestLoad_FullFile(t *testing.T) {
	raw := "workers: 4\nexact_match_limit: 12\nmetrics_addr: \":9102\"\n"
	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, 12, cfg.ExactMatchLimit)
	require.Equal(t, ":9102", cfg.MetricsAddr)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [oops"), 0o644))
	_, err := config.Load(path)
	require.Error(t, err)
}
