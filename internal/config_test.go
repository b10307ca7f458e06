package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		Name           string
		Env            map[string]string
		ExpectedConfig Config
		ExpectedErr    bool
	}{
		{
			Name:           "Defaults",
			Env:            map[string]string{},
			ExpectedConfig: Config{Stage: StageDev, MinPlayers: 2},
		},
		{
			Name: "Board size and players from env",
			Env: map[string]string{
				"STAGE":        StageProd,
				"BOARD_WIDTH":  "10",
				"BOARD_HEIGHT": "8",
				"MIN_PLAYERS":  "3",
			},
			ExpectedConfig: Config{Stage: StageProd, BoardWidth: 10, BoardHeight: 8, MinPlayers: 3},
		},
		{
			Name:        "Fail unknown stage",
			Env:         map[string]string{"STAGE": "staging"},
			ExpectedErr: true,
		},
		{
			Name:        "Fail board width not a number",
			Env:         map[string]string{"BOARD_WIDTH": "ten"},
			ExpectedErr: true,
		},
		{
			Name:        "Fail board too large",
			Env:         map[string]string{"BOARD_WIDTH": "1099511627776", "BOARD_HEIGHT": "5"},
			ExpectedErr: true,
		},
		{
			Name:        "Fail board too small",
			Env:         map[string]string{"BOARD_HEIGHT": "4"},
			ExpectedErr: true,
		},
		{
			Name:        "Fail single player",
			Env:         map[string]string{"MIN_PLAYERS": "1"},
			ExpectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			for _, key := range []string{"STAGE", "BOARD_WIDTH", "BOARD_HEIGHT", "MIN_PLAYERS"} {
				t.Setenv(key, tc.Env[key])
			}

			cfg, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
			if tc.ExpectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedConfig, cfg)
		})
	}
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	for _, key := range []string{"STAGE", "BOARD_WIDTH", "BOARD_HEIGHT", "MIN_PLAYERS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BOARD_WIDTH=7\nBOARD_HEIGHT=6\n"), 0o600))

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.BoardWidth)
	assert.Equal(t, 6, cfg.BoardHeight)
	assert.Equal(t, StageDev, cfg.Stage)
}
