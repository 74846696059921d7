package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"NBA_HTTP_BASE_URL", "NBA_HTTP_TIMEOUT",
	"NBA_LOGGING_LEVEL", "NBA_LOGGING_OUTPUT", "NBA_LOGGING_DIR",
	"NBA_EXPORT_DIR",
	"NBA_PACING_MIN_DELAY", "NBA_PACING_MAX_DELAY",
}

// clearConfigEnv unsets every config env var and restores the originals
// when the test finishes.
func clearConfigEnv(t *testing.T) {
	t.Helper()

	originalEnv := make(map[string]string)
	for _, envVar := range configEnvVars {
		originalEnv[envVar] = os.Getenv(envVar)
		os.Unsetenv(envVar)
	}

	t.Cleanup(func() {
		for _, envVar := range configEnvVars {
			if val := originalEnv[envVar]; val != "" {
				os.Setenv(envVar, val)
			} else {
				os.Unsetenv(envVar)
			}
		}
	})
}

// chdirTemp moves the test into a fresh temp directory so config file
// discovery sees a clean slate.
func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { os.Chdir(originalDir) })
	return tempDir
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func()
		setupFile   func(t *testing.T, dir string)
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "default configuration with no env vars",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.HTTP.BaseURL)
				assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)

				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "both", cfg.Logging.Output)
				assert.Equal(t, "Logs", cfg.Logging.Dir)

				assert.Equal(t, ".", cfg.Export.Dir)

				assert.Equal(t, 5*time.Second, cfg.Pacing.MinDelay)
				assert.Equal(t, 40*time.Second, cfg.Pacing.MaxDelay)
			},
		},
		{
			name: "custom environment variables",
			setupEnv: func() {
				os.Setenv("NBA_HTTP_TIMEOUT", "45s")
				os.Setenv("NBA_LOGGING_LEVEL", "debug")
				os.Setenv("NBA_LOGGING_DIR", "run-logs")
				os.Setenv("NBA_PACING_MIN_DELAY", "1s")
				os.Setenv("NBA_PACING_MAX_DELAY", "2s")
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 45*time.Second, cfg.HTTP.Timeout)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "run-logs", cfg.Logging.Dir)
				assert.Equal(t, 1*time.Second, cfg.Pacing.MinDelay)
				assert.Equal(t, 2*time.Second, cfg.Pacing.MaxDelay)
			},
		},
		{
			name: "invalid log level",
			setupEnv: func() {
				os.Setenv("NBA_LOGGING_LEVEL", "verbose")
			},
			wantErr: true,
		},
		{
			name: "invalid log output",
			setupEnv: func() {
				os.Setenv("NBA_LOGGING_OUTPUT", "syslog")
			},
			wantErr: true,
		},
		{
			name: "malformed duration",
			setupEnv: func() {
				os.Setenv("NBA_HTTP_TIMEOUT", "not-a-duration")
			},
			wantErr: true,
		},
		{
			name: "max delay below min delay",
			setupEnv: func() {
				os.Setenv("NBA_PACING_MIN_DELAY", "30s")
				os.Setenv("NBA_PACING_MAX_DELAY", "10s")
			},
			wantErr: true,
		},
		{
			name: "config file with environment override",
			setupEnv: func() {
				os.Setenv("NBA_LOGGING_LEVEL", "warn")
			},
			setupFile: func(t *testing.T, dir string) {
				configContent := `
logging:
  level: error
  dir: file-logs
export:
  dir: out
`
				require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0644))
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				// Environment overrides file; file overrides defaults.
				assert.Equal(t, "warn", cfg.Logging.Level)
				assert.Equal(t, "file-logs", cfg.Logging.Dir)
				assert.Equal(t, "out", cfg.Export.Dir)
			},
		},
		{
			name: "malformed config file",
			setupFile: func(t *testing.T, dir string) {
				badYAML := "logging:\n  level: [unclosed"
				require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(badYAML), 0644))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			tempDir := chdirTemp(t)

			if tt.setupEnv != nil {
				tt.setupEnv()
			}
			if tt.setupFile != nil {
				tt.setupFile(t, tempDir)
			}

			cfg, err := Load()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.validateCfg != nil {
				tt.validateCfg(t, cfg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "default configuration is valid",
			mutate: func(*Config) {},
		},
		{
			name:    "zero http timeout",
			mutate:  func(cfg *Config) { cfg.HTTP.Timeout = 0 },
			wantErr: true,
			errMsg:  "Timeout",
		},
		{
			name:    "negative min delay",
			mutate:  func(cfg *Config) { cfg.Pacing.MinDelay = -time.Second },
			wantErr: true,
			errMsg:  "MinDelay",
		},
		{
			name: "max delay below min delay",
			mutate: func(cfg *Config) {
				cfg.Pacing.MinDelay = 10 * time.Second
				cfg.Pacing.MaxDelay = 5 * time.Second
			},
			wantErr: true,
			errMsg:  "MaxDelay",
		},
		{
			name:    "empty logs dir",
			mutate:  func(cfg *Config) { cfg.Logging.Dir = "" },
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "invalid base URL",
			mutate:  func(cfg *Config) { cfg.HTTP.BaseURL = "not a url" },
			wantErr: true,
			errMsg:  "URL",
		},
		{
			name:   "equal min and max delay",
			mutate: func(cfg *Config) { cfg.Pacing.MaxDelay = cfg.Pacing.MinDelay },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestGetConfigFilePath(t *testing.T) {
	t.Run("no config file exists", func(t *testing.T) {
		chdirTemp(t)
		assert.Empty(t, getConfigFilePath())
	})

	t.Run("config file in current directory", func(t *testing.T) {
		tempDir := chdirTemp(t)
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte("logging:\n  level: info\n"), 0644))
		assert.Equal(t, "config.yaml", getConfigFilePath())
	})

	t.Run("config file in configs directory", func(t *testing.T) {
		tempDir := chdirTemp(t)
		configsDir := filepath.Join(tempDir, "configs")
		require.NoError(t, os.MkdirAll(configsDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(configsDir, "config.yaml"), []byte("logging:\n  level: info\n"), 0644))
		assert.Equal(t, "configs/config.yaml", getConfigFilePath())
	})
}

func TestSeasons(t *testing.T) {
	seasons := Seasons()

	require.Len(t, seasons, 13)
	assert.Equal(t, "2012-13", seasons[0])
	assert.Equal(t, "2024-25", seasons[len(seasons)-1])

	// Every entry follows the YYYY-YY form where YY is the next year.
	seasonPattern := regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	for _, season := range seasons {
		m := seasonPattern.FindStringSubmatch(season)
		require.NotNil(t, m, "season %q is not in YYYY-YY form", season)
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		assert.Equal(t, (start+1)%100, end, "season %q start and end years disagree", season)
	}

	// Callers get a copy, not the backing array.
	seasons[0] = "mutated"
	assert.Equal(t, "2012-13", Seasons()[0])
}

func TestSeasonTypeNames(t *testing.T) {
	names := SeasonTypeNames()
	assert.Equal(t, []string{"RegularSeason", "Playoffs"}, names)

	names[0] = "mutated"
	assert.Equal(t, "RegularSeason", SeasonTypeNames()[0])
}
