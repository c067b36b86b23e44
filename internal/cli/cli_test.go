package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clemsoncpsc-discord/clembot/internal/buildinfo"
	"github.com/clemsoncpsc-discord/clembot/internal/config"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func requiredEnv() map[string]string {
	return map[string]string{
		config.KeyClientToken:          "client-token",
		config.KeyClientSecret:         "client-secret",
		config.KeyBotToken:             "bot-token",
		config.KeyStartupLogChannelIDs: "1",
		config.KeyErrorLogChannelIDs:   "2",
		config.KeyReplURL:              "https://repl.example",
		config.KeyAPIURL:               "http://localhost:5001/",
		config.KeyAPIKey:               "api-key",
		config.KeySiteURL:              "https://clembot.io",
		config.KeyDocsURL:              "https://docs.clembot.io",
		config.KeyAllowBotInputIDs:     "3",
	}
}

type result struct {
	code   int
	stdout string
	stderr string
	logs   string
}

func execute(t *testing.T, environ map[string]string, args ...string) result {
	t.Helper()
	var stdout, stderr, logs bytes.Buffer

	root := NewRootCommand(buildinfo.New("1.0.0", "", "abc"), environ, &logs)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	code := run(root, args)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String(), logs: logs.String()}
}

// ── parseLaunchSettings ───────────────────────────────────────────────────────

func TestParseLaunchSettings_Defaults(t *testing.T) {
	settings, err := parseLaunchSettings(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, []string{"BotSecrets.json", "BotSecrets.local.json"}, settings.SecretsFiles)
	assert.Equal(t, "info", settings.LogLevel)
	assert.False(t, settings.LogConsole)
}

func TestParseLaunchSettings_FromEnv(t *testing.T) {
	settings, err := parseLaunchSettings(map[string]string{
		"CLEMBOT_SECRETS_FILES": "a.json,b.yaml",
		"CLEMBOT_LOG_LEVEL":     "debug",
		"CLEMBOT_LOG_CONSOLE":   "true",
		"LOG_LEVEL":             "error",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.json", "b.yaml"}, settings.SecretsFiles)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.True(t, settings.LogConsole)
}

func TestParseLaunchSettings_InvalidBool(t *testing.T) {
	_, err := parseLaunchSettings(map[string]string{"CLEMBOT_LOG_CONSOLE": "maybe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting launch settings from env")
}

// ── run ───────────────────────────────────────────────────────────────────────

// TestRun_Success verifies that run loads the secrets from the files given
// on the command line and reports readiness.
func TestRun_Success(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "BotSecrets.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"BOT_PREFIX": "$"}`), 0o600))

	res := execute(t, requiredEnv(), "run", "--secrets", p)

	assert.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.logs, "clembot ready")
	assert.Contains(t, res.logs, `"prefix":"$"`)
	assert.Contains(t, res.logs, "all bot secrets loaded successfully")
}

// TestRun_MissingRequired verifies a non-zero exit and a message naming the
// key.
func TestRun_MissingRequired(t *testing.T) {
	environ := requiredEnv()
	delete(environ, config.KeyAPIKey)

	res := execute(t, environ, "run", "-s", filepath.Join(t.TempDir(), "absent.json"))

	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "API_KEY")
	assert.Contains(t, res.logs, "error loading bot secrets")
}

// TestRun_MalformedFile verifies that a corrupt file stops startup.
func TestRun_MalformedFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{`), 0o600))

	res := execute(t, requiredEnv(), "run", "-s", p)

	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "failed to parse configuration file")
	assert.Contains(t, res.stderr, p)
}

// TestRun_InvalidLogLevel verifies that the launcher rejects unknown levels.
func TestRun_InvalidLogLevel(t *testing.T) {
	res := execute(t, requiredEnv(), "run", "--log-level", "loud")

	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "error parsing log level")
}

// TestRun_SecretsFilesFromEnv verifies that CLEMBOT_SECRETS_FILES is used
// when --secrets is absent.
func TestRun_SecretsFilesFromEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "from-env.yaml")
	require.NoError(t, os.WriteFile(p, []byte("BOT_PREFIX: \"?\"\n"), 0o600))

	environ := requiredEnv()
	environ["CLEMBOT_SECRETS_FILES"] = p

	res := execute(t, environ, "run")

	assert.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.logs, `"prefix":"?"`)
}

// ── check ─────────────────────────────────────────────────────────────────────

// TestCheck_PrintsSources verifies the per-key source table and that no
// value leaks into it.
func TestCheck_PrintsSources(t *testing.T) {
	p := filepath.Join(t.TempDir(), "BotSecrets.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"BOT_ONLY": true}`), 0o600))

	res := execute(t, requiredEnv(), "check", "-s", p)

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "KEY")
	assert.Regexp(t, `CLIENT_TOKEN\s+environment`, res.stdout)
	assert.Regexp(t, `BOT_ONLY\s+file `+regexp.QuoteMeta(p), res.stdout)
	assert.Regexp(t, `BOT_PREFIX\s+default`, res.stdout)
	assert.NotContains(t, res.stdout, "client-token")
	assert.NotContains(t, res.stdout, "api-key")
}

// ── version ───────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	res := execute(t, map[string]string{"CLEMBOT_LOG_LEVEL": "loud"}, "version")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: abc\n", res.stdout)
}
