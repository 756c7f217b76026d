package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
)

// UserConfig is the on-disk shape of config.toml. Credentials never live
// here; the API key comes from the environment (or a .env file).
type UserConfig struct {
	OpenRouter          OpenRouterConfig `toml:"openrouter"`
	Output              OutputConfig     `toml:"output"`
	DefaultSystemPrompt string           `toml:"default_system_prompt,omitempty"`
	DataDirectory       string           `toml:"data_directory,omitempty"`
}

type OpenRouterConfig struct {
	URL   string `toml:"url"`
	Model string `toml:"model"`
}

type OutputConfig struct {
	RenderMarkdown bool `toml:"render_markdown"`
	WrapWidth      int  `toml:"wrap_width"`
}

// Config is the resolved runtime configuration: defaults, then config.toml,
// then environment variables, last one wins.
type Config struct {
	APIKey              string
	APIURL              string
	Model               string
	Referer             string
	Title               string
	DefaultSystemPrompt string
	RenderMarkdown      bool
	WrapWidth           int
	DataDirectory       string
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

func (c *Config) applyUserConfig(u *UserConfig) {
	if u == nil {
		return
	}
	if u.OpenRouter.URL != "" {
		c.APIURL = u.OpenRouter.URL
	}
	if u.OpenRouter.Model != "" {
		c.Model = u.OpenRouter.Model
	}
	if u.Output.WrapWidth > 0 {
		c.WrapWidth = u.Output.WrapWidth
	}
	c.RenderMarkdown = u.Output.RenderMarkdown
	if u.DefaultSystemPrompt != "" {
		c.DefaultSystemPrompt = u.DefaultSystemPrompt
	}
	if u.DataDirectory != "" {
		c.DataDirectory = u.DataDirectory
	}
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		c.APIKey = key
	}
	if u := os.Getenv("OPENROUTER_API_URL"); u != "" {
		c.APIURL = u
	}
	if m := os.Getenv("ORCHAT_MODEL"); m != "" {
		c.Model = m
	}
	if r := os.Getenv("HTTP_REFERER"); r != "" {
		c.Referer = r
	}
	if t := os.Getenv("X_TITLE"); t != "" {
		c.Title = t
	}
	if d := os.Getenv("ORCHAT_DATA_DIR"); d != "" {
		c.DataDirectory = d
	}
}

// Validate reports startup-fatal configuration errors. A missing API key or
// an unusable endpoint means no session can be created.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OPENROUTER_API_KEY must be set in the environment (or a .env file)")
	}
	if _, err := url.ParseRequestURI(c.APIURL); err != nil {
		return fmt.Errorf("invalid API URL %q: %w", c.APIURL, err)
	}
	return nil
}

func CheckDebug() bool {
	debug := os.Getenv("ORCHAT_DEBUG")
	return debug == "true" || debug == "1"
}

func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	// 0600 - may contain message contents
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (ORCHAT_DEBUG=%s) ===", os.Getenv("ORCHAT_DEBUG"))
	DebugLog.Printf("Log path: %s", logPath)
}

// Load resolves the runtime configuration. The config file is created with
// a commented template on first run so settings are discoverable.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	userCfg, err := LoadUserConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	cfg.applyUserConfig(userCfg)
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}
