package config

const (
	DefaultAPIURL = "https://openrouter.ai/api/v1/chat/completions"
	DefaultModel  = "cognitivecomputations/dolphin3.0-mistral-24b:free"
)

func DefaultConfig() *Config {
	return &Config{
		APIURL:         DefaultAPIURL,
		Model:          DefaultModel,
		RenderMarkdown: true,
		WrapWidth:      100,
		DataDirectory:  "~/.local/share/orchat",
	}
}

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		OpenRouter: OpenRouterConfig{
			URL:   DefaultAPIURL,
			Model: DefaultModel,
		},
		Output: OutputConfig{
			RenderMarkdown: true,
			WrapWidth:      100,
		},
	}
}

func GenerateUserConfigTemplate() string {
	return `# orchat User Configuration
# Location: ~/.config/orchat/config.toml
# This file uses TOML format: https://toml.io
#
# The API key is never read from this file. Set OPENROUTER_API_KEY in the
# environment or in a .env file next to the binary.

# Default system prompt for new sessions (optional)
# Example: "You are a helpful coding assistant."
default_system_prompt = ""

# Directory where the debug log is stored
data_directory = "~/.local/share/orchat"

[openrouter]
# Chat completions endpoint
url = "https://openrouter.ai/api/v1/chat/completions"

# Model identifier sent with each request
model = "cognitivecomputations/dolphin3.0-mistral-24b:free"

[output]
# Render assistant replies as markdown in the terminal
render_markdown = true

# Column width for markdown wrapping
wrap_width = 100
`
}
