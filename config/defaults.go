package config

func GenerateSettingsTemplate() string {
	return `# wpchat Configuration
# Location: ~/.config/wpchat/settings.toml
# This file uses TOML format: https://toml.io

# Whitepaper MCP server (WPCHAT_SERVER_URL overrides this)
server_url = "https://succint-whitepaper-mcp.onrender.com"

# How to reach the server:
#   "rest"       - POST <server_url>/tools/call
#   "streamable" - MCP streamable HTTP at <server_url>/mcp
transport = "rest"

# Give up on a request after this long (Go duration, "0s" disables)
request_timeout = "30s"

# Directory for debug.log (written only when WPCHAT_DEBUG=1)
data_directory = "~/.local/share/wpchat"

[keybindings.modifiers]
primary = "alt"          # Options: alt, ctrl, meta, super
secondary = "alt+shift"

[keybindings.actions]
# Override single actions, e.g.:
#   copy_last_response = "ctrl+y"
#   quick_palette = "ctrl+p"
`
}
