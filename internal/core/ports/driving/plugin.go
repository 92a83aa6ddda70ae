package driving

import "github.com/cyberknet/reloadluf/internal/core/ports/driven"

// Plugin is the contract a host uses to load and unload a plugin.
type Plugin interface {
	// Initialize attaches the plugin to host and subscribes its event
	// handlers. Returns true if the plugin loaded.
	Initialize(host driven.PluginHost) bool

	// Terminate is called when the host unloads the plugin.
	Terminate()

	// UpdateURL returns where the host can check for plugin updates.
	UpdateURL() string
}
