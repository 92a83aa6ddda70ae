// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and adapters implement them.
//
// # Host Interfaces
//
// The password-manager host is modelled entirely through ports so a test
// double can stand in for it:
//
//   - PluginHost: Entry point handed to a plugin at initialization
//   - MainWindow: Lifecycle events, document enumeration, open-database
//   - DocumentManager: Open documents in manager order
//   - DatabaseOpener: Opens a database file
//   - ConfigStore: The host's custom key/value configuration
//   - Notifier: Non-fatal user notifications
//
// # Plugin Interfaces
//
//   - SessionCodec: Serialization of the persisted file list
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
