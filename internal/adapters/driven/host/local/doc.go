// Package local is a small in-process PluginHost used by the reloadluf CLI.
//
// It keeps an ordered list of open documents, raises the file-closing and
// form-loaded events, and opens files from the local filesystem. It does
// not decrypt anything: opening a database only registers a document.
package local
