// Package notify implements driven.Notifier for a terminal.
//
// WriterNotifier prints the report as plain text. DialogNotifier shows a
// modal box (bubbletea) that stays up until dismissed, the terminal
// stand-in for the host's error message box. New picks between them.
package notify
