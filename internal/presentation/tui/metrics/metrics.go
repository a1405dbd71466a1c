// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines = 2

	ItemRightPadding  = 1
	ItemSafetyPadding = 1
	ItemIndent        = 4

	ModalMaxWidth     = 72
	ModalMinWidth     = 20
	ModalFramePadding = 6
)
