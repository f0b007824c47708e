// Package app provides the Bubble Tea model for splitpane.
//
// It turns pointer events into divider gestures on a drag.Controller,
// offers keyboard resizing for terminals without mouse support, switches
// between named layouts through a fuzzy picker, and persists committed
// widths in the background. Rendering is delegated to package ui.
package app
