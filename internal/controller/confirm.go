package controller

import (
	"context"
	"log/slog"
)

// DialogState is the confirmation dialog's position in its lifecycle.
type DialogState int

const (
	// DialogClosed - nothing pending.
	DialogClosed DialogState = iota
	// DialogOpen - waiting for the operator to confirm or cancel.
	DialogOpen
	// DialogInFlight - the destructive action is running; both buttons are
	// disabled until it settles.
	DialogInFlight
)

// Notifier receives the dialog's outcome notifications (the toast layer).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// slogNotifier is the default Notifier, logging outcomes.
type slogNotifier struct{}

func (slogNotifier) Success(msg string) { slog.Info(msg) }
func (slogNotifier) Error(msg string)   { slog.Error(msg) }

// ConfirmDialog guards a destructive action behind an explicit confirmation.
// Transitions: Closed -> Open (Open), Open -> Closed (Cancel), Open ->
// InFlight (Confirm), InFlight -> Closed (settle). Success and failure both
// close the dialog and request a refresh, because a failed bulk action may
// still have partially applied on the server.
type ConfirmDialog struct {
	state  DialogState
	target []string

	// action runs the destructive mutation and returns the success message.
	action func(ctx context.Context, target []string) (string, error)
	// onSettled is the owning list's refresh-and-clear hook.
	onSettled func(ctx context.Context)
	notifier  Notifier
}

// NewConfirmDialog creates a closed dialog around the given action.
func NewConfirmDialog(
	action func(ctx context.Context, target []string) (string, error),
	onSettled func(ctx context.Context),
	notifier Notifier,
) *ConfirmDialog {
	if notifier == nil {
		notifier = slogNotifier{}
	}
	return &ConfirmDialog{action: action, onSettled: onSettled, notifier: notifier}
}

// Open arms the dialog for the given target identifiers. Ignored unless closed.
func (c *ConfirmDialog) Open(target ...string) {
	if c.state != DialogClosed {
		return
	}
	c.state = DialogOpen
	c.target = target
}

// Cancel dismisses the dialog without running the action. Ignored while the
// action is in flight.
func (c *ConfirmDialog) Cancel() {
	if c.state != DialogOpen {
		return
	}
	c.state = DialogClosed
	c.target = nil
}

// Confirm runs the armed action. Whatever the outcome, the dialog closes, the
// target clears, and the owning list is asked to refresh.
func (c *ConfirmDialog) Confirm(ctx context.Context) {
	if c.state != DialogOpen {
		return
	}
	c.state = DialogInFlight

	msg, err := c.action(ctx, c.target)

	c.state = DialogClosed
	c.target = nil

	if err != nil {
		c.notifier.Error(err.Error())
	} else {
		c.notifier.Success(msg)
	}
	if c.onSettled != nil {
		c.onSettled(ctx)
	}
}

// State returns the dialog's current state.
func (c *ConfirmDialog) State() DialogState { return c.state }

// Target returns the armed identifiers.
func (c *ConfirmDialog) Target() []string { return c.target }

// Disabled reports whether the action buttons should be disabled.
func (c *ConfirmDialog) Disabled() bool { return c.state == DialogInFlight }
