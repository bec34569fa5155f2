package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func TestConfirmDialogLifecycle(t *testing.T) {
	notifier := &recordingNotifier{}
	var settled int
	dialog := NewConfirmDialog(
		func(ctx context.Context, target []string) (string, error) {
			return "2 groups deleted", nil
		},
		func(ctx context.Context) { settled++ },
		notifier,
	)

	require.Equal(t, DialogClosed, dialog.State())

	dialog.Open("g-1", "g-2")
	assert.Equal(t, DialogOpen, dialog.State())
	assert.Equal(t, []string{"g-1", "g-2"}, dialog.Target())
	assert.False(t, dialog.Disabled())

	dialog.Confirm(context.Background())

	assert.Equal(t, DialogClosed, dialog.State())
	assert.Nil(t, dialog.Target())
	assert.Equal(t, []string{"2 groups deleted"}, notifier.successes)
	assert.Equal(t, 1, settled)
}

func TestConfirmDialogCancelSkipsTheAction(t *testing.T) {
	var ran bool
	dialog := NewConfirmDialog(
		func(ctx context.Context, target []string) (string, error) {
			ran = true
			return "", nil
		},
		nil, &recordingNotifier{},
	)

	dialog.Open("g-1")
	dialog.Cancel()

	assert.Equal(t, DialogClosed, dialog.State())
	assert.Nil(t, dialog.Target())
	assert.False(t, ran)

	// Confirm after cancel is a no-op; the dialog is no longer armed.
	dialog.Confirm(context.Background())
	assert.False(t, ran)
}

func TestConfirmDialogFailureStillClosesAndSettles(t *testing.T) {
	notifier := &recordingNotifier{}
	var settled int
	dialog := NewConfirmDialog(
		func(ctx context.Context, target []string) (string, error) {
			return "", errors.New("connection reset")
		},
		func(ctx context.Context) { settled++ },
		notifier,
	)

	dialog.Open("g-1")
	dialog.Confirm(context.Background())

	assert.Equal(t, DialogClosed, dialog.State(),
		"a failed action still closes; the server may have partially applied it")
	assert.Equal(t, []string{"connection reset"}, notifier.errors)
	assert.Equal(t, 1, settled, "the owning list refreshes even after a failure")
}

func TestConfirmDialogIsDisabledInFlight(t *testing.T) {
	dialog := NewConfirmDialog(nil, nil, &recordingNotifier{})
	var inFlightState DialogState
	var inFlightDisabled bool
	dialog.action = func(ctx context.Context, target []string) (string, error) {
		inFlightState = dialog.State()
		inFlightDisabled = dialog.Disabled()
		// Re-entrant input while running must be ignored.
		dialog.Cancel()
		dialog.Open("late")
		return "done", nil
	}

	dialog.Open("g-1")
	dialog.Confirm(context.Background())

	assert.Equal(t, DialogInFlight, inFlightState)
	assert.True(t, inFlightDisabled)
	assert.Equal(t, DialogClosed, dialog.State())
	assert.Nil(t, dialog.Target())
}

func TestConfirmDialogOpenIgnoredWhileArmed(t *testing.T) {
	dialog := NewConfirmDialog(
		func(ctx context.Context, target []string) (string, error) { return "", nil },
		nil, &recordingNotifier{},
	)

	dialog.Open("g-1")
	dialog.Open("g-2")

	assert.Equal(t, []string{"g-1"}, dialog.Target(), "re-opening must not swap the armed target")
}
