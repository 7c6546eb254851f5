// Package dialog coordinates the settings tabs, the canonical model and the
// store.
//
// A Dialog starts in Editing. Apply and OK move it through Committing: every
// tab is collected in order into a working copy of the model, the copy is
// validated and saved, and only then does it replace the canonical model.
// Apply returns to Editing, OK and Cancel close the dialog.
//
// A Dialog is not safe for concurrent use.
package dialog

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/tabs"
)

// State is the lifecycle state of a dialog.
type State int

// Dialog states.
const (
	Editing State = iota
	Committing
	Closed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Committing:
		return "committing"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Notice texts.
const (
	RestartNotice  = "Some changes (currency, language or date format) take effect after the application is restarted."
	RestoreConfirm = "Restore all settings to their defaults? Stored values will be deleted."
	SaveFailed     = "Settings could not be saved"
)

// ErrClosed is returned by operations on a closed dialog.
var ErrClosed = errors.New("settings dialog is closed")

// Notifier shows notices to the user.
type Notifier interface {
	// Confirm asks a yes/no question and blocks until answered.
	Confirm(msg string) bool
	Info(msg string)
	Error(msg string)
}

// Dialog owns the canonical settings model while the settings UI is open.
type Dialog struct {
	store    *settings.Store
	notifier Notifier

	model           settings.Model
	tabs            []tabs.Tab
	state           State
	restartRequired bool
}

// Open loads the model from store and builds every tab from it.
// A nil notifier declines every confirmation and drops every notice.
func Open(store *settings.Store, notifier Notifier) *Dialog {
	if notifier == nil {
		notifier = discard{}
	}

	d := &Dialog{
		store:    store,
		notifier: notifier,
		model:    store.Load(settings.Default()),
		state:    Editing,
	}
	d.tabs = tabs.All(d.model, d.markRestartRequired)

	return d
}

// State returns the current state.
func (d *Dialog) State() State { return d.state }

// Model returns the last committed model.
func (d *Dialog) Model() settings.Model { return d.model }

// Tabs returns the tab controllers in commit order.
func (d *Dialog) Tabs() []tabs.Tab { return d.tabs }

// Tab returns the tab called name.
func (d *Dialog) Tab(name string) (tabs.Tab, bool) { return tabs.Find(d.tabs, name) }

// RestartRequired reports whether an uncommitted edit needs a restart.
func (d *Dialog) RestartRequired() bool { return d.restartRequired }

func (d *Dialog) markRestartRequired() { d.restartRequired = true }

// Apply commits the tabs and keeps the dialog open.
func (d *Dialog) Apply() error {
	return d.commit(Editing)
}

// OK commits the tabs and closes the dialog. On failure the dialog stays open.
func (d *Dialog) OK() error {
	return d.commit(Closed)
}

// Cancel closes the dialog, discarding uncommitted edits.
func (d *Dialog) Cancel() error {
	if d.state == Closed {
		return ErrClosed
	}

	d.state = Closed
	log.Debug().Msg("settings dialog canceled")

	return nil
}

// RestoreDefaults clears the store and resets every tab to the defaults after
// the user confirmed. It reports whether the reset happened.
func (d *Dialog) RestoreDefaults() (bool, error) {
	if d.state == Closed {
		return false, ErrClosed
	}

	if !d.notifier.Confirm(RestoreConfirm) {
		return false, nil
	}

	if err := d.store.Clear(); err != nil {
		log.Error().Err(err).Msg("can't clear settings")
		d.notifier.Error(fmt.Sprintf("%s: %v", SaveFailed, err))

		return false, err
	}

	d.model = settings.Default()
	for _, t := range d.tabs {
		t.Apply(d.model)
	}

	d.restartRequired = false
	log.Info().Msg("settings restored to defaults")

	return true, nil
}

func (d *Dialog) collect() settings.Model {
	working := d.model
	for _, t := range d.tabs {
		working = t.Collect(working)
	}

	return working
}

func (d *Dialog) commit(next State) error {
	if d.state == Closed {
		return ErrClosed
	}

	d.state = Committing
	working := d.collect()

	err := working.Validate()
	if err == nil {
		err = d.store.Save(working)
	}

	if err != nil {
		d.state = Editing
		commits.WithLabelValues("failure").Inc()
		log.Error().Err(err).Msg("can't save settings")
		d.notifier.Error(fmt.Sprintf("%s: %v", SaveFailed, err))

		return err
	}

	d.model = working
	d.state = next
	commits.WithLabelValues("success").Inc()
	log.Info().Str("state", next.String()).Msg("settings saved")

	if d.restartRequired {
		d.notifier.Info(RestartNotice)
		d.restartRequired = false
	}

	return nil
}

type discard struct{}

func (discard) Confirm(string) bool { return false }
func (discard) Info(string)         {}
func (discard) Error(string)        {}
