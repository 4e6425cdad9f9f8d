// Package dom is the in-process document the task list is drawn on.
//
// A Document is not safe for concurrent use. The controller owns it and only
// touches it from its loop goroutine; renderers work on Snapshots.
package dom

import (
	"errors"
	"slices"

	"github.com/google/uuid"
)

var ErrElementNotFound = errors.New("element not found")

// Control names a clickable element inside a card or a dialog.
type Control string

const (
	ControlEdit    Control = "edit"
	ControlDelete  Control = "delete"
	ControlCancel  Control = "cancel"
	ControlConfirm Control = "confirm"
)

// Max lengths of the edit form inputs. The creation form has none.
const (
	EditNameMaxLength        = 20
	EditDescriptionMaxLength = 150
)

type Document struct {
	nameInput        string
	descriptionInput string

	cards   []*Card
	dialogs []*Dialog
	alerts  []string
}

func New() *Document {
	return &Document{}
}

// SetInputs types into the two creation inputs.
func (d *Document) SetInputs(name, description string) {
	d.nameInput = name
	d.descriptionInput = description
}

func (d *Document) Inputs() (name, description string) {
	return d.nameInput, d.descriptionInput
}

func (d *Document) ClearInputs() {
	d.SetInputs("", "")
}

// AppendCard adds a card at the end of the list and binds its controls.
func (d *Document) AppendCard(content CardContent, onEdit, onDelete func()) *Card {
	card := &Card{
		ref:      uuid.NewString(),
		content:  content,
		onEdit:   onEdit,
		onDelete: onDelete,
	}
	d.cards = append(d.cards, card)
	return card
}

// RemoveCard detaches the card and its bindings. It reports whether
// the card was still in the document.
func (d *Document) RemoveCard(ref string) bool {
	i := slices.IndexFunc(d.cards, func(c *Card) bool { return c.ref == ref })
	if i < 0 {
		return false
	}
	d.cards = slices.Delete(d.cards, i, i+1)
	return true
}

func (d *Document) Card(ref string) (*Card, bool) {
	i := slices.IndexFunc(d.cards, func(c *Card) bool { return c.ref == ref })
	if i < 0 {
		return nil, false
	}
	return d.cards[i], true
}

func (d *Document) Cards() []*Card {
	return slices.Clone(d.cards)
}

// OpenDialog appends an edit dialog for the given card. The document itself
// allows any number of dialogs; limiting them is up to the caller.
func (d *Document) OpenDialog(cardRef, name, description string, onCancel func(), onConfirm func(name, description string)) *Dialog {
	dialog := &Dialog{
		ref:       uuid.NewString(),
		cardRef:   cardRef,
		onCancel:  onCancel,
		onConfirm: onConfirm,
	}
	dialog.Fill(name, description)
	d.dialogs = append(d.dialogs, dialog)
	return dialog
}

func (d *Document) RemoveDialog(ref string) bool {
	i := slices.IndexFunc(d.dialogs, func(dl *Dialog) bool { return dl.ref == ref })
	if i < 0 {
		return false
	}
	d.dialogs = slices.Delete(d.dialogs, i, i+1)
	return true
}

func (d *Document) Dialog(ref string) (*Dialog, bool) {
	i := slices.IndexFunc(d.dialogs, func(dl *Dialog) bool { return dl.ref == ref })
	if i < 0 {
		return nil, false
	}
	return d.dialogs[i], true
}

func (d *Document) Dialogs() []*Dialog {
	return slices.Clone(d.dialogs)
}

// Alert queues a message that the next snapshot shows to the user.
func (d *Document) Alert(message string) {
	d.alerts = append(d.alerts, message)
}

// Click activates a control of the card or dialog with the given ref.
func (d *Document) Click(ref string, control Control) error {
	switch control {
	case ControlEdit, ControlDelete:
		card, ok := d.Card(ref)
		if !ok {
			return ErrElementNotFound
		}
		card.click(control)
		return nil
	case ControlCancel, ControlConfirm:
		dialog, ok := d.Dialog(ref)
		if !ok {
			return ErrElementNotFound
		}
		dialog.click(control)
		return nil
	default:
		return ErrElementNotFound
	}
}
