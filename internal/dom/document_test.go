package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRemoveCard(t *testing.T) {
	d := New()
	first := d.AppendCard(CardContent{Name: "A"}, nil, nil)
	second := d.AppendCard(CardContent{Name: "B"}, nil, nil)
	require.NotEqual(t, first.Ref(), second.Ref())

	assert.True(t, d.RemoveCard(first.Ref()))
	assert.False(t, d.RemoveCard(first.Ref()))

	cards := d.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "B", cards[0].Content().Name)
}

func TestClickDispatchesToBoundHandlers(t *testing.T) {
	d := New()
	var edits, deletes int
	card := d.AppendCard(CardContent{}, func() { edits++ }, func() { deletes++ })

	require.NoError(t, d.Click(card.Ref(), ControlEdit))
	require.NoError(t, d.Click(card.Ref(), ControlDelete))
	assert.Equal(t, 1, edits)
	assert.Equal(t, 1, deletes)

	d.RemoveCard(card.Ref())
	assert.ErrorIs(t, d.Click(card.Ref(), ControlEdit), ErrElementNotFound)
	assert.Equal(t, 1, edits)
}

func TestClickRejectsMismatchedControl(t *testing.T) {
	d := New()
	card := d.AppendCard(CardContent{}, nil, nil)

	assert.ErrorIs(t, d.Click(card.Ref(), ControlConfirm), ErrElementNotFound)
	assert.ErrorIs(t, d.Click(card.Ref(), Control("submit")), ErrElementNotFound)
}

func TestDialogConfirmPassesFilledValues(t *testing.T) {
	d := New()
	var gotName, gotDescription string
	dialog := d.OpenDialog("card", "old", "old desc", nil, func(name, description string) {
		gotName, gotDescription = name, description
	})

	dialog.Fill("new", "new desc")
	require.NoError(t, d.Click(dialog.Ref(), ControlConfirm))
	assert.Equal(t, "new", gotName)
	assert.Equal(t, "new desc", gotDescription)
	assert.Equal(t, "card", dialog.CardRef())
}

func TestDialogFillClipsToMaxLength(t *testing.T) {
	d := New()
	dialog := d.OpenDialog("card", strings.Repeat("ж", 25), strings.Repeat("x", 200), nil, nil)

	name, description := dialog.Values()
	assert.Equal(t, strings.Repeat("ж", EditNameMaxLength), name)
	assert.Len(t, description, EditDescriptionMaxLength)
}

func TestSnapshotDrainsAlerts(t *testing.T) {
	d := New()
	d.SetInputs("n", "d")
	d.AppendCard(CardContent{Name: "A", CreatedAt: "x"}, nil, nil)
	d.Alert("boom")

	s := d.Snapshot()
	assert.Equal(t, []string{"boom"}, s.Alerts)
	assert.Equal(t, "n", s.NameInput)
	require.Len(t, s.Cards, 1)
	assert.Equal(t, "A", s.Cards[0].Name)

	assert.Empty(t, d.Snapshot().Alerts)
}
