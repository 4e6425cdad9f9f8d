package dom

// Snapshot is an immutable copy of a document, safe to hand to a renderer
// running on another goroutine.
type Snapshot struct {
	NameInput        string
	DescriptionInput string
	Cards            []CardView
	Dialogs          []DialogView
	Alerts           []string
}

type CardView struct {
	Ref string
	CardContent
}

type DialogView struct {
	Ref                  string
	CardRef              string
	Name                 string
	Description          string
	NameMaxLength        int
	DescriptionMaxLength int
}

// Snapshot copies the document and drains pending alerts, so every alert
// is shown exactly once.
func (d *Document) Snapshot() Snapshot {
	s := Snapshot{
		NameInput:        d.nameInput,
		DescriptionInput: d.descriptionInput,
		Cards:            make([]CardView, 0, len(d.cards)),
		Dialogs:          make([]DialogView, 0, len(d.dialogs)),
		Alerts:           d.alerts,
	}
	d.alerts = nil

	for _, c := range d.cards {
		s.Cards = append(s.Cards, CardView{Ref: c.ref, CardContent: c.content})
	}
	for _, dl := range d.dialogs {
		s.Dialogs = append(s.Dialogs, DialogView{
			Ref:                  dl.ref,
			CardRef:              dl.cardRef,
			Name:                 dl.name,
			Description:          dl.description,
			NameMaxLength:        EditNameMaxLength,
			DescriptionMaxLength: EditDescriptionMaxLength,
		})
	}
	return s
}
