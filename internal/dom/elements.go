package dom

// CardContent is what a card displays.
type CardContent struct {
	Thumbnail   string
	Name        string
	Description string
	CreatedAt   string
}

type Card struct {
	ref     string
	content CardContent

	onEdit   func()
	onDelete func()
}

func (c *Card) Ref() string {
	return c.ref
}

func (c *Card) Content() CardContent {
	return c.content
}

// SetText replaces the displayed name and description in place.
func (c *Card) SetText(name, description string) {
	c.content.Name = name
	c.content.Description = description
}

func (c *Card) click(control Control) {
	var handler func()
	switch control {
	case ControlEdit:
		handler = c.onEdit
	case ControlDelete:
		handler = c.onDelete
	}
	if handler != nil {
		handler()
	}
}

type Dialog struct {
	ref         string
	cardRef     string
	name        string
	description string

	onCancel  func()
	onConfirm func(name, description string)
}

func (d *Dialog) Ref() string {
	return d.ref
}

func (d *Dialog) CardRef() string {
	return d.cardRef
}

func (d *Dialog) Values() (name, description string) {
	return d.name, d.description
}

// Fill types into the dialog inputs, cutting input past the max lengths.
func (d *Dialog) Fill(name, description string) {
	d.name = clip(name, EditNameMaxLength)
	d.description = clip(description, EditDescriptionMaxLength)
}

func (d *Dialog) click(control Control) {
	switch control {
	case ControlCancel:
		if d.onCancel != nil {
			d.onCancel()
		}
	case ControlConfirm:
		if d.onConfirm != nil {
			d.onConfirm(d.name, d.description)
		}
	}
}

func clip(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
