// Package flow implements the menu state machine driving the note screens.
//
// Each step renders one screen through the Renderer port, interprets the
// player's response, performs any repository mutation, and computes the next
// state. The host-side concerns (how screens are drawn, who is online, how
// messages reach a player) stay behind the Renderer, Directory and Messenger
// ports.
package flow

import "context"

// Button is one choice on a choice screen.
type Button struct {
	Label string
	Icon  string
}

// ChoiceScreen is a list of buttons under a title and body text.
type ChoiceScreen struct {
	Title   string
	Body    string
	Buttons []Button
}

// FieldKind discriminates form field types.
type FieldKind int

const (
	// FieldText is a free-text input with a placeholder and default.
	FieldText FieldKind = iota
	// FieldToggle is a boolean switch.
	FieldToggle
)

// Field is one input on a form screen.
type Field struct {
	Kind        FieldKind
	Label       string
	Placeholder string
	Default     string
	DefaultOn   bool
}

// FormScreen is a multi-field input screen.
type FormScreen struct {
	Title  string
	Fields []Field
}

// FieldValue is the submitted value of one form field; Text for text fields,
// On for toggles.
type FieldValue struct {
	Text string
	On   bool
}

// ConfirmScreen is a two-button yes/no screen.
type ConfirmScreen struct {
	Title string
	Body  string
	Yes   string
	No    string
}

// Renderer displays one screen and yields the player's response.
// ok is false when the player dismissed the screen without choosing.
type Renderer interface {
	Choice(ctx context.Context, s ChoiceScreen) (index int, ok bool, err error)
	Form(ctx context.Context, s FormScreen) (values []FieldValue, ok bool, err error)
	Confirm(ctx context.Context, s ConfirmScreen) (yes bool, ok bool, err error)
}

// Directory enumerates currently online players.
type Directory interface {
	// Online lists online players excluding the given one.
	Online(ctx context.Context, exclude string) ([]string, error)
	// Resolve reports whether the named player is still online.
	Resolve(ctx context.Context, name string) (bool, error)
}

// Messenger delivers a plain text notification to a player.
type Messenger interface {
	Tell(ctx context.Context, player, text string) error
}
