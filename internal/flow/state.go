package flow

type stateKind int

const (
	stateDone stateKind = iota
	stateMainMenu
	stateCreateNote
	stateViewList
	stateViewContent
	stateDeleteList
	stateConfirmDelete
	stateEditList
	stateEditDetail
	stateShareList
	stateSelectRecipient
	stateConfirmShare
)

// state identifies the screen to render next. title is set for the states
// keyed by a note title, recipient only for stateConfirmShare.
type state struct {
	kind      stateKind
	title     string
	recipient string
}

var (
	done     = state{kind: stateDone}
	mainMenu = state{kind: stateMainMenu}
)
