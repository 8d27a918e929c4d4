package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aiptu/mynotes/internal/model"
	"github.com/aiptu/mynotes/internal/share"
	"github.com/aiptu/mynotes/internal/store"
	"github.com/aiptu/mynotes/internal/textres"
)

// Config wires the controller's collaborators.
type Config struct {
	Store     store.Store
	Resources *textres.Resources
	Renderer  Renderer
	Directory Directory
	Messenger Messenger
	Sharer    *share.Coordinator
	Log       zerolog.Logger
	// Now returns the current timestamp in model.TimeFormat.
	// Defaults to model.Now.
	Now func() string
}

// Controller drives the menu flow for one player at a time.
type Controller struct {
	store  store.Store
	res    *textres.Resources
	ui     Renderer
	dir    Directory
	out    Messenger
	sharer *share.Coordinator
	log    zerolog.Logger
	now    func() string
}

// New builds a Controller from its collaborators.
func New(cfg Config) *Controller {
	now := cfg.Now
	if now == nil {
		now = model.Now
	}
	return &Controller{
		store:  cfg.Store,
		res:    cfg.Resources,
		ui:     cfg.Renderer,
		dir:    cfg.Directory,
		out:    cfg.Messenger,
		sharer: cfg.Sharer,
		log:    cfg.Log,
		now:    now,
	}
}

// Run enters the main menu and steps the state machine until the player
// leaves. A renderer failure ends the run with an error; a persistence
// failure abandons the current action only.
func (c *Controller) Run(ctx context.Context, player string) error {
	st := mainMenu
	for st.kind != stateDone {
		next, err := c.step(ctx, player, st)
		if err != nil {
			return err
		}
		st = next
	}
	return nil
}

func (c *Controller) step(ctx context.Context, player string, st state) (state, error) {
	switch st.kind {
	case stateMainMenu:
		return c.mainMenu(ctx, player)
	case stateCreateNote:
		return c.createNote(ctx, player)
	case stateViewList:
		return c.noteList(ctx, player, textres.TitleViewNotes, textres.MessageSelectNote, stateViewContent)
	case stateViewContent:
		return c.viewContent(ctx, player, st.title)
	case stateDeleteList:
		return c.noteList(ctx, player, textres.TitleDeleteNote, textres.MessageSelectNoteDelete, stateConfirmDelete)
	case stateConfirmDelete:
		return c.confirmDelete(ctx, player, st.title)
	case stateEditList:
		return c.noteList(ctx, player, textres.TitleEditNote, textres.MessageSelectNoteEdit, stateEditDetail)
	case stateEditDetail:
		return c.editDetail(ctx, player, st.title)
	case stateShareList:
		return c.noteList(ctx, player, textres.TitleShareNote, textres.MessageSelectNoteShare, stateSelectRecipient)
	case stateSelectRecipient:
		return c.selectRecipient(ctx, player, st.title)
	case stateConfirmShare:
		return c.confirmShare(ctx, player, st.title, st.recipient)
	}
	return done, nil
}

func (c *Controller) mainMenu(ctx context.Context, player string) (state, error) {
	notes, err := c.store.List(ctx, player)
	if err != nil {
		c.fail(player, "list notes", err)
		return done, nil
	}
	count := len(notes)

	buttons := []Button{
		{Label: c.res.Button(textres.ButtonCreateNote), Icon: c.res.Icon(textres.IconCreate)},
	}
	if count > 0 {
		buttons = append(buttons,
			Button{Label: c.res.Button(textres.ButtonDeleteNote), Icon: c.res.Icon(textres.IconDelete)},
			Button{Label: c.res.Button(textres.ButtonViewNotes), Icon: c.res.Icon(textres.IconView)},
			Button{Label: c.res.Button(textres.ButtonEditNote), Icon: c.res.Icon(textres.IconEdit)},
			Button{Label: c.res.Button(textres.ButtonShareNote), Icon: c.res.Icon(textres.IconShare)},
		)
	}

	body := c.res.Message(textres.MessageNoNotes)
	if count > 0 {
		body = fmt.Sprintf("%s\n\nYou have %d notes.", c.res.Message(textres.MessageSelectAction), count)
	}

	idx, ok, err := c.ui.Choice(ctx, ChoiceScreen{
		Title:   c.res.Title(textres.TitleMainMenu),
		Body:    body,
		Buttons: buttons,
	})
	if err != nil {
		return done, err
	}
	if !ok || idx >= len(buttons) {
		return done, nil
	}

	switch idx {
	case 0:
		return state{kind: stateCreateNote}, nil
	case 1:
		return state{kind: stateDeleteList}, nil
	case 2:
		return state{kind: stateViewList}, nil
	case 3:
		return state{kind: stateEditList}, nil
	case 4:
		return state{kind: stateShareList}, nil
	}
	return done, nil
}

func (c *Controller) createNote(ctx context.Context, player string) (state, error) {
	vals, ok, err := c.ui.Form(ctx, FormScreen{
		Title: c.res.Title(textres.TitleCreateNote),
		Fields: []Field{
			{Kind: FieldText, Label: "Title:", Placeholder: "Enter note title"},
			{Kind: FieldText, Label: "Content:", Placeholder: "Enter note content"},
			{Kind: FieldToggle, Label: "Pin this note?"},
		},
	})
	if err != nil {
		return done, err
	}
	if !ok {
		return done, nil
	}

	title := strings.TrimSpace(fieldText(vals, 0))
	if title == "" {
		c.tell(ctx, player, c.res.Message(textres.MessageNoteTitleEmpty))
		return state{kind: stateCreateNote}, nil
	}

	existing, err := c.store.Get(ctx, player, title)
	if err != nil {
		c.fail(player, "check title", err)
		return mainMenu, nil
	}
	if existing != nil {
		c.tell(ctx, player, c.res.Messagef(textres.MessageNoteTitleExists, title))
		return state{kind: stateCreateNote}, nil
	}

	now := c.now()
	note := model.Note{
		Title:      title,
		Content:    model.ExpandLines(fieldText(vals, 1)),
		CreatedAt:  now,
		ModifiedAt: now,
		Pinned:     fieldOn(vals, 2),
	}
	if err := c.store.Put(ctx, player, note); err != nil {
		c.fail(player, "save note", err)
		return mainMenu, nil
	}

	c.tell(ctx, player, c.res.Messagef(textres.MessageNoteCreated, title))
	if note.Pinned {
		c.tell(ctx, player, c.res.Messagef(textres.MessageNotePinned, title))
	}
	return mainMenu, nil
}

// noteList renders one of the view/delete/edit/share list screens and maps
// the selected button index back to a title through the same ordered list
// the buttons were built from.
func (c *Controller) noteList(ctx context.Context, player string, titleKey, msgKey textres.Key, next stateKind) (state, error) {
	notes, err := c.store.List(ctx, player)
	if err != nil {
		c.fail(player, "list notes", err)
		return mainMenu, nil
	}

	buttons, titles := c.noteButtons(notes)
	idx, ok, err := c.ui.Choice(ctx, ChoiceScreen{
		Title:   c.res.Title(titleKey),
		Body:    c.res.Message(msgKey),
		Buttons: buttons,
	})
	if err != nil {
		return done, err
	}
	if !ok || idx < 0 || idx >= len(titles) {
		return mainMenu, nil
	}
	return state{kind: next, title: titles[idx]}, nil
}

// noteButtons builds the shared pinned-then-unpinned button list with a
// trailing Back button. titles runs parallel to buttons minus Back.
func (c *Controller) noteButtons(notes []model.Note) ([]Button, []string) {
	var buttons []Button
	var titles []string
	add := func(n model.Note) {
		buttons = append(buttons, Button{
			Label: n.Title + "\n" + model.Preview(n.Content),
			Icon:  c.res.Icon(textres.IconView),
		})
		titles = append(titles, n.Title)
	}
	for _, n := range notes {
		if n.Pinned {
			add(n)
		}
	}
	for _, n := range notes {
		if !n.Pinned {
			add(n)
		}
	}
	buttons = append(buttons, Button{
		Label: c.res.Button(textres.ButtonBack),
		Icon:  c.res.Icon(textres.IconBack),
	})
	return buttons, titles
}

func (c *Controller) viewContent(ctx context.Context, player, title string) (state, error) {
	note, err := c.store.Get(ctx, player, title)
	if err != nil {
		c.fail(player, "load note", err)
		return mainMenu, nil
	}
	if note == nil {
		c.tell(ctx, player, c.res.Message(textres.MessageNoteNotFound))
		return mainMenu, nil
	}

	pinned := "No"
	if note.Pinned {
		pinned = "Yes"
	}
	body := fmt.Sprintf("Title: %s\nCreated: %s\nModified: %s\nPinned: %s\n\n%s",
		note.Title, note.CreatedAt, note.ModifiedAt, pinned, note.Content)

	_, _, err = c.ui.Choice(ctx, ChoiceScreen{
		Title: c.res.Title(textres.TitleNoteContent),
		Body:  body,
		Buttons: []Button{
			{Label: c.res.Button(textres.ButtonBack), Icon: c.res.Icon(textres.IconBack)},
		},
	})
	if err != nil {
		return done, err
	}
	// Read-only display: any response returns to the main menu.
	return mainMenu, nil
}

func (c *Controller) confirmDelete(ctx context.Context, player, title string) (state, error) {
	yes, ok, err := c.ui.Confirm(ctx, ConfirmScreen{
		Title: c.res.Title(textres.TitleConfirmDeleteNote),
		Body:  c.res.Messagef(textres.MessageConfirmDeleteNote, title),
		Yes:   c.res.Button(textres.ButtonYes),
		No:    c.res.Button(textres.ButtonNo),
	})
	if err != nil {
		return done, err
	}
	if ok && yes {
		if err := c.store.Delete(ctx, player, title); err != nil {
			c.fail(player, "delete note", err)
		} else {
			c.tell(ctx, player, c.res.Messagef(textres.MessageNoteDeleted, title))
		}
	}
	return mainMenu, nil
}

func (c *Controller) editDetail(ctx context.Context, player, title string) (state, error) {
	note, err := c.store.Get(ctx, player, title)
	if err != nil {
		c.fail(player, "load note", err)
		return mainMenu, nil
	}
	if note == nil {
		c.tell(ctx, player, c.res.Message(textres.MessageNoteNotFound))
		return mainMenu, nil
	}

	vals, ok, err := c.ui.Form(ctx, FormScreen{
		Title: c.res.Title(textres.TitleEditNote),
		Fields: []Field{
			{Kind: FieldText, Label: "Title:", Placeholder: "Enter note title", Default: note.Title},
			{Kind: FieldText, Label: "Content:", Placeholder: "Enter note content", Default: note.Content},
			{Kind: FieldToggle, Label: "Pin this note?", DefaultOn: note.Pinned},
		},
	})
	if err != nil {
		return done, err
	}
	if !ok {
		return done, nil
	}

	newTitle := strings.TrimSpace(fieldText(vals, 0))
	if newTitle == "" {
		c.tell(ctx, player, c.res.Message(textres.MessageNoteTitleEmpty))
		return state{kind: stateEditDetail, title: title}, nil
	}

	titleChanged := newTitle != note.Title
	if titleChanged {
		exists, err := c.store.Exists(ctx, player, newTitle)
		if err != nil {
			c.fail(player, "check title", err)
			return mainMenu, nil
		}
		if exists {
			c.tell(ctx, player, c.res.Messagef(textres.MessageNoteTitleExists, newTitle))
			return state{kind: stateEditDetail, title: title}, nil
		}
	}

	// Change detection compares post-{line}-expansion, untrimmed content.
	newContent := model.ExpandLines(fieldText(vals, 1))
	pinned := fieldOn(vals, 2)
	contentChanged := newContent != note.Content
	pinChanged := pinned != note.Pinned

	if !titleChanged && !contentChanged && !pinChanged {
		c.tell(ctx, player, c.res.Message(textres.MessageNoChanges))
		return mainMenu, nil
	}

	updated := model.Note{
		Title:      newTitle,
		Content:    newContent,
		CreatedAt:  note.CreatedAt,
		ModifiedAt: c.now(),
		Pinned:     pinned,
	}

	if titleChanged {
		if err := c.store.Rename(ctx, player, note.Title, updated); err != nil {
			c.fail(player, "rename note", err)
			return mainMenu, nil
		}
		c.tell(ctx, player, c.res.Messagef(textres.MessageNoteRenamed, note.Title, newTitle))
	} else {
		if err := c.store.Put(ctx, player, updated); err != nil {
			c.fail(player, "update note", err)
			return mainMenu, nil
		}
		c.tell(ctx, player, c.res.Messagef(textres.MessageNoteUpdated, note.Title))
	}

	if pinChanged {
		key := textres.MessageNoteUnpinned
		if pinned {
			key = textres.MessageNotePinned
		}
		c.tell(ctx, player, c.res.Messagef(key, newTitle))
	}
	return mainMenu, nil
}

func (c *Controller) selectRecipient(ctx context.Context, player, title string) (state, error) {
	players, err := c.dir.Online(ctx, player)
	if err != nil {
		c.fail(player, "list online players", err)
		return mainMenu, nil
	}
	if len(players) == 0 {
		c.tell(ctx, player, c.res.Message(textres.MessageNoPlayersOnline))
		return mainMenu, nil
	}

	buttons := make([]Button, 0, len(players)+1)
	for _, p := range players {
		buttons = append(buttons, Button{Label: p, Icon: c.res.Icon(textres.IconPlayer)})
	}
	buttons = append(buttons, Button{
		Label: c.res.Button(textres.ButtonBack),
		Icon:  c.res.Icon(textres.IconBack),
	})

	idx, ok, err := c.ui.Choice(ctx, ChoiceScreen{
		Title:   c.res.Title(textres.TitleSelectPlayer) + " - " + title,
		Body:    c.res.Message(textres.MessageSelectPlayer),
		Buttons: buttons,
	})
	if err != nil {
		return done, err
	}
	if !ok || idx < 0 || idx >= len(players) {
		return mainMenu, nil
	}
	return state{kind: stateConfirmShare, title: title, recipient: players[idx]}, nil
}

func (c *Controller) confirmShare(ctx context.Context, player, title, recipient string) (state, error) {
	yes, ok, err := c.ui.Confirm(ctx, ConfirmScreen{
		Title: c.res.Title(textres.TitleConfirmShareNote),
		Body:  c.res.Messagef(textres.MessageConfirmShareNote, title, recipient),
		Yes:   c.res.Button(textres.ButtonYes),
		No:    c.res.Button(textres.ButtonNo),
	})
	if err != nil {
		return done, err
	}
	if !ok || !yes {
		return mainMenu, nil
	}

	// The recipient snapshot may be stale; re-resolve before writing.
	live, err := c.dir.Resolve(ctx, recipient)
	if err != nil {
		c.fail(player, "resolve recipient", err)
		return mainMenu, nil
	}
	if !live {
		c.tell(ctx, player, c.res.Messagef(textres.MessagePlayerNotFound, recipient))
		return mainMenu, nil
	}

	if err := c.sharer.Share(ctx, player, recipient, title); err != nil {
		c.fail(player, "share note", err)
	}
	return mainMenu, nil
}

func (c *Controller) tell(ctx context.Context, player, text string) {
	if err := c.out.Tell(ctx, player, text); err != nil {
		c.log.Warn().Err(err).Str("player", player).Msg("notify failed")
	}
}

func (c *Controller) fail(player, op string, err error) {
	c.log.Error().Err(err).Str("player", player).Msg(op + " failed")
}

func fieldText(vals []FieldValue, i int) string {
	if i >= len(vals) {
		return ""
	}
	return vals[i].Text
}

func fieldOn(vals []FieldValue, i int) bool {
	if i >= len(vals) {
		return false
	}
	return vals[i].On
}
