// Package textres resolves symbolic keys to configured display strings.
//
// Four sections (titles, messages, buttons, icons) are loaded once at startup
// and validated against a fixed required-key set; the resulting Resources
// value is immutable and safe for concurrent reads.
package textres

import (
	"fmt"
	"strings"
)

// Section identifies one of the four text-resource mappings.
type Section string

const (
	SectionTitles   Section = "titles"
	SectionMessages Section = "messages"
	SectionButtons  Section = "buttons"
	SectionIcons    Section = "icons"
)

// Key is a symbolic text-resource key, prefixed with its section.
type Key string

const (
	TitleMainMenu          Key = "title_main_menu"
	TitleCreateNote        Key = "title_create_note"
	TitleViewNotes         Key = "title_view_notes"
	TitleDeleteNote        Key = "title_delete_note"
	TitleConfirmDeleteNote Key = "title_confirm_delete_note"
	TitleEditNote          Key = "title_edit_note"
	TitleNoteContent       Key = "title_note_content"
	TitleShareNote         Key = "title_share_note"
	TitleConfirmShareNote  Key = "title_confirm_share_note"
	TitleSelectPlayer      Key = "title_select_player"

	MessageNoNotes           Key = "message_no_notes"
	MessageSelectAction      Key = "message_select_action"
	MessageSelectNote        Key = "message_select_note"
	MessageSelectNoteDelete  Key = "message_select_note_delete"
	MessageSelectNoteEdit    Key = "message_select_note_edit"
	MessageSelectNoteShare   Key = "message_select_note_share"
	MessageSelectPlayer      Key = "message_select_player"
	MessageNoteCreated       Key = "message_note_created"
	MessageNoteUpdated       Key = "message_note_updated"
	MessageNoteDeleted       Key = "message_note_deleted"
	MessageNoteRenamed       Key = "message_note_renamed"
	MessageNoteShared        Key = "message_note_shared"
	MessageNoteReceived      Key = "message_note_received"
	MessageNoChanges         Key = "message_no_changes"
	MessageNotePinned        Key = "message_note_pinned"
	MessageNoteUnpinned      Key = "message_note_unpinned"
	MessageNoteNotFound      Key = "message_note_not_found"
	MessagePlayerNotFound    Key = "message_player_not_found"
	MessageNoPlayersOnline   Key = "message_no_players_online"
	MessageCommandOnlyIngame Key = "message_command_only_ingame"
	MessageConfirmDeleteNote Key = "message_confirm_delete_note"
	MessageConfirmShareNote  Key = "message_confirm_share_note"
	MessageNoteTitleEmpty    Key = "message_note_title_empty"
	MessageNoteTitleExists   Key = "message_note_title_exists"

	ButtonCreateNote Key = "button_create_note"
	ButtonDeleteNote Key = "button_delete_note"
	ButtonViewNotes  Key = "button_view_notes"
	ButtonEditNote   Key = "button_edit_note"
	ButtonShareNote  Key = "button_share_note"
	ButtonBack       Key = "button_back"
	ButtonYes        Key = "button_text_yes"
	ButtonNo         Key = "button_text_no"

	IconCreate Key = "icon_create"
	IconDelete Key = "icon_delete"
	IconView   Key = "icon_view"
	IconEdit   Key = "icon_edit"
	IconShare  Key = "icon_share"
	IconBack   Key = "icon_back"
	IconPlayer Key = "icon_player"
)

// sectionPrefixes maps each section to the key prefix stripped at lookup.
var sectionPrefixes = map[Section]string{
	SectionTitles:   "title_",
	SectionMessages: "message_",
	SectionButtons:  "button_",
	SectionIcons:    "icon_",
}

// defaults are the fallback strings returned for a key missing after
// validation. Unreachable in practice, but lookups never fail at render time.
var defaults = map[Section]string{
	SectionTitles:   "Default Title",
	SectionMessages: "Default Message",
	SectionButtons:  "Default Button",
	SectionIcons:    "Default Icon",
}

// Required lists every symbolic key each section must define.
var Required = map[Section][]Key{
	SectionTitles: {
		TitleMainMenu, TitleCreateNote, TitleViewNotes, TitleDeleteNote,
		TitleConfirmDeleteNote, TitleEditNote, TitleNoteContent,
		TitleShareNote, TitleConfirmShareNote, TitleSelectPlayer,
	},
	SectionMessages: {
		MessageNoNotes, MessageSelectAction, MessageSelectNote,
		MessageSelectNoteDelete, MessageSelectNoteEdit, MessageSelectNoteShare,
		MessageSelectPlayer, MessageNoteCreated, MessageNoteUpdated,
		MessageNoteDeleted, MessageNoteRenamed, MessageNoteShared,
		MessageNoteReceived, MessageNoChanges, MessageNotePinned,
		MessageNoteUnpinned, MessageNoteNotFound, MessagePlayerNotFound,
		MessageNoPlayersOnline, MessageCommandOnlyIngame,
		MessageConfirmDeleteNote, MessageConfirmShareNote,
		MessageNoteTitleEmpty, MessageNoteTitleExists,
	},
	SectionButtons: {
		ButtonCreateNote, ButtonDeleteNote, ButtonViewNotes, ButtonEditNote,
		ButtonShareNote, ButtonBack, ButtonYes, ButtonNo,
	},
	SectionIcons: {
		IconCreate, IconDelete, IconView, IconEdit, IconShare, IconBack,
		IconPlayer,
	},
}

// Resources holds the validated text-resource mappings, keyed per section by
// the prefix-stripped, lowercased key.
type Resources struct {
	sections map[Section]map[string]string
}

// New validates the raw section values against the required-key set and
// returns an immutable Resources. The error names the first offending
// section and key.
func New(raw map[Section]map[string]any) (*Resources, error) {
	sections := make(map[Section]map[string]string, len(Required))

	for section, keys := range Required {
		values := raw[section]
		if values == nil {
			return nil, fmt.Errorf("invalid %s settings: %q must be a mapping", section, section)
		}

		prefix := sectionPrefixes[section]
		resolved := make(map[string]string, len(values))
		for k, v := range values {
			if s, ok := v.(string); ok {
				resolved[strings.ToLower(k)] = s
			}
		}

		for _, key := range keys {
			short := strings.TrimPrefix(string(key), prefix)
			s, ok := resolved[short]
			if !ok || s == "" {
				return nil, fmt.Errorf("missing or invalid %s value for %q", section, short)
			}
		}

		sections[section] = resolved
	}

	return &Resources{sections: sections}, nil
}

func (r *Resources) lookup(section Section, key Key) string {
	short := strings.TrimPrefix(strings.ToLower(string(key)), sectionPrefixes[section])
	if s, ok := r.sections[section][short]; ok {
		return s
	}
	return defaults[section]
}

// Title resolves a key in the titles section.
func (r *Resources) Title(key Key) string { return r.lookup(SectionTitles, key) }

// Message resolves a key in the messages section.
func (r *Resources) Message(key Key) string { return r.lookup(SectionMessages, key) }

// Messagef resolves a message template and applies printf arguments.
func (r *Resources) Messagef(key Key, args ...any) string {
	return fmt.Sprintf(r.lookup(SectionMessages, key), args...)
}

// Button resolves a key in the buttons section.
func (r *Resources) Button(key Key) string { return r.lookup(SectionButtons, key) }

// Icon resolves a key in the icons section.
func (r *Resources) Icon(key Key) string { return r.lookup(SectionIcons, key) }
