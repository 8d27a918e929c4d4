package textres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRaw builds raw section values covering every required key.
func validRaw() map[Section]map[string]any {
	raw := make(map[Section]map[string]any, len(Required))
	for section, keys := range Required {
		values := make(map[string]any, len(keys))
		for _, k := range keys {
			short := strings.TrimPrefix(string(k), sectionPrefixes[section])
			values[short] = "v:" + short
		}
		raw[section] = values
	}
	return raw
}

func TestNewValidatesAllSections(t *testing.T) {
	res, err := New(validRaw())
	require.NoError(t, err)

	assert.Equal(t, "v:main_menu", res.Title(TitleMainMenu))
	assert.Equal(t, "v:no_notes", res.Message(MessageNoNotes))
	assert.Equal(t, "v:back", res.Button(ButtonBack))
	assert.Equal(t, "v:player", res.Icon(IconPlayer))
}

func TestNewMissingKeyNamesIt(t *testing.T) {
	raw := validRaw()
	delete(raw[SectionMessages], "note_created")

	_, err := New(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "messages")
	assert.Contains(t, err.Error(), "note_created")
}

func TestNewRejectsNonStringValue(t *testing.T) {
	raw := validRaw()
	raw[SectionButtons]["back"] = 42

	_, err := New(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "back")
}

func TestNewRejectsEmptyValue(t *testing.T) {
	raw := validRaw()
	raw[SectionTitles]["main_menu"] = ""

	_, err := New(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "main_menu")
}

func TestNewRejectsMissingSection(t *testing.T) {
	raw := validRaw()
	delete(raw, SectionIcons)

	_, err := New(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "icons")
}

func TestLookupKeyNormalization(t *testing.T) {
	res, err := New(validRaw())
	require.NoError(t, err)

	// Keys resolve by stripped, lowercased short name.
	assert.Equal(t, "v:create_note", res.Title(Key("TITLE_CREATE_NOTE")))
}

func TestLookupFallsBackToSectionDefault(t *testing.T) {
	res, err := New(validRaw())
	require.NoError(t, err)

	assert.Equal(t, "Default Title", res.Title(Key("title_bogus")))
	assert.Equal(t, "Default Message", res.Message(Key("message_bogus")))
	assert.Equal(t, "Default Button", res.Button(Key("button_bogus")))
	assert.Equal(t, "Default Icon", res.Icon(Key("icon_bogus")))
}

func TestMessagef(t *testing.T) {
	raw := validRaw()
	raw[SectionMessages]["note_created"] = "Note '%s' created."

	res, err := New(raw)
	require.NoError(t, err)

	assert.Equal(t, "Note 'Shopping' created.", res.Messagef(MessageNoteCreated, "Shopping"))
}

func TestExtraKeysAreAllowed(t *testing.T) {
	raw := validRaw()
	raw[SectionMessages]["motd"] = "welcome"

	res, err := New(raw)
	require.NoError(t, err)
	assert.Equal(t, "welcome", res.Message(Key("message_motd")))
}
