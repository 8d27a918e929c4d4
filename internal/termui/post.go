package termui

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Inbox stores notifications for players who are not at this terminal.
type Inbox interface {
	Enqueue(ctx context.Context, player, body string) error
}

// Post delivers notifications: the local player sees them on the terminal
// immediately, everyone else gets them queued in their inbox.
type Post struct {
	local string
	out   io.Writer
	inbox Inbox
}

// NewPost builds a Post for the given local player.
func NewPost(local string, out io.Writer, inbox Inbox) *Post {
	return &Post{local: local, out: out, inbox: inbox}
}

// Tell implements the messaging sink.
func (p *Post) Tell(ctx context.Context, player, text string) error {
	if strings.EqualFold(player, p.local) {
		fmt.Fprintf(p.out, "* %s\n", text)
		return nil
	}
	return p.inbox.Enqueue(ctx, player, text)
}
