// Package share implements cross-player note transfer.
package share

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aiptu/mynotes/internal/store"
	"github.com/aiptu/mynotes/internal/textres"
)

// Notifier delivers a plain text notification to a player.
type Notifier interface {
	Tell(ctx context.Context, player, text string) error
}

// Coordinator copies notes between players' note sets.
type Coordinator struct {
	store store.Store
	res   *textres.Resources
	out   Notifier
	log   zerolog.Logger
}

// New builds a Coordinator.
func New(s store.Store, res *textres.Resources, out Notifier, log zerolog.Logger) *Coordinator {
	return &Coordinator{store: s, res: res, out: out, log: log}
}

// Share copies the sender's note to the recipient under the same title,
// overwriting any same-titled note the recipient already has. The copy keeps
// the sender's content, timestamps and pinned flag verbatim. Sharing is a
// copy, not a move: the sender's note is untouched.
func (c *Coordinator) Share(ctx context.Context, sender, recipient, title string) error {
	note, err := c.store.Get(ctx, sender, title)
	if err != nil {
		return fmt.Errorf("read sender note: %w", err)
	}
	if note == nil {
		c.notify(ctx, sender, c.res.Message(textres.MessageNoteNotFound))
		return nil
	}

	if err := c.store.Put(ctx, recipient, *note); err != nil {
		// Do not claim success to the sender.
		c.log.Error().Err(err).
			Str("sender", sender).Str("recipient", recipient).Str("title", title).
			Msg("share write failed")
		return fmt.Errorf("write recipient note: %w", err)
	}

	c.notify(ctx, sender, c.res.Messagef(textres.MessageNoteShared, title, recipient))
	c.notify(ctx, recipient, c.res.Messagef(textres.MessageNoteReceived, title, sender))
	return nil
}

func (c *Coordinator) notify(ctx context.Context, player, text string) {
	if err := c.out.Tell(ctx, player, text); err != nil {
		c.log.Warn().Err(err).Str("player", player).Msg("notify failed")
	}
}
