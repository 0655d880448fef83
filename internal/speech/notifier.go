package speech

import (
	"context"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*ChimingNotifier)(nil)

// Sounder plays raw PCM. *Player satisfies it.
type Sounder interface {
	Play(pcm []byte) error
}

// ChimingNotifier wraps a text notifier and plays a chime with urgent
// messages. Messages are printed immediately; the chime plays in the
// background so the prompt is never held up.
type ChimingNotifier struct {
	text  domain.Notifier
	sound Sounder
	chime []byte
	log   *logger.Logger
}

// NewChimingNotifier creates a notifier that prints and chimes.
func NewChimingNotifier(text domain.Notifier, sound Sounder, log *logger.Logger) *ChimingNotifier {
	return &ChimingNotifier{
		text:  text,
		sound: sound,
		chime: Synthesize(WarningChime),
		log:   log,
	}
}

// Notify prints the message. Normal messages stay silent.
func (n *ChimingNotifier) Notify(ctx context.Context, message string) error {
	return n.text.Notify(ctx, message)
}

// NotifyUrgent prints the message and starts the chime.
func (n *ChimingNotifier) NotifyUrgent(ctx context.Context, message string) error {
	if err := n.text.NotifyUrgent(ctx, message); err != nil {
		return err
	}
	go func() {
		if err := n.sound.Play(n.chime); err != nil {
			n.log.Error("playing chime: %v", err)
		}
	}()
	return nil
}
