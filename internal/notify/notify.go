// Package notify delivers the user-facing timer-expiry cue. The sound
// preference lives in its own KV slot so the settings command and the
// expiry path read the same value.
package notify

import (
	"context"
	"os/exec"

	"github.com/existflow/flowboard/internal/db"
	"github.com/existflow/flowboard/internal/logger"
)

// SoundKey is the KV slot holding the selected notification sound path.
const SoundKey = "notificationSound"

// DefaultSound is used when no preference has been saved.
const DefaultSound = "/usr/share/sounds/freedesktop/stereo/complete.oga"

// players are tried in order; the first one on PATH wins.
var players = []string{"paplay", "aplay", "afplay", "mpg123"}

// Notifier delivers a timer-expiry notification
type Notifier interface {
	TimerExpired(ctx context.Context, taskTitle string)
}

// Discard is a Notifier that drops notifications
type Discard struct{}

func (Discard) TimerExpired(context.Context, string) {}

// SoundNotifier plays the configured notification sound through a system
// audio player. Playback failures are logged, never surfaced: an expiry
// must complete whether or not audio works.
type SoundNotifier struct {
	db       *db.DB
	fallback string
}

// NewSoundNotifier creates a notifier reading its sound preference from the
// KV store. fallback is used when no preference is set; empty means
// DefaultSound.
func NewSoundNotifier(database *db.DB, fallback string) *SoundNotifier {
	if fallback == "" {
		fallback = DefaultSound
	}
	return &SoundNotifier{db: database, fallback: fallback}
}

// Sound returns the currently selected sound path
func (n *SoundNotifier) Sound(ctx context.Context) string {
	var sound string
	if err := n.db.KVGet(ctx, SoundKey, &sound); err != nil || sound == "" {
		return n.fallback
	}
	return sound
}

// SetSound persists the sound preference
func (n *SoundNotifier) SetSound(ctx context.Context, path string) error {
	return n.db.KVSet(ctx, SoundKey, path)
}

// TimerExpired plays the notification sound in the background
func (n *SoundNotifier) TimerExpired(ctx context.Context, taskTitle string) {
	sound := n.Sound(ctx)

	var player string
	for _, p := range players {
		if _, err := exec.LookPath(p); err == nil {
			player = p
			break
		}
	}
	if player == "" {
		logger.Warn("No audio player found, skipping notification sound",
			logger.F("task", taskTitle))
		return
	}

	cmd := exec.Command(player, sound)
	go func() {
		if err := cmd.Run(); err != nil {
			logger.Warn("Failed to play notification sound",
				logger.F("sound", sound),
				logger.F("error", err))
		}
	}()
}
