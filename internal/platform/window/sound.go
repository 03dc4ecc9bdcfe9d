package window

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// SoundPolicy binds a gameplay event to a sound file and says whether the
// game may run without it.
type SoundPolicy struct {
	File     string
	Event    core.EventKind
	Required bool
}

// soundPolicies holds the per-game sound setup. Blocks plays a chime on
// line clears and runs muted without it; snake refuses to start without
// its eat sound.
var soundPolicies = map[string]SoundPolicy{
	"blocks": {File: "score.wav", Event: core.EventLineClear},
	"snake":  {File: "eat.wav", Event: core.EventFoodEaten, Required: true},
}

// PolicyFor returns the sound policy of a game, if it has one.
func PolicyFor(gameID string) (SoundPolicy, bool) {
	p, ok := soundPolicies[gameID]
	return p, ok
}

// resolveSound locates the sound file for a game inside assetsDir.
// With no assets dir, or no policy for the game, it returns an empty path
// and the game runs muted. A missing optional sound yields a
// *missingSoundError, which callers log before running muted; any other
// error means the game must not start.
func resolveSound(gameID, assetsDir string) (path string, policy SoundPolicy, err error) {
	policy, ok := PolicyFor(gameID)
	if !ok || assetsDir == "" {
		return "", policy, nil
	}

	path = filepath.Join(assetsDir, policy.File)
	info, statErr := os.Stat(path)
	switch {
	case statErr == nil && info.IsDir():
		statErr = fmt.Errorf("%s is a directory", path)
	case statErr == nil:
		return path, policy, nil
	}

	if policy.Required {
		return "", policy, fmt.Errorf("window: %s needs sound %s: %w", gameID, policy.File, statErr)
	}
	return "", policy, &missingSoundError{path: path, err: statErr}
}

// missingSoundError reports an optional sound that could not be found.
type missingSoundError struct {
	path string
	err  error
}

func (e *missingSoundError) Error() string {
	return fmt.Sprintf("optional sound %s unavailable: %v", e.path, e.err)
}

func (e *missingSoundError) Unwrap() error {
	return e.err
}
