package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key input.
//
// For runes, Key is tcell.KeyRune and Ch holds the rune; for all other keys Ch
// is zero. Modifiers are not part of a key as far as mappings are concerned,
// shifted runes simply being different runes.
type Key struct {
	Key tcell.Key
	Ch  rune
}

// ToDebugString returns a representation of the key for logging.
func (k *Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d))",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
	)
}

// IsRune returns whether the key is a rune.
func (k Key) IsRune() bool { return k.Key == tcell.KeyRune }

// RuneKey returns the Key for the given rune.
func RuneKey(r rune) Key { return Key{Key: tcell.KeyRune, Ch: r} }

// KeyFromTcellEvent formats a tcell.EventKey to a Key as this package expects
// it. Any Key for a tcell.EventKey should be converted by this function.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}
