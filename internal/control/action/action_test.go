package action_test

import (
	"testing"

	"github.com/ja-he/jot/internal/control/action"
)

func TestSimple(t *testing.T) {

	t.Run("Do", func(t *testing.T) {
		count := 0
		n := action.Named("insert newline", func() { count++ })
		n.Do()
		n.Do()
		if count != 2 {
			t.Errorf("expected two calls, got %d", count)
		}
	})

	t.Run("Explain", func(t *testing.T) {
		n := action.Named("insert newline", func() {})
		if n.Explain() != "insert newline" {
			t.Error("named action explained wrongly:", n.Explain())
		}
	})

	t.Run("implements Action", func(t *testing.T) {
		var a action.Action = action.Named("noop", func() {})
		a.Do()
	})

}
