package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-port-ops/internal/app"
)

// navigator is the CLI side of session teardown: there is no screen to
// switch, so the redirect is reported on stderr, once per run.
type navigator struct {
	mu      sync.Mutex
	w       io.Writer
	printed bool
	muted   bool
}

func newNavigator(w io.Writer) *navigator {
	return &navigator{w: w}
}

func (n *navigator) Navigate(_ context.Context, route string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.printed || n.muted {
		return
	}
	n.printed = true
	_, _ = fmt.Fprintf(n.w, "%s (redirected to %s)\n", app.MsgSessionExpired, route)
}

// mute silences the redirect notice. Credential commands use it: their 401
// means wrong credentials, which they report themselves.
func (n *navigator) mute() {
	n.mu.Lock()
	n.muted = true
	n.mu.Unlock()
}
