package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/zoo/internal/zoo/domain"
)

// syncBuffer is a bytes.Buffer safe for one writer goroutine and a polling reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchReport_RerendersOnRosterChange(t *testing.T) {
	path := writeFile(t, "roster.yaml", "animals:\n  - kind: wolf\n    name: Grey\n")
	withConfig(t, plainConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- watchReport(ctx, &out, reportOptions{Roster: path, Sections: []string{"stat"}}, 20*time.Millisecond)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Total animals: 1\n")
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("animals:\n  - kind: wolf\n    name: Grey\n  - kind: snake\n    name: Kaa\n"), 0o600))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Total animals: 2\n")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watchReport did not return after cancel")
	}
}

func TestWatchReport_NeedsRoster(t *testing.T) {
	withConfig(t, plainConfig(), nil)
	err := watchReport(context.Background(), &bytes.Buffer{}, reportOptions{}, 0)
	require.True(t, domain.IsInvalidEntry(err))
}
