//go:build unit

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"online-store/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	err := run(context.Background(), &out, logger, clock.NewMockClock(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)))
	require.NoError(t, err)

	want := `Available Products:
Laptop - $999.99 - Stock: 10
Smartphone - $599.99 - Stock: 15
Headphones - $99.99 - Stock: 20
Registered Customers:
- Alice
- Bob
Laptop - $999.99
Smartphone - $599.99
Total for Alice: $1599.98
Headphones - $99.99
Total for Bob: $99.99
Balance for Alice: $2000.00
Product: Laptop, Rating: 5 stars, Comment: Great laptop, highly recommended!
Available Products:
Laptop - $999.99 - Stock: 9
Smartphone - $539.99 - Stock: 14
Headphones - $99.99 - Stock: 19
`
	assert.Equal(t, want, out.String())
	assert.Contains(t, logs.String(), "checkout refused")
	assert.Contains(t, logs.String(), "customer=Bob")
}

func TestRunStopsOnWriteError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := run(context.Background(), failingWriter{}, logger, clock.NewRealClock())

	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestRunStopsOnSummaryLineWriteError(t *testing.T) {
	cases := []struct {
		name     string
		prefix   string
		lastLine string
	}{
		{name: "cart total", prefix: "Total for", lastLine: "Smartphone - $599.99\n"},
		{name: "balance", prefix: "Balance for", lastLine: "Total for Bob: $99.99\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			w := &prefixFailingWriter{prefix: tc.prefix}

			err := run(context.Background(), w, logger, clock.NewRealClock())

			assert.ErrorIs(t, err, io.ErrShortWrite)
			assert.True(t, strings.HasSuffix(w.buf.String(), tc.lastLine), "output continued past the failed write:\n%s", w.buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrShortWrite }

// prefixFailingWriter rejects the first write that starts with prefix.
type prefixFailingWriter struct {
	prefix string
	buf    bytes.Buffer
}

func (w *prefixFailingWriter) Write(p []byte) (int, error) {
	if strings.HasPrefix(string(p), w.prefix) {
		return 0, io.ErrShortWrite
	}
	return w.buf.Write(p)
}
