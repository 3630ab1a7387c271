package lvgeom_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := lvgeom.Logger()
	require.NotNil(t, l)
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	lvgeom.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { lvgeom.SetLogger(nil) })

	lvgeom.Logger().Debug("probe", "k", 1)
	require.Contains(t, buf.String(), "probe")

	lvgeom.SetLogger(nil)
	require.False(t, lvgeom.Logger().Enabled(context.Background(), slog.LevelError))
}
