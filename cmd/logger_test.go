package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		verbose   bool
		wantDebug bool
	}{
		{verbose: false, wantDebug: false},
		{verbose: true, wantDebug: true},
	}
	for _, tc := range testCases {
		var b bytes.Buffer
		log := NewLogger(&b, tc.verbose)
		log.Debug().Msg("hidden detail")
		log.Info().Msg("visible message")

		got := b.String()
		if !strings.Contains(got, "visible message") {
			t.Errorf("verbose=%v: info message missing in %q", tc.verbose, got)
		}
		if strings.Contains(got, "hidden detail") != tc.wantDebug {
			t.Errorf("verbose=%v: debug message presence mismatch in %q", tc.verbose, got)
		}
	}
}

func TestWithLogger(t *testing.T) {
	old := config
	t.Cleanup(func() { config = old })
	config.Verbose = true

	var b bytes.Buffer
	ctx := WithLogger(context.Background(), &b)
	zerolog.Ctx(ctx).Debug().Msg("from context")

	if !strings.Contains(b.String(), "from context") {
		t.Errorf("context logger did not write to the writer: %q", b.String())
	}
}
