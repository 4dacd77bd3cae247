package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pagegraph"
	"github.com/fwojciec/pagegraph/mock"
	pgslog "github.com/fwojciec/pagegraph/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingWalker_Walk(t *testing.T) {
	t.Parallel()

	t.Run("logs root and file count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageWalker{
			WalkFn: func(ctx context.Context, root string) ([]pagegraph.PageFile, error) {
				return []pagegraph.PageFile{{Filename: "index"}}, nil
			},
		}

		walker := pgslog.NewLoggingWalker(inner, newDebugLogger(&buf))
		files, err := walker.Walk(context.Background(), "/site")

		require.NoError(t, err)
		assert.Len(t, files, 1)
		output := buf.String()
		assert.Contains(t, output, "msg=walk")
		assert.Contains(t, output, "root=/site")
		assert.Contains(t, output, "count=1")
	})

	t.Run("logs error when root is missing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageWalker{
			WalkFn: func(ctx context.Context, root string) ([]pagegraph.PageFile, error) {
				return nil, pagegraph.Errorf(pagegraph.ENOTFOUND, "directory not found")
			},
		}

		walker := pgslog.NewLoggingWalker(inner, newDebugLogger(&buf))
		_, err := walker.Walk(context.Background(), "/missing")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"directory not found\"")
	})
}
