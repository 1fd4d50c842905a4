package primeasn

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, slog.LevelDebug).WithSource("mem://a")

	l.LogFetch(context.Background(), "gzip", 10, 3, time.Millisecond, nil)
	assert.Contains(t, buf.String(), `"msg":"fetch completed"`)
	assert.Equal(t, 1, strings.Count(buf.String(), `"source":"mem://a"`))
	assert.Contains(t, buf.String(), `"compression":"gzip"`)

	buf.Reset()
	l.LogFilter(context.Background(), 3, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"source":"mem://a"`)

	buf.Reset()
	NewTextLogger(&buf, slog.LevelInfo).LogSieve(context.Background(), 100, 25, time.Millisecond, nil)
	assert.Empty(t, buf.String())
}
