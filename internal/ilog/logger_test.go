package ilog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticek/incognito/internal/ilog"
)

func TestStd_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := ilog.NewStd(ilog.LevelWarn, &buf)

	l.Debug("should not appear")
	l.Info("should not appear either")
	l.Warn("visible warning")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "[WARN] visible warning")
}

func TestStd_WithFieldAppendsWithoutMutatingParent(t *testing.T) {
	var buf bytes.Buffer
	base := ilog.NewStd(ilog.LevelDebug, &buf)
	tagged := base.WithField("node", 42)

	tagged.Info("evaluated")
	base.Info("untagged")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Contains(t, lines[0], "node=42")
	assert.NotContains(t, lines[1], "node=42")
}

func TestNull_DiscardsEverything(t *testing.T) {
	var n ilog.Null
	n.Debug("x")
	n.WithField("k", "v").Info("y")
}
