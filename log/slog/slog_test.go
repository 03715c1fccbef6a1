package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/jsonstore"
)

func TestStableAttrOrder(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug})
	l := Logger{L: stdslog.New(h)}

	l.Info("put", jsonstore.Fields{"z": 1, "a": 2, "m": 3})
	out := buf.String()
	ia, im, iz := strings.Index(out, "a=2"), strings.Index(out, "m=3"), strings.Index(out, "z=1")
	if ia < 0 || im < ia || iz < im {
		t.Fatalf("attrs not sorted: %s", out)
	}
}
