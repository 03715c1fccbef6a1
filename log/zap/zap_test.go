package zap

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/jsonstore"
)

func TestFieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Warn("stored payload is not json", jsonstore.Fields{"key": `"bad"`, "size": 8})
	l.Debug("key encode failed", jsonstore.Fields{"err": errors.New("boom")})
	l.Info("no fields", nil)

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("entries = %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel || entries[0].LoggerName != "jsonstore" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
	ctx := entries[0].ContextMap()
	if ctx["key"] != `"bad"` || ctx["size"] != int64(8) {
		t.Fatalf("fields = %v", ctx)
	}
	if entries[1].ContextMap()["err"] != "boom" {
		t.Fatalf("error field = %v", entries[1].ContextMap())
	}
}
