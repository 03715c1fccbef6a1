package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/unkn0wn-root/jsonstore"
)

func TestEntriesCarryFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := New(base)

	l.Error("boom", jsonstore.Fields{"op": "get"})
	e := hook.LastEntry()
	if e == nil || e.Level != logrus.ErrorLevel || e.Message != "boom" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if e.Data["op"] != "get" || e.Data["component"] != "jsonstore" {
		t.Fatalf("data = %v", e.Data)
	}

	l.Debug("quiet", nil)
	if len(hook.AllEntries()) != 2 {
		t.Fatalf("entries = %d", len(hook.AllEntries()))
	}
}
