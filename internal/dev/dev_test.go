package dev

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWatcher_DetectsChanges(t *testing.T) {
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "aviso.pdf")
	if err := os.WriteFile(existing, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Interval: 20 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Start(ctx) }()

	waitFor(t, watcher.IsRunning)

	// Grow the file so the size differs even on coarse mtime filesystems.
	if err := os.WriteFile(existing, []byte("%PDF-1.4 updated"), 0644); err != nil {
		t.Fatal(err)
	}
	expectChange(t, changes, Change{Path: existing, Kind: ChangeModified})

	added := filepath.Join(tmpDir, "nuevo.pdf")
	if err := os.WriteFile(added, []byte("%PDF"), 0644); err != nil {
		t.Fatal(err)
	}
	expectChange(t, changes, Change{Path: added, Kind: ChangeCreated})

	if err := os.Remove(added); err != nil {
		t.Fatal(err)
	}
	expectChange(t, changes, Change{Path: added, Kind: ChangeRemoved})

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Start returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	if watcher.IsRunning() {
		t.Error("watcher should not be running after Start returns")
	}
}

func TestWatcher_Ignore(t *testing.T) {
	watcher := NewWatcher(WatcherConfig{})

	tests := []struct {
		path   string
		ignore bool
	}{
		{"/docs/aviso.pdf", false},
		{"/docs/.git", true},
		{"/docs/aviso.pdf.swp", true},
		{"/docs/borrador.tmp", true},
		{"/docs/aviso.pdf~", true},
	}

	for _, tt := range tests {
		if got := watcher.shouldIgnore(tt.path); got != tt.ignore {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.ignore)
		}
	}
}

func TestDiffStates(t *testing.T) {
	t0 := time.Unix(1700000000, 0)
	before := map[string]fileState{
		"a.pdf": {modTime: t0, size: 10},
		"b.pdf": {modTime: t0, size: 10},
		"c.pdf": {modTime: t0, size: 10},
	}
	after := map[string]fileState{
		"a.pdf": {modTime: t0, size: 10},
		"b.pdf": {modTime: t0.Add(time.Second), size: 10},
		"d.pdf": {modTime: t0, size: 1},
	}

	got := diffStates(before, after)
	want := []Change{
		{Path: "b.pdf", Kind: ChangeModified},
		{Path: "c.pdf", Kind: ChangeRemoved},
		{Path: "d.pdf", Kind: ChangeCreated},
	}
	if len(got) != len(want) {
		t.Fatalf("diffStates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChangeKind_String(t *testing.T) {
	if ChangeCreated.String() != "created" || ChangeModified.String() != "modified" || ChangeRemoved.String() != "removed" {
		t.Error("unexpected ChangeKind names")
	}
	if ChangeKind(42).String() != "unknown" {
		t.Error("out of range kind should be unknown")
	}
}

func TestReloadServer_Broadcast(t *testing.T) {
	hub := NewReloadServer(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.NotifyChange(Change{Path: "public/pdf/aviso.pdf", Kind: ChangeModified})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != ReloadTypeFull || msg.File != "public/pdf/aviso.pdf" {
		t.Errorf("message = %+v", msg)
	}

	conn.Close()
	waitFor(t, func() bool { return hub.ClientCount() == 0 })
}

func TestReloadServer_ClientCount(t *testing.T) {
	hub := NewReloadServer(nil)
	if hub.ClientCount() != 0 {
		t.Errorf("Expected 0 clients, got %d", hub.ClientCount())
	}
	hub.NotifyReload()
	hub.NotifyError("boom")
	hub.Close()
}

func TestReloadMessage_JSON(t *testing.T) {
	data, err := json.Marshal(ReloadMessage{Type: ReloadTypeFull})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"type":"reload"}` {
		t.Errorf("got %s", data)
	}
}

func TestClientScript(t *testing.T) {
	if !strings.Contains(ClientScript, ReloadPath) {
		t.Error("client script should connect to the reload path")
	}
	if !strings.Contains(ClientScript, "location.reload()") {
		t.Error("client script should reload the page")
	}
}

func expectChange(t *testing.T, changes <-chan Change, want Change) {
	t.Helper()
	select {
	case got := <-changes:
		if got != want {
			t.Errorf("change = %+v, want %+v", got, want)
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for %+v", want)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}
