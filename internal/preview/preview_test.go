package preview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWatcherDetectsModification(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "document.yaml")
	if err := os.WriteFile(testFile, []byte("tag: div\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{testFile},
		Interval: 20 * time.Millisecond,
	})

	changes := make(chan string, 10)
	watcher.OnChange(func(path string) {
		changes <- path
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)

	// Wait for the initial scan, then bump the modification time.
	time.Sleep(60 * time.Millisecond)
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(testFile, future, future); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-changes:
		if path != testFile {
			t.Errorf("change path = %q, want %q", path, testFile)
		}
	case <-time.After(time.Second):
		t.Error("timeout waiting for change")
	}

	watcher.Stop()
}

func TestWatcherReportsDeletion(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "document.yaml")
	if err := os.WriteFile(testFile, []byte("tag: div\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{testFile},
		Interval: 20 * time.Millisecond,
	})
	changes := make(chan string, 10)
	watcher.OnChange(func(path string) {
		changes <- path
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)

	time.Sleep(60 * time.Millisecond)
	if err := os.Remove(testFile); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Error("timeout waiting for deletion report")
	}

	watcher.Stop()
}

func TestReloadServerBroadcast(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitForClients(t, rs, 1)
	rs.NotifyError("boom")

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != TypeError || msg.Error != "boom" {
		t.Errorf("message = %+v, want error/boom", msg)
	}
}

func TestReloadServerClientCount(t *testing.T) {
	rs := NewReloadServer()
	if got := rs.ClientCount(); got != 0 {
		t.Errorf("ClientCount() = %d, want 0", got)
	}

	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	waitForClients(t, rs, 1)

	conn.Close()
	waitForClients(t, rs, 0)
}

func waitForClients(t *testing.T, rs *ReloadServer, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if rs.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("ClientCount() = %d, want %d", rs.ClientCount(), want)
}
