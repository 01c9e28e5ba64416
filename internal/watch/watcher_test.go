package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

type collector struct {
	mu   sync.Mutex
	seen []string
	ch   chan string
}

func newCollector() *collector {
	return &collector{ch: make(chan string, 16)}
}

func (c *collector) handle(ctx context.Context, rel string) {
	c.mu.Lock()
	c.seen = append(c.seen, rel)
	c.mu.Unlock()
	c.ch <- rel
}

func (c *collector) wait(t *testing.T, want string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-c.ch:
			if got == want {
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func startWatcher(t *testing.T, cfg Config, c *collector) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	w := New(cfg, c.handle, nil)

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Run: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop")
		}
	})

	// Give the watcher time to register the tree.
	time.Sleep(100 * time.Millisecond)
	return cancel
}

func TestWatcher_NewFile(t *testing.T) {
	root := t.TempDir()
	c := newCollector()
	startWatcher(t, Config{Root: root, Suffix: ".cbor", DebounceDelay: 20 * time.Millisecond}, c)

	if err := os.WriteFile(filepath.Join(root, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "a.cbor"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	c.wait(t, "a.cbor")

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, rel := range c.seen {
		if rel == "ignored.txt" {
			t.Errorf("handler called for non-matching file")
		}
	}
}

func TestWatcher_NewSubdirectory(t *testing.T) {
	root := t.TempDir()
	c := newCollector()
	startWatcher(t, Config{Root: root, Suffix: ".cbor", DebounceDelay: 20 * time.Millisecond}, c)

	sub := filepath.Join(root, "walk", "run1")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "s.cbor"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	c.wait(t, "walk/run1/s.cbor")
}

// TestWatcher_Debounce: repeated writes are handled once.
func TestWatcher_Debounce(t *testing.T) {
	root := t.TempDir()
	c := newCollector()
	startWatcher(t, Config{Root: root, Suffix: ".cbor", DebounceDelay: 200 * time.Millisecond}, c)

	path := filepath.Join(root, "a.cbor")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	c.wait(t, "a.cbor")
	time.Sleep(400 * time.Millisecond)

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.seen) != 1 {
		t.Errorf("handler called %d times, want 1: %v", len(c.seen), c.seen)
	}
}

func TestWatcher_Exclude(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "out")
	if err := os.MkdirAll(out, 0o755); err != nil {
		t.Fatal(err)
	}
	c := newCollector()
	startWatcher(t, Config{Root: root, Suffix: ".cbor", DebounceDelay: 20 * time.Millisecond, Exclude: []string{out}}, c)

	if err := os.WriteFile(filepath.Join(out, "x.cbor"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "b.cbor"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	c.wait(t, "b.cbor")

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, rel := range c.seen {
		if rel == "out/x.cbor" {
			t.Error("handler called for excluded directory")
		}
	}
}

func TestWatcher_UppercaseSuffix(t *testing.T) {
	root := t.TempDir()
	c := newCollector()
	startWatcher(t, Config{Root: root, Suffix: ".cbor", DebounceDelay: 20 * time.Millisecond}, c)

	if err := os.WriteFile(filepath.Join(root, "A.CBOR"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	c.wait(t, "A.CBOR")
}

// TestWatcher_ReplacedTimerDeliversOnce: a timer that fires while it is being
// replaced must not deliver alongside its replacement.
func TestWatcher_ReplacedTimerDeliversOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := New(Config{Root: t.TempDir(), Suffix: ".cbor", DebounceDelay: time.Millisecond}, nil, nil)

	w.mu.Lock()
	w.scheduleLocked(ctx, "a.cbor")
	// Let the first timer fire and block on the lock.
	time.Sleep(50 * time.Millisecond)
	w.scheduleLocked(ctx, "a.cbor")
	w.mu.Unlock()

	delivered := 0
	timeout := time.After(300 * time.Millisecond)
	for {
		select {
		case rel := <-w.ready:
			if rel != "a.cbor" {
				t.Errorf("delivered %q, want a.cbor", rel)
			}
			delivered++
		case <-timeout:
			if delivered != 1 {
				t.Errorf("delivered %d times, want 1", delivered)
			}
			w.mu.Lock()
			defer w.mu.Unlock()
			if len(w.pending) != 0 {
				t.Errorf("pending = %v, want empty", w.pending)
			}
			return
		}
	}
}
