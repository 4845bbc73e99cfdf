package storage

import (
	"image"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func testImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 4, 3))
}

func TestSessionSaveAndLoadPath(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	sess, err := st.OpenSession("zoom")
	if err != nil {
		t.Fatalf("open session failed: %v", err)
	}

	metas := []FrameMeta{
		{XCenter: -0.5, YCenter: 0, Scale: 1.5, MaxIter: 300, PX: 400, PY: 300},
		{XCenter: -0.74, YCenter: 0.13, Scale: 0.375, MaxIter: 375, PX: 210, PY: 160},
	}
	for _, m := range metas {
		if _, err := sess.SaveFrame(testImage(), m); err != nil {
			t.Fatalf("save frame failed: %v", err)
		}
	}

	path, err := st.LoadPath("zoom", 4, 3)
	if err != nil {
		t.Fatalf("load path failed: %v", err)
	}
	if len(path) != 2 {
		t.Fatalf("expected 2 keyframes, got %d", len(path))
	}

	for i, m := range metas {
		kf := path[i]
		if kf.Viewport.XCenter != m.XCenter || kf.Viewport.Scale != m.Scale {
			t.Errorf("keyframe %d: expected (%f, %f), got (%f, %f)",
				i, m.XCenter, m.Scale, kf.Viewport.XCenter, kf.Viewport.Scale)
		}
		if kf.Viewport.MaxIter != m.MaxIter {
			t.Errorf("keyframe %d: expected max_iter %d, got %d", i, m.MaxIter, kf.Viewport.MaxIter)
		}
		if kf.ClickPX != m.PX || kf.ClickPY != m.PY {
			t.Errorf("keyframe %d: expected click (%d,%d), got (%d,%d)",
				i, m.PX, m.PY, kf.ClickPX, kf.ClickPY)
		}
		if kf.Viewport.Width != 4 || kf.Viewport.Height != 3 {
			t.Errorf("keyframe %d: expected caller dimensions 4x3, got %dx%d",
				i, kf.Viewport.Width, kf.Viewport.Height)
		}
	}
}

func TestSessionConcurrentSaves(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	sess, err := st.OpenSession("zoom")
	if err != nil {
		t.Fatal(err)
	}

	const saves = 8
	var wg sync.WaitGroup
	for i := 0; i < saves; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			meta := FrameMeta{XCenter: -0.5, Scale: 1.5, MaxIter: 300 + i}
			if _, err := sess.SaveFrame(testImage(), meta); err != nil {
				t.Errorf("save %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	// every save must land in its own numbered slot
	pngs, err := filepath.Glob(filepath.Join(sess.Dir(), "zoom_*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(pngs) != saves {
		t.Errorf("expected %d frame files, got %d: %v", saves, len(pngs), pngs)
	}

	path, err := st.LoadPath("zoom", 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != saves {
		t.Errorf("expected %d keyframes, got %d", saves, len(path))
	}
}

func TestOpenSessionResetsStaleFrames(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	sess, err := st.OpenSession("zoom")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sess.SaveFrame(testImage(), FrameMeta{Scale: 1.5, MaxIter: 300}); err != nil {
		t.Fatal(err)
	}

	// reopening drops the stale frame and restarts numbering
	sess, err = st.OpenSession("zoom")
	if err != nil {
		t.Fatal(err)
	}
	p, err := sess.SaveFrame(testImage(), FrameMeta{Scale: 0.375, MaxIter: 375})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(p) != "zoom_000.png" {
		t.Errorf("expected numbering to restart at 000, got %s", filepath.Base(p))
	}

	path, err := st.LoadPath("zoom", 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 1 {
		t.Errorf("expected 1 keyframe after reset, got %d", len(path))
	}
}

func TestListSessions(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := st.OpenSession("alpha"); err != nil {
		t.Fatal(err)
	}
	if _, err := st.OpenSession("beta"); err != nil {
		t.Fatal(err)
	}
	// unrelated directories are ignored
	if err := os.Mkdir(filepath.Join(dir, "not-a-session"), 0755); err != nil {
		t.Fatal(err)
	}

	sessions, err := st.ListSessions()
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 2 || sessions[0] != "alpha" || sessions[1] != "beta" {
		t.Errorf("expected [alpha beta], got %v", sessions)
	}
}

func TestListSessionsMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "never-created"))
	sessions, err := st.ListSessions()
	if err != nil {
		t.Fatalf("expected nil error for missing dir, got %v", err)
	}
	if sessions != nil {
		t.Errorf("expected no sessions, got %v", sessions)
	}
}
