package main

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/mandelzoom/internal/config"
	"github.com/san-kum/mandelzoom/internal/storage"
)

func TestResolveConfigSavesResolvedSettings(t *testing.T) {
	cmd := &cobra.Command{}
	addViewportFlags(cmd)

	preset = "seahorse"
	saveConfig = filepath.Join(t.TempDir(), "seahorse.yaml")
	defer func() {
		preset = ""
		saveConfig = ""
	}()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.XCenter != -0.75 || cfg.MaxIter != 1000 {
		t.Errorf("expected seahorse settings, got %+v", cfg)
	}

	loaded, err := config.Load(saveConfig)
	if err != nil {
		t.Fatalf("saved config did not load back: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("saved config differs from resolved: %+v vs %+v", loaded, cfg)
	}
}

func TestListSessionsCommand(t *testing.T) {
	oldData := dataDir
	dataDir = t.TempDir()
	defer func() { dataDir = oldData }()

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	sess, err := st.OpenSession("alpha")
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	if _, err := sess.SaveFrame(img, storage.FrameMeta{Scale: 1.5, MaxIter: 300}); err != nil {
		t.Fatal(err)
	}

	if err := listSessions(nil, nil); err != nil {
		t.Fatalf("listing sessions failed: %v", err)
	}
}

func TestListSessionsCommandEmptyStore(t *testing.T) {
	oldData := dataDir
	dataDir = filepath.Join(t.TempDir(), "never-created")
	defer func() { dataDir = oldData }()

	if err := listSessions(nil, nil); err != nil {
		t.Fatalf("expected empty listing to succeed, got %v", err)
	}
}
