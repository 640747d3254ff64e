package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestFileSystemSaveLoad(t *testing.T) {
	fs := NewFileSystem(t.TempDir())
	ctx := context.Background()

	want := []byte(`{"ok":true}`)
	if err := fs.Save(ctx, "runs/abc/plan.json", want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := fs.Load(ctx, "runs/abc/plan.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("loaded %q, want %q", got, want)
	}
}

func TestFileSystemRejectsTraversal(t *testing.T) {
	fs := NewFileSystem(t.TempDir())
	ctx := context.Background()

	for _, path := range []string{"../escape.json", "runs/../../escape.json", "/etc/passwd"} {
		if err := fs.Save(ctx, path, []byte("x")); err == nil {
			t.Errorf("save %q: expected rejection", path)
		}
		if _, err := fs.Load(ctx, path); err == nil {
			t.Errorf("load %q: expected rejection", path)
		}
		if fs.Exists(ctx, path) {
			t.Errorf("exists %q: expected false", path)
		}
	}
}

func TestFileSystemListAndDelete(t *testing.T) {
	fs := NewFileSystem(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"runs/a/vrd.json", "runs/b/vrd.json"} {
		if err := fs.Save(ctx, name, []byte("{}")); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	matches, err := fs.List(ctx, "runs/*")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("list = %v, want 2 run dirs", matches)
	}

	if err := fs.Delete(ctx, "runs/a/vrd.json"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if fs.Exists(ctx, "runs/a/vrd.json") {
		t.Error("deleted file still exists")
	}
}

func TestRunPathNaming(t *testing.T) {
	at := time.Date(2026, 8, 30, 15, 12, 0, 0, time.UTC)

	got := RunPath("82f06b15-1111-2222-3333-444444444444", "Launch Video!", at)
	want := filepath.Join("runs", "2026-08-30_1512_launch-video_82f06b15")
	if got != want {
		t.Errorf("run path = %q, want %q", got, want)
	}

	got = RunPath("deadbeef", "", at)
	want = filepath.Join("runs", "2026-08-30_1512_deadbeef")
	if got != want {
		t.Errorf("unnamed run path = %q, want %q", got, want)
	}
}

func TestRunStoreRoundTrip(t *testing.T) {
	rs := NewRunStore(NewFileSystem(t.TempDir()))
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Beats int    `json:"beats"`
	}

	runPath := RunPath("abcd1234", "demo", time.Now())
	if err := rs.SaveArtifact(ctx, runPath, ArtifactScript, payload{Name: "demo", Beats: 8}); err != nil {
		t.Fatalf("save artifact: %v", err)
	}

	var got payload
	if err := rs.LoadArtifact(ctx, runPath, ArtifactScript, &got); err != nil {
		t.Fatalf("load artifact: %v", err)
	}
	if got.Name != "demo" || got.Beats != 8 {
		t.Errorf("round trip = %+v", got)
	}

	runs, err := rs.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("runs = %v, want one entry", runs)
	}
}
