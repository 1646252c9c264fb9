package project

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestKindForPath(t *testing.T) {
	tests := []struct {
		path string
		kind AssetKind
	}{
		{"demo.png", AssetImage},
		{"shot.JPG", AssetImage},
		{"clip.webp", AssetImage},
		{"promo.mp4", AssetVideo},
		{"capture.MOV", AssetVideo},
		{"preset.wav", AssetAudio},
		{"track.flac", AssetAudio},
		{"euclyd.adsp", AssetDescriptor},
		{"notes.txt", AssetOther},
		{"no-extension", AssetOther},
	}

	for _, tt := range tests {
		if got := KindForPath(tt.path); got != tt.kind {
			t.Errorf("KindForPath(%s): expected %s, got %s", tt.path, tt.kind, got)
		}
	}
}

func TestProbeAssetImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.png")
	img := image.NewRGBA(image.Rect(0, 0, 120, 80))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	a, err := ProbeAsset(path)
	if err != nil {
		t.Fatalf("ProbeAsset failed: %v", err)
	}

	if a.Kind != AssetImage {
		t.Errorf("Expected image kind, got %s", a.Kind)
	}
	if a.Width != 120 || a.Height != 80 {
		t.Errorf("Expected 120x80, got %dx%d", a.Width, a.Height)
	}
	if a.ID == "" {
		t.Error("Expected a generated asset ID")
	}
	if a.Name != "cover.png" {
		t.Errorf("Expected name cover.png, got %s", a.Name)
	}
	if a.SizeBytes != int64(buf.Len()) {
		t.Errorf("Expected size %d, got %d", buf.Len(), a.SizeBytes)
	}
	if a.Missing() {
		t.Error("Freshly probed asset should not be missing")
	}
}

func TestProbeAssetUndecodableImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := ProbeAsset(path)
	if err != nil {
		t.Fatalf("ProbeAsset should tolerate undecodable images: %v", err)
	}
	if a.Width != 0 || a.Height != 0 {
		t.Errorf("Expected no dimensions, got %dx%d", a.Width, a.Height)
	}
}

func TestProbeAssetErrors(t *testing.T) {
	if _, err := ProbeAsset("/nonexistent/file.png"); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := ProbeAsset(t.TempDir()); err == nil {
		t.Error("Expected error for directory")
	}
}

func TestAssetMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("fake video"), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := ProbeAsset(path)
	if err != nil {
		t.Fatalf("ProbeAsset failed: %v", err)
	}

	os.Remove(path)
	if !a.Missing() {
		t.Error("Asset should report missing after the file is deleted")
	}
}

func TestCopyIntoDirSuffixesConflicts(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()

	src := filepath.Join(srcDir, "promo.mp4")
	if err := os.WriteFile(src, []byte("first"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := CopyIntoDir(src, destDir)
	if err != nil {
		t.Fatalf("CopyIntoDir failed: %v", err)
	}
	if filepath.Base(first) != "promo.mp4" {
		t.Errorf("Expected unchanged name, got %s", filepath.Base(first))
	}

	if err := os.WriteFile(src, []byte("second"), 0644); err != nil {
		t.Fatal(err)
	}
	second, err := CopyIntoDir(src, destDir)
	if err != nil {
		t.Fatalf("Second CopyIntoDir failed: %v", err)
	}
	if filepath.Base(second) != "promo_1.mp4" {
		t.Errorf("Expected suffixed name, got %s", filepath.Base(second))
	}

	data, err := os.ReadFile(second)
	if err != nil || string(data) != "second" {
		t.Errorf("Copy content drifted: %q, %v", data, err)
	}

	if _, err := CopyIntoDir(filepath.Join(srcDir, "missing.mp4"), destDir); err == nil {
		t.Error("Expected error for missing source")
	}
}

func TestImportAssetCopiesIntoProject(t *testing.T) {
	srcDir := t.TempDir()
	assetsDir := filepath.Join(t.TempDir(), "assets")

	src := filepath.Join(srcDir, "demo.wav")
	if err := os.WriteFile(src, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	p := New("Import Test")
	a, err := p.ImportAsset(src, assetsDir)
	if err != nil {
		t.Fatalf("ImportAsset failed: %v", err)
	}

	if filepath.Dir(a.Path) != assetsDir {
		t.Errorf("Asset should live in the assets dir, got %s", a.Path)
	}
	if a.Kind != AssetAudio {
		t.Errorf("Expected audio kind, got %s", a.Kind)
	}

	// The registered copy survives deleting the source.
	os.Remove(src)
	if a.Missing() {
		t.Error("Imported copy should not depend on the source file")
	}
}
