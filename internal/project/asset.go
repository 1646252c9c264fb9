package project

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	// Image decoders for asset probing.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// AssetKind classifies a referenced media file
type AssetKind string

const (
	AssetImage      AssetKind = "image"
	AssetVideo      AssetKind = "video"
	AssetAudio      AssetKind = "audio"
	AssetDescriptor AssetKind = "descriptor"
	AssetOther      AssetKind = "other"
)

// Extension tables for asset classification
var (
	imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".webp"}
	videoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".webm"}
	audioExtensions = []string{".wav", ".mp3", ".aiff", ".flac", ".ogg"}
)

// Asset is a reference to a media file on disk. Projects store references,
// never file contents; a moved or deleted file shows up as missing.
type Asset struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Name      string    `json:"name"`
	Kind      AssetKind `json:"kind"`
	SizeBytes int64     `json:"size_bytes"`
	Width     int       `json:"width,omitempty"`
	Height    int       `json:"height,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// KindForPath classifies a file by its extension
func KindForPath(path string) AssetKind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case containsExt(imageExtensions, ext):
		return AssetImage
	case containsExt(videoExtensions, ext):
		return AssetVideo
	case containsExt(audioExtensions, ext):
		return AssetAudio
	case ext == ".adsp":
		return AssetDescriptor
	default:
		return AssetOther
	}
}

func containsExt(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}

// ProbeAsset builds an asset reference for a file: classification, size and,
// for images, pixel dimensions. A file that exists but cannot be decoded
// still probes successfully without dimensions.
func ProbeAsset(path string) (*Asset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to probe asset: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("asset is a directory: %s", path)
	}

	a := &Asset{
		ID:        newAssetID(),
		Path:      path,
		Name:      filepath.Base(path),
		Kind:      KindForPath(path),
		SizeBytes: info.Size(),
		AddedAt:   time.Now(),
	}

	if a.Kind == AssetImage {
		if w, h, err := imageDimensions(path); err == nil {
			a.Width, a.Height = w, h
		}
	}

	return a, nil
}

// CopyIntoDir copies a media file into dir, suffixing the file name with _1,
// _2 and so on when the name is already taken. Returns the destination path.
func CopyIntoDir(srcPath, dir string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open asset: %w", err)
	}
	defer src.Close()

	base := filepath.Base(srcPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	dest := filepath.Join(dir, base)
	for i := 1; ; i++ {
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			break
		}
		dest = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
	}

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create asset copy: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("failed to copy asset: %w", err)
	}
	return dest, nil
}

// Missing reports whether the referenced file no longer exists on disk
func (a *Asset) Missing() bool {
	_, err := os.Stat(a.Path)
	return err != nil
}

func imageDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// newAssetID generates a time-ordered unique identifier
func newAssetID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
