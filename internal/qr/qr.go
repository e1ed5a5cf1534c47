package qr

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// Generator renders entry IDs as PNG files under Dir. The QR encodes only
// the uid itself.
type Generator struct {
	Dir string
}

func NewGenerator(dir string) (*Generator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("qr: create dir %s: %w", dir, err)
	}
	return &Generator{Dir: dir}, nil
}

// Generate writes the QR PNG for uid and returns its path.
func (g *Generator) Generate(uid string) (string, error) {
	path := filepath.Join(g.Dir, uid+".png")
	if err := qrcode.WriteFile(uid, qrcode.Medium, 256, path); err != nil {
		return "", fmt.Errorf("qr: write %s: %w", path, err)
	}
	return path, nil
}
