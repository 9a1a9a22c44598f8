// Package fixture implementa una fuente de snapshot respaldada por archivos:
// un YAML con materiales y BOM, o un directorio con materials.csv y bom.csv.
// La versión del snapshot es el hash SHA-256 del contenido, así que cambia
// exactamente cuando cambian los archivos.
package fixture

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/stock-health-api/internal/application/analytics"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/domain/repository"
)

// Nombres de archivo dentro de un directorio CSV.
const (
	MaterialsFile = "materials.csv"
	BOMFile       = "bom.csv"
)

var (
	_ repository.SnapshotRepository = (*FileSource)(nil)
	_ analytics.VersionReader       = (*FileSource)(nil)
)

// FileSource lee el snapshot del disco en cada llamada; no guarda estado.
type FileSource struct {
	path     string
	encoding string
}

// NewFileSource path es un .yaml/.yml o un directorio con los CSV. encoding aplica a los CSV.
func NewFileSource(path, encoding string) *FileSource {
	return &FileSource{path: path, encoding: encoding}
}

// Current carga y decodifica el snapshot.
func (s *FileSource) Current(ctx context.Context) (*entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := s.read()
	if err != nil {
		return nil, err
	}

	snap := &entity.Snapshot{Version: files.version(), TakenAt: files.modTime}
	if files.yaml != nil {
		declared, materials, bom, err := DecodeYAML(files.yaml)
		if err != nil {
			return nil, fmt.Errorf("fixture %s: %w", s.path, err)
		}
		if declared != "" {
			snap.Version = declared + "-" + snap.Version
		}
		snap.Materials, snap.BOM = materials, bom
		return snap, nil
	}

	snap.Materials, err = DecodeMaterialsCSV(bytes.NewReader(files.materials), s.encoding)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", s.path, err)
	}
	snap.BOM, err = DecodeBOMCSV(bytes.NewReader(files.bom), s.encoding)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", s.path, err)
	}
	return snap, nil
}

// Version hash del contenido actual, sin decodificarlo.
func (s *FileSource) Version(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	files, err := s.read()
	if err != nil {
		return "", err
	}
	v := files.version()
	if files.yaml != nil {
		if declared, _, _, err := DecodeYAML(files.yaml); err == nil && declared != "" {
			v = declared + "-" + v
		}
	}
	return v, nil
}

type rawFiles struct {
	yaml      []byte
	materials []byte
	bom       []byte
	modTime   time.Time
}

func (f rawFiles) version() string {
	h := sha256.New()
	if f.yaml != nil {
		h.Write(f.yaml)
	} else {
		h.Write(f.materials)
		h.Write([]byte{0})
		h.Write(f.bom)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (s *FileSource) read() (rawFiles, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return rawFiles{}, fmt.Errorf("fixture: %w", err)
	}
	if !info.IsDir() {
		ext := strings.ToLower(filepath.Ext(s.path))
		if ext != ".yaml" && ext != ".yml" {
			return rawFiles{}, fmt.Errorf("fixture: %s no es .yaml/.yml ni un directorio", s.path)
		}
		data, err := os.ReadFile(s.path)
		if err != nil {
			return rawFiles{}, fmt.Errorf("fixture: %w", err)
		}
		return rawFiles{yaml: data, modTime: info.ModTime()}, nil
	}

	var out rawFiles
	for _, f := range []struct {
		name string
		dst  *[]byte
	}{
		{MaterialsFile, &out.materials},
		{BOMFile, &out.bom},
	} {
		p := filepath.Join(s.path, f.name)
		fi, err := os.Stat(p)
		if err != nil {
			return rawFiles{}, fmt.Errorf("fixture: %w", err)
		}
		if fi.ModTime().After(out.modTime) {
			out.modTime = fi.ModTime()
		}
		if *f.dst, err = os.ReadFile(p); err != nil {
			return rawFiles{}, fmt.Errorf("fixture: %w", err)
		}
	}
	return out, nil
}
