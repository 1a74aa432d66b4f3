package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type codec struct {
	ext       string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

var (
	jsonCodec = codec{
		ext: ".json",
		marshal: func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		},
		unmarshal: json.Unmarshal,
	}
	yamlCodec = codec{
		ext:       ".yaml",
		marshal:   yaml.Marshal,
		unmarshal: yaml.Unmarshal,
	}
)

// filePersister writes one file per snapshot, named <id><ext>, under dir.
type filePersister struct {
	dir   string
	codec codec
}

// NewJSONPersister returns a Persister writing indented JSON files to dir,
// creating dir if needed.
func NewJSONPersister(dir string) (Persister, error) {
	return newFilePersister(dir, jsonCodec)
}

// NewYAMLPersister returns a Persister writing YAML files to dir, creating
// dir if needed.
func NewYAMLPersister(dir string) (Persister, error) {
	return newFilePersister(dir, yamlCodec)
}

func newFilePersister(dir string, c codec) (Persister, error) {
	if dir == "" {
		return nil, errors.New("snapshot directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &filePersister{dir: dir, codec: c}, nil
}

// path returns the file for id. IDs name a file directly inside dir, so
// empty IDs and IDs holding path elements are rejected.
func (p *filePersister) path(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSnapshotID, id)
	}
	return filepath.Join(p.dir, id+p.codec.ext), nil
}

func (p *filePersister) Save(_ context.Context, snap Snapshot) error {
	fn, err := p.path(snap.ID)
	if err != nil {
		return err
	}

	snap.Errors, err = snap.encodableErrors()
	if err != nil {
		return err
	}

	data, err := p.codec.marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (p *filePersister) Load(_ context.Context, id string) (Snapshot, error) {
	fn, err := p.path(id)
	if err != nil {
		return Snapshot{}, err
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
		}
		return Snapshot{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var snap Snapshot
	if err := p.codec.unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal %s: %w", fn, err)
	}
	snap.ID = id
	return snap, nil
}

func (p *filePersister) Delete(_ context.Context, id string) error {
	fn, err := p.path(id)
	if err != nil {
		return err
	}
	err = os.Remove(fn)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", id, err)
	}
	return nil
}

func (p *filePersister) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.dir, err)
	}

	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != p.codec.ext {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, p.codec.ext))
	}
	return ids, nil
}
