package store

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/libdesk/library-system/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	Path string `yaml:"path" envconfig:"STORE_PATH" default:"library.dat"`
}

// Store persists the whole library aggregate as one snapshot.
type Store interface {
	Load() model.Library
	Save(lib model.Library) error
}

type store struct {
	path string
	log  *zap.Logger
}

func New(cfg Config, log *zap.Logger) *store {
	return &store{
		path: cfg.Path,
		log:  log.Named("store"),
	}
}

// Load reads the snapshot file. Any failure (missing file, corrupt data,
// shape mismatch) yields an empty aggregate: the file is the only source
// of truth and a bad one means starting over.
func (s *store) Load() model.Library {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read snapshot", zap.String("path", s.path), zap.Error(err))
		}
		return model.Library{}
	}
	var lib model.Library
	if err := json.Unmarshal(data, &lib); err != nil {
		s.log.Warn("decode snapshot, starting empty", zap.String("path", s.path), zap.Error(err))
		return model.Library{}
	}
	return lib
}

// Save overwrites the snapshot in full, via a temp file and rename so a
// crash mid-write never leaves a truncated snapshot behind.
func (s *store) Save(lib model.Library) error {
	data, err := json.Marshal(lib)
	if err != nil {
		return err
	}
	tmp := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
