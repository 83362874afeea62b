package dex

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
)

// catalogFile is the on-disk layout of a YAML catalog
type catalogFile struct {
	Pokemon []*entities.Pokemon `yaml:"pokemon"`
}

// ParseCatalog decodes and validates YAML catalog content
func ParseCatalog(data []byte) ([]*entities.Pokemon, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}
	if len(file.Pokemon) == 0 {
		return nil, errors.InvalidArgument("catalog has no pokemon")
	}

	for i, p := range file.Pokemon {
		if p == nil {
			return nil, errors.InvalidArgumentf("catalog entry %d is empty", i)
		}
		if err := p.Validate(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid catalog entry").
				WithMeta("index", i).
				WithMeta("name", p.Name)
		}
	}
	return file.Pokemon, nil
}

// LoadCatalog reads a YAML catalog from path
func LoadCatalog(path string) ([]*entities.Pokemon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	entries, err := ParseCatalog(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}

	slog.Info("Catalog loaded", "path", path, "entries", len(entries))
	return entries, nil
}
