package registry

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/pulseboard/internal/model"
)

// catalogFile is the on-disk shape of a supplemental vertical catalog.
type catalogFile struct {
	Verticals []model.VerticalModule `yaml:"verticals"`
}

// LoadCatalog reads a YAML catalog of verticals. Metrics without an
// explicit polarity default to higher-is-better; polarity is never
// guessed from a metric's name.
func LoadCatalog(path string) ([]model.VerticalModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: read catalog")
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, eris.Wrap(err, "registry: parse catalog")
	}

	for vi := range file.Verticals {
		v := &file.Verticals[vi]
		if v.ID == "" {
			return nil, eris.Errorf("registry: catalog vertical %d missing id", vi)
		}
		for mi := range v.Metrics {
			m := &v.Metrics[mi]
			if m.Polarity == "" {
				m.Polarity = model.HigherIsBetter
				continue
			}
			if !m.Polarity.Valid() {
				return nil, eris.Errorf("registry: metric %s/%s has unknown polarity %q",
					v.ID, m.ID, m.Polarity)
			}
		}
	}

	zap.L().Info("registry: loaded catalog",
		zap.String("path", path),
		zap.Int("verticals", len(file.Verticals)),
	)
	return file.Verticals, nil
}

// Open builds the process-wide registry: built-in verticals, with an
// optional YAML catalog merged over them (matching ids replace the
// built-in definition). An empty path loads built-ins only.
func Open(catalogPath string) (*Registry, error) {
	verticals := BuiltIn()
	if catalogPath != "" {
		extra, err := LoadCatalog(catalogPath)
		if err != nil {
			return nil, err
		}
		verticals = append(verticals, extra...)
	}
	return New(verticals...), nil
}
