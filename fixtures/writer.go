package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
)

// Writer stores a Bundle under the same names a Loader with the same config reads.
type Writer struct {
	dir   string
	names Names
}

func NewWriter(cfg config.FixtureConfig) (*Writer, error) {
	names, err := RenderNames(cfg)
	if err != nil {
		return nil, err
	}

	return &Writer{dir: cfg.Dir, names: names}, nil
}

func (w *Writer) Write(bundle *Bundle) error {
	err := os.MkdirAll(w.dir, 0o755)
	if err != nil {
		return fmt.Errorf("create fixture dir: %w", err)
	}

	files := []struct {
		name string
		data interface{}
	}{
		{w.names.ExecutionHeaders, bundle.ExecutionHeaders},
		{w.names.LightClientUpdates, bundle.LightClientUpdates},
		{w.names.CurrentSyncCommittee, bundle.CurrentSyncCommittee},
		{w.names.NextSyncCommittee, bundle.NextSyncCommittee},
	}
	for _, file := range files {
		path := filepath.Join(w.dir, file.name)
		err = writeJSONToFile(file.data, path)
		if err != nil {
			return err
		}

		log.WithField("location", path).Info("wrote fixture file")
	}

	return nil
}

func writeJSONToFile(data interface{}, path string) error {
	file, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	err = os.WriteFile(path, file, 0o644)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
