package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"raycaster/internal/mathutil"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame   int     `json:"frame"`
	Angle   float64 `json:"angle"`
	Degrees float64 `json:"degrees"`
	Hits    int     `json:"hits"`
	Image   string  `json:"image"`
}

// WriteManifest writes manifest.json listing the successfully rendered frames.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Frame:   r.Frame,
			Angle:   r.Angle,
			Degrees: mathutil.Rad2Deg(r.Angle),
			Hits:    r.Hits,
			Image:   filepath.Base(r.Path),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
