// Package browsers locates installed Chromium-family browsers by probing
// their per-vendor config directories for profile directories that contain
// a Bookmarks file.
package browsers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/booksy/internal/models"
)

// vendor maps a browser type to the config directory it keeps profiles in,
// relative to the user config dir.
type vendor struct {
	typ  models.BrowserType
	name string
	dir  string
}

var vendors = []vendor{
	{models.BrowserChrome, "Google Chrome", "google-chrome"},
	{models.BrowserChromium, "Chromium", "chromium"},
	{models.BrowserBrave, "Brave", filepath.Join("BraveSoftware", "Brave-Browser")},
	{models.BrowserEdge, "Microsoft Edge", "microsoft-edge"},
	{models.BrowserVivaldi, "Vivaldi", "vivaldi"},
	{models.BrowserOpera, "Opera", "opera"},
}

// Detection is one discovered browser profile.
type Detection struct {
	Type          models.BrowserType
	BrowserName   string
	ProfileName   string
	BookmarksPath string
}

// Detector scans a config root for browser profiles.
type Detector struct {
	root string
}

// NewDetector probes under root. An empty root means the user config dir.
func NewDetector(root string) (*Detector, error) {
	if root == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		root = dir
	}
	return &Detector{root: root}, nil
}

// Detect returns every profile of every known vendor that has a Bookmarks
// file. Vendors that are not installed are skipped silently; the result
// keeps the vendor order of the probe table.
func (d *Detector) Detect(ctx context.Context) ([]Detection, error) {
	var found []Detection
	for _, v := range vendors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries, err := os.ReadDir(filepath.Join(d.root, v.dir))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("probe %s: %w", v.name, err)
		}

		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			path := filepath.Join(d.root, v.dir, e.Name(), "Bookmarks")
			if _, err := os.Stat(path); err != nil {
				continue
			}
			found = append(found, Detection{
				Type:          v.typ,
				BrowserName:   v.name,
				ProfileName:   e.Name(),
				BookmarksPath: path,
			})
		}
	}
	return found, nil
}

// Connect turns a detection into a sidebar Browser entry.
func Connect(d Detection) *models.Browser {
	b := models.NewBrowser(d.BrowserName, d.Type, d.ProfileName)
	b.IsConnected = true
	return b
}
