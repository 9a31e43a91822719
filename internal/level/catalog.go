package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed campaign/*.yaml
var campaignFS embed.FS

// ErrEmpty is returned when a source holds no level files.
var ErrEmpty = errors.New("level: no level files found")

// Catalog is an ordered set of levels keyed by number.
type Catalog struct {
	levels []Definition
}

// NewCatalog validates defs and orders them by number.
func NewCatalog(defs []Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, ErrEmpty
	}
	seen := make(map[int]string, len(defs))
	var errs []error
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if prev, ok := seen[d.Number]; ok {
			errs = append(errs, fmt.Errorf("level %q: number %d already used by %q", d.ID, d.Number, prev))
			continue
		}
		seen[d.Number] = d.ID
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	sorted := make([]Definition, len(defs))
	copy(sorted, defs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })
	return &Catalog{levels: sorted}, nil
}

// Levels returns the definitions in play order.
func (c *Catalog) Levels() []Definition {
	return c.levels
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// First returns the lowest level number.
func (c *Catalog) First() int {
	return c.levels[0].Number
}

// Max returns the highest level number.
func (c *Catalog) Max() int {
	return c.levels[len(c.levels)-1].Number
}

// Get returns the level with the given number.
func (c *Catalog) Get(number int) (Definition, bool) {
	for _, d := range c.levels {
		if d.Number == number {
			return d, true
		}
	}
	return Definition{}, false
}

// Next returns the first level numbered above number.
func (c *Catalog) Next(number int) (Definition, bool) {
	for _, d := range c.levels {
		if d.Number > number {
			return d, true
		}
	}
	return Definition{}, false
}

// Parse decodes a single YAML level document.
func Parse(data []byte) (Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if d.ID == "" {
		d.ID = fmt.Sprintf("level%d", d.Number)
	}
	return d, nil
}

// LoadEmbedded returns the built-in campaign.
func LoadEmbedded() (*Catalog, error) {
	defs, err := loadFS(campaignFS, "campaign")
	if err != nil {
		return nil, fmt.Errorf("level: embedded campaign: %w", err)
	}
	return NewCatalog(defs)
}

// MustEmbedded is LoadEmbedded for callers that cannot recover from a
// broken build.
func MustEmbedded() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadDir loads every .yaml/.yml file directly inside dir.
func LoadDir(dir string) (*Catalog, error) {
	defs, err := loadFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", dir, err)
	}
	for i := range defs {
		defs[i].FilePath = filepath.Join(dir, defs[i].FilePath)
	}
	return NewCatalog(defs)
}

func loadFS(fsys fs.FS, root string) ([]Definition, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, err
	}

	var defs []Definition
	for _, e := range entries {
		if e.IsDir() || !IsLevelFile(e.Name()) {
			continue
		}
		p := e.Name()
		if root != "." {
			p = root + "/" + e.Name()
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, err
		}
		d, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		d.FilePath = e.Name()
		defs = append(defs, d)
	}
	if len(defs) == 0 {
		return nil, ErrEmpty
	}
	return defs, nil
}

// IsLevelFile reports whether path has a level file extension.
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
