// Package fonts enumerates the font families installed on the host and
// validates font selections.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/sfnt"
)

const (
	MinSize       = 8
	MaxSize       = 30
	DefaultFamily = "TimesNewRoman"
	DefaultSize   = 14
)

var (
	ErrUnknownFamily  = errors.New("unknown font family")
	ErrSizeOutOfRange = fmt.Errorf("font size must be between %d and %d", MinSize, MaxSize)
)

// Font is a family and point size pair.
type Font struct {
	Family string
	Size   int
}

// String formats the font as "Family Size".
func (f Font) String() string {
	return fmt.Sprintf("%s %d", f.Family, f.Size)
}

// Default returns the startup font.
func Default() Font {
	return Font{Family: DefaultFamily, Size: DefaultSize}
}

// Provider lists font family names. Duplicates and ordering are handled by Catalog.
type Provider interface {
	Families() ([]string, error)
}

// StaticProvider serves a fixed list, used when the host can not be queried.
type StaticProvider []string

// Families returns the fixed list.
func (p StaticProvider) Families() ([]string, error) {
	return []string(p), nil
}

// SystemProvider reads family names from the font files installed on the host.
type SystemProvider struct{}

// Families walks the platform font directories. Files whose name table can
// not be read contribute their base file name instead.
func (SystemProvider) Families() ([]string, error) {
	paths := findfont.List()
	if len(paths) == 0 {
		return nil, errors.New("no font files found on host")
	}
	families := make([]string, 0, len(paths))
	var buf sfnt.Buffer
	for _, path := range paths {
		if name, err := familyName(path, &buf); err == nil && name != "" {
			families = append(families, name)
			continue
		}
		families = append(families, fileFamily(path))
	}
	return families, nil
}

func familyName(path string, buf *sfnt.Buffer) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return "", err
	}
	return f.Name(buf, sfnt.NameIDFamily)
}

// fileFamily turns "/usr/share/fonts/DejaVuSans-Bold.ttf" into "DejaVuSans".
func fileFamily(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if i := strings.IndexAny(base, "-_"); i > 0 {
		base = base[:i]
	}
	return base
}

// Catalog is the sorted, de-duplicated family list offered by the font selector.
type Catalog struct {
	families []string
	known    map[string]struct{}
}

// NewCatalog queries p once. The default family is always present so the
// startup font is selectable even on hosts without it.
func NewCatalog(p Provider) (*Catalog, error) {
	names, err := p.Families()
	names = append(names, DefaultFamily)

	known := make(map[string]struct{}, len(names))
	families := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := known[name]; dup {
			continue
		}
		known[name] = struct{}{}
		families = append(families, name)
	}
	sort.Strings(families)

	c := &Catalog{families: families, known: known}
	if err != nil {
		return c, fmt.Errorf("listing host fonts: %w", err)
	}
	return c, nil
}

// Families returns a copy of the sorted family names.
func (c *Catalog) Families() []string {
	out := make([]string, len(c.families))
	copy(out, c.families)
	return out
}

// Has reports whether family is selectable.
func (c *Catalog) Has(family string) bool {
	_, ok := c.known[family]
	return ok
}

// Validate checks a font against the catalog and the size range.
func (c *Catalog) Validate(f Font) error {
	if !c.Has(f.Family) {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, f.Family)
	}
	return ValidateSize(f.Size)
}

// ValidateSize checks that size lies within MinSize..MaxSize.
func ValidateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: %d", ErrSizeOutOfRange, size)
	}
	return nil
}

// Sizes lists the selectable point sizes, MinSize through MaxSize.
func Sizes() []int {
	sizes := make([]int, 0, MaxSize-MinSize+1)
	for s := MinSize; s <= MaxSize; s++ {
		sizes = append(sizes, s)
	}
	return sizes
}
