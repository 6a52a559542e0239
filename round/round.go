package round

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Hiviexd/loved-cli/banner"
)

// Beatmapset is one nominated entry in a voting round.
type Beatmapset struct {
	ID            int    `yaml:"id"`
	Title         string `yaml:"title"`
	Background    string `yaml:"background,omitempty"`
	TitleOverride string `yaml:"title_override,omitempty"`
}

// DisplayTitle returns the title the banner carries: the override when one
// is set, the plain title otherwise.
func (b Beatmapset) DisplayTitle() string {
	if b.TitleOverride != "" {
		return b.TitleOverride
	}
	return b.Title
}

// Round is one voting cycle's worth of banner work.
type Round struct {
	Name        string       `yaml:"name"`
	NewsDir     string       `yaml:"news_dir"`
	Beatmapsets []Beatmapset `yaml:"beatmapsets"`

	dir string
}

// Load reads and validates a round file. Relative paths inside the round
// (backgrounds, news_dir) resolve against the round file's directory.
func Load(path string) (*Round, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read round file: %w", err)
	}

	var r Round
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse round file: %w", err)
	}
	r.dir = filepath.Dir(path)

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

func (r *Round) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("round has no name")
	}
	if r.NewsDir == "" {
		return fmt.Errorf("round %q has no news_dir", r.Name)
	}
	if len(r.Beatmapsets) == 0 {
		return fmt.Errorf("round %q has no beatmapsets", r.Name)
	}

	seen := make(map[int]bool)
	for i, b := range r.Beatmapsets {
		if b.ID <= 0 {
			return fmt.Errorf("beatmapset #%d has invalid id %d", i+1, b.ID)
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate beatmapset id %d", b.ID)
		}
		seen[b.ID] = true
		if b.DisplayTitle() == "" {
			return fmt.Errorf("beatmapset %d has no title", b.ID)
		}
	}

	return nil
}

// BackgroundPath resolves b's background relative to the round file. Empty
// means the engine's default asset.
func (r *Round) BackgroundPath(b Beatmapset) string {
	if b.Background == "" {
		return ""
	}
	if filepath.IsAbs(b.Background) {
		return b.Background
	}
	return filepath.Join(r.dir, b.Background)
}

// BannerStem returns the output stem for b inside the round's news tree.
func (r *Round) BannerStem(b Beatmapset) string {
	newsDir := r.NewsDir
	if !filepath.IsAbs(newsDir) {
		newsDir = filepath.Join(r.dir, newsDir)
	}
	return filepath.Join(newsDir, "banners", strconv.Itoa(b.ID))
}

// Request maps b to a banner request.
func (r *Round) Request(b Beatmapset) banner.Request {
	return banner.Request{
		BackgroundPath: r.BackgroundPath(b),
		OutputStem:     r.BannerStem(b),
		Title:          b.DisplayTitle(),
	}
}
