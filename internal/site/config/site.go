package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSiteYAML []byte

// Site is the presentation configuration shared by every page.
type Site struct {
	Title        string `yaml:"title"`
	Tagline      string `yaml:"tagline"`
	Description  string `yaml:"description"`
	URL          string `yaml:"url"`
	Organization string `yaml:"organization"`
	Logo         string `yaml:"logo"`
	Hero         Hero   `yaml:"hero"`
	Footer       Footer `yaml:"footer"`
}

// Hero configures the banner above the feature cards.
type Hero struct {
	CTA Link `yaml:"cta"`
}

// Link is a labelled href.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Footer configures the page footer.
type Footer struct {
	Copyright string `yaml:"copyright"`
}

// DefaultSite returns the site configuration bundled with the binary.
func DefaultSite() Site {
	site, err := ParseSite(defaultSiteYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded site.yaml: %v", err))
	}
	return site
}

// LoadSite reads a site file. An empty path returns DefaultSite.
func LoadSite(path string) (Site, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultSite(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("config: read site file %s: %w", path, err)
	}
	return ParseSite(raw)
}

// ParseSite decodes and validates a site document.
func ParseSite(raw []byte) (Site, error) {
	var site Site
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return Site{}, fmt.Errorf("config: parse site: %w", err)
	}
	site.normalize()
	if err := site.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

func (s *Site) normalize() {
	s.Title = strings.TrimSpace(s.Title)
	s.Tagline = strings.TrimSpace(s.Tagline)
	s.Description = strings.TrimSpace(s.Description)
	s.URL = strings.TrimRight(strings.TrimSpace(s.URL), "/")
	s.Hero.CTA.Label = strings.TrimSpace(s.Hero.CTA.Label)
	s.Hero.CTA.Href = strings.TrimSpace(s.Hero.CTA.Href)
	if s.Description == "" {
		s.Description = s.Tagline
	}
	if s.Organization == "" {
		s.Organization = s.Title
	}
}

// Validate reports missing required fields.
func (s Site) Validate() error {
	var missing []string
	if s.Title == "" {
		missing = append(missing, "title")
	}
	if s.Hero.CTA.Href != "" && s.Hero.CTA.Label == "" {
		missing = append(missing, "hero.cta.label")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalid, strings.Join(missing, ", "))
	}
	return nil
}
