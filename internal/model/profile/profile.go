package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_profile.yaml
var defaultProfileYAML []byte

// ErrInvalidProfile is returned when a profile fails validation.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile describes the person the assistant answers about.
// A Profile is built once at startup and shared read-only afterwards.
type Profile struct {
	Name        string `yaml:"name" json:"name"`
	Location    string `yaml:"location" json:"location"`
	Education   string `yaml:"education" json:"education"`
	Occupation  string `yaml:"occupation" json:"occupation"`
	Experience  string `yaml:"experience" json:"experience"`
	Character   string `yaml:"character" json:"character"`
	LifeMotto   string `yaml:"life_motto" json:"lifeMotto"`
	FuturePlans string `yaml:"future_plans" json:"futurePlans"`

	Skills         []string `yaml:"skills" json:"skills"`
	Hobbies        []string `yaml:"hobbies" json:"hobbies"`
	Projects       []string `yaml:"projects" json:"projects"`
	Achievements   []string `yaml:"achievements" json:"achievements"`
	FavoriteQuotes []string `yaml:"favorite_quotes" json:"favoriteQuotes"`
	Tools          []string `yaml:"tools" json:"tools"`
	Songs          []string `yaml:"songs" json:"songs"`
	Books          []string `yaml:"books" json:"books"`
	Movies         []string `yaml:"movies" json:"movies"`
	Foods          []string `yaml:"foods" json:"foods"`

	SkillDetails   map[string]string `yaml:"skill_details" json:"skillDetails"`
	HobbyDetails   map[string]string `yaml:"hobby_details" json:"hobbyDetails"`
	ProjectDetails map[string]string `yaml:"project_details" json:"projectDetails"`
	ToolDetails    map[string]string `yaml:"tool_details" json:"toolDetails"`
	SongDetails    map[string]string `yaml:"song_details" json:"songDetails"`
}

// Default returns the embedded profile.
func Default() (*Profile, error) {
	return Parse(defaultProfileYAML)
}

// MustDefault is Default for tests and package-level fixtures.
func MustDefault() *Profile {
	p, err := Default()
	if err != nil {
		panic(err)
	}
	return p
}

// Load reads and validates a profile file. An empty path selects the embedded profile.
func Load(path string) (*Profile, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML into a validated Profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that every field a response template can reach is present.
func (p *Profile) Validate() error {
	var problems []string

	scalars := []struct {
		name  string
		value string
	}{
		{"name", p.Name},
		{"location", p.Location},
		{"education", p.Education},
		{"occupation", p.Occupation},
		{"experience", p.Experience},
		{"character", p.Character},
		{"life_motto", p.LifeMotto},
		{"future_plans", p.FuturePlans},
	}
	for _, s := range scalars {
		if strings.TrimSpace(s.value) == "" {
			problems = append(problems, s.name+" is empty")
		}
	}

	lists := []struct {
		name  string
		items []string
	}{
		{"skills", p.Skills},
		{"hobbies", p.Hobbies},
		{"projects", p.Projects},
		{"achievements", p.Achievements},
		{"favorite_quotes", p.FavoriteQuotes},
		{"tools", p.Tools},
		{"songs", p.Songs},
		{"books", p.Books},
		{"movies", p.Movies},
		{"foods", p.Foods},
	}
	for _, l := range lists {
		if len(l.items) == 0 {
			problems = append(problems, l.name+" is empty")
			continue
		}
		for i, item := range l.items {
			if strings.TrimSpace(item) == "" {
				problems = append(problems, fmt.Sprintf("%s[%d] is empty", l.name, i))
			}
		}
	}

	details := []struct {
		name    string
		keys    []string
		details map[string]string
	}{
		{"skill_details", p.Skills, p.SkillDetails},
		{"hobby_details", p.Hobbies, p.HobbyDetails},
		{"project_details", p.Projects, p.ProjectDetails},
		{"tool_details", p.Tools, p.ToolDetails},
		{"song_details", p.Songs, p.SongDetails},
	}
	for _, d := range details {
		for _, key := range d.keys {
			if strings.TrimSpace(d.details[key]) == "" {
				problems = append(problems, fmt.Sprintf("%s missing %q", d.name, key))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, strings.Join(problems, "; "))
	}
	return nil
}

// Summary is the public view served to the frontend.
type Summary struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Occupation   string   `json:"occupation"`
	Education    string   `json:"education"`
	Skills       []string `json:"skills"`
	Projects     []string `json:"projects"`
	Achievements []string `json:"achievements"`
}

// Summary returns copies of the fields safe to expose.
func (p *Profile) Summary() Summary {
	return Summary{
		Name:         p.Name,
		Location:     p.Location,
		Occupation:   p.Occupation,
		Education:    p.Education,
		Skills:       append([]string(nil), p.Skills...),
		Projects:     append([]string(nil), p.Projects...),
		Achievements: append([]string(nil), p.Achievements...),
	}
}
