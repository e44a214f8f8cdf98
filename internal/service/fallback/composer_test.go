package fallback

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danendrashafi/ai-portfolio/backend/internal/analysis/category"
	"github.com/danendrashafi/ai-portfolio/backend/internal/model/profile"
)

// stubRand always picks the same index and returns a fixed float.
type stubRand struct {
	index int
	float float64
}

func (s stubRand) Intn(n int) int {
	if s.index >= n {
		return n - 1
	}
	return s.index
}

func (s stubRand) Float64() float64 { return s.float }

func newTestComposer(t *testing.T, r Rand) *Composer {
	t.Helper()
	c, err := NewComposer(profile.MustDefault(), WithRand(r))
	require.NoError(t, err)
	return c
}

func seeds(n int) []Rand {
	out := make([]Rand, n)
	for i := range out {
		out[i] = rand.New(rand.NewSource(int64(i)))
	}
	return out
}

// boundFields lists, per informational category, the profile values at least
// one of which must appear verbatim in every answer.
func boundFields(p *profile.Profile) map[category.Category][]string {
	concat := func(lists ...[]string) []string {
		var out []string
		for _, l := range lists {
			out = append(out, l...)
		}
		return out
	}
	name := []string{p.Name}
	return map[category.Category][]string{
		category.Collaboration:  p.Projects,
		category.Skills:         p.Skills,
		category.Projects:       p.Projects,
		category.Hobbies:        p.Hobbies,
		category.DataScience:    concat(p.Skills, p.Projects),
		category.Education:      {p.Education},
		category.Achievements:   p.Achievements,
		category.Personality:    {p.Character},
		category.Strengths:      {p.Character},
		category.FuturePlans:    {p.FuturePlans},
		category.Experience:     {p.Experience},
		category.Work:           {p.Occupation},
		category.Location:       {p.Location},
		category.Tools:          p.Tools,
		category.WebDevelopment: p.Skills,
		category.Music:          p.Songs,
		category.Books:          p.Books,
		category.Movies:         p.Movies,
		category.Food:           p.Foods,
		category.Quotes:         concat(p.FavoriteQuotes, []string{p.LifeMotto}),
		category.Advice:         p.Skills,
		category.FunFact:        concat(p.Hobbies, p.Achievements),
		category.Identity:       name,
		category.Gratitude:      name,
		category.Greeting:       name,
		category.General:        name,
	}
}

func containsAny(text string, values []string) bool {
	lower := strings.ToLower(text)
	for _, v := range values {
		if strings.Contains(lower, strings.ToLower(trimStop(v))) {
			return true
		}
	}
	return false
}

func TestEveryCategoryHasTemplates(t *testing.T) {
	for _, c := range category.All() {
		if c.Sensitive() {
			continue
		}
		set, ok := informational[c]
		require.True(t, ok, "no templates for %s", c)
		assert.GreaterOrEqual(t, len(set), 2, c)
		assert.LessOrEqual(t, len(set), 4, c)
	}
	for c, set := range deflections {
		assert.True(t, c.Sensitive(), c)
		assert.GreaterOrEqual(t, len(set), 2, c)
	}
}

func TestInformationalAnswersContainBoundField(t *testing.T) {
	p := profile.MustDefault()
	bound := boundFields(p)
	require.Len(t, bound, len(informational))

	for cat, values := range bound {
		for i, r := range seeds(150) {
			c := newTestComposer(t, r)
			text, err := c.Compose("", cat)
			require.NoError(t, err)
			assert.True(t, containsAny(text, values), "%s seed %d: %q", cat, i, text)
			assert.Equal(t, text, Normalize(text))
		}
	}
}

func TestSensitiveAnswersDeflect(t *testing.T) {
	p := profile.MustDefault()
	pivots := append(append([]string(nil), p.Projects...), p.Skills...)

	for _, cat := range category.All() {
		if !cat.Sensitive() {
			continue
		}
		keywords := category.KeywordsFor(cat)
		for i, r := range seeds(150) {
			c := newTestComposer(t, r)
			text, err := c.Compose("", cat)
			require.NoError(t, err)

			lower := strings.ToLower(text)
			for _, kw := range keywords {
				assert.NotContains(t, lower, kw, "%s seed %d: %q", cat, i, text)
			}
			assert.True(t, containsAny(text, pivots), "%s seed %d has no pivot: %q", cat, i, text)
		}
	}
}

func TestRespondHobbies(t *testing.T) {
	p := profile.MustDefault()
	for _, r := range seeds(50) {
		answer, err := newTestComposer(t, r).Respond("Apa hobimu?")
		require.NoError(t, err)

		assert.Equal(t, category.Hobbies, answer.Category)
		assert.True(t, containsAny(answer.Text, p.Hobbies), answer.Text)
		assert.NotContains(t, answer.Text, "  ")
	}
}

func TestRespondRelationshipPivotsToProject(t *testing.T) {
	p := profile.MustDefault()
	for _, r := range seeds(50) {
		answer, err := newTestComposer(t, r).Respond("Siapa pacarmu?")
		require.NoError(t, err)

		assert.Equal(t, category.PersonalRelationship, answer.Category)
		assert.NotContains(t, strings.ToLower(answer.Text), "pacar")
		assert.True(t, containsAny(answer.Text, p.Projects), answer.Text)
	}
}

func TestComposeDeterministicWithStubRand(t *testing.T) {
	c := newTestComposer(t, stubRand{index: 0, float: 0.9})
	text, err := c.Compose("Kuliah di mana?", category.Education)
	require.NoError(t, err)
	assert.Equal(t,
		"Hai! Sebagai asisten Danendra Shafi Athallah, Danendra Shafi Athallah adalah lulusan Institut Teknologi Bandung, Teknik Informatika. Pendidikan formalnya memberi dasar kuat untuk karir di bidang teknologi.",
		text)

	c = newTestComposer(t, stubRand{index: 0, float: 0.1})
	text, err = c.Compose("Kuliah di mana?", category.Education)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(text, "teknologi. Semoga info ini membantu!"), text)
}

func TestComposeSameSeedSameAnswer(t *testing.T) {
	a := newTestComposer(t, NewSeeded(42))
	b := newTestComposer(t, NewSeeded(42))
	for _, q := range []string{"Apa hobimu?", "Proyek apa saja?", "Siapa pacarmu?", "zzz"} {
		x, err := a.Respond(q)
		require.NoError(t, err)
		y, err := b.Respond(q)
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestUnknownCategoryUsesGeneral(t *testing.T) {
	c := newTestComposer(t, stubRand{})
	text, err := c.Compose("", category.Category("unknown"))
	require.NoError(t, err)
	assert.Contains(t, text, "Frontend Developer di TechCorp Indonesia")
}

func TestComposePanicBecomesInternalError(t *testing.T) {
	c := &Composer{profile: &profile.Profile{Name: "X"}, rand: stubRand{}}
	_, err := c.Compose("proyek", category.Projects)

	var internal *InternalError
	require.True(t, errors.As(err, &internal))
	assert.Equal(t, category.Projects, internal.Category)
}

func TestNewComposerRejectsBadProfile(t *testing.T) {
	_, err := NewComposer(nil)
	assert.ErrorIs(t, err, ErrNilProfile)

	_, err = NewComposer(&profile.Profile{})
	assert.ErrorIs(t, err, profile.ErrInvalidProfile)
}

func TestRespondConcurrently(t *testing.T) {
	c := newTestComposer(t, NewSeeded(1))
	questions := []string{"Apa hobimu?", "Siapa pacarmu?", "Keahlian?", "Halo", "Gaji?"}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			answer, err := c.Respond(q)
			assert.NoError(t, err)
			assert.NotEmpty(t, answer.Text)
		}(questions[i%len(questions)])
	}
	wg.Wait()
}
