package fallback

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danendrashafi/ai-portfolio/backend/internal/analysis/category"
	"github.com/danendrashafi/ai-portfolio/backend/internal/model/profile"
)

var (
	ErrNilProfile  = errors.New("profile is required")
	errEmptyRender = errors.New("template rendered an empty response")
)

// InternalError reports a defect inside composition, such as a template
// reaching for a profile key that does not exist. It is the only error the
// fallback path returns.
type InternalError struct {
	Category category.Category
	Err      error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("compose %s: %v", e.Category, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// Answer is a fallback response together with the category that produced it.
type Answer struct {
	Category category.Category `json:"category"`
	Text     string            `json:"response"`
}

// Composer builds rule-based answers from a fixed profile.
type Composer struct {
	profile *profile.Profile
	rand    Rand
}

// Option configures a Composer.
type Option func(*Composer)

// WithRand injects the random source used for phrasing choices.
func WithRand(r Rand) Option {
	return func(c *Composer) {
		if r != nil {
			c.rand = r
		}
	}
}

// NewComposer validates p and returns a Composer bound to it.
func NewComposer(p *profile.Profile, opts ...Option) (*Composer, error) {
	if p == nil {
		return nil, ErrNilProfile
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	c := &Composer{profile: p, rand: globalRand{}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Respond classifies the question and composes the answer.
func (c *Composer) Respond(question string) (Answer, error) {
	cat := category.Classify(question)
	text, err := c.Compose(question, cat)
	if err != nil {
		return Answer{Category: cat}, err
	}
	return Answer{Category: cat, Text: text}, nil
}

// Compose renders a normalized answer for an already classified question.
func (c *Composer) Compose(question string, cat category.Category) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &InternalError{Category: cat, Err: fmt.Errorf("panic: %v", rec)}
		}
	}()

	opener := pick(c.rand, openers)(c.profile, c.rand)
	body := pick(c.rand, templatesFor(cat))(c.profile, c.rand)
	if strings.TrimSpace(body) == "" {
		return "", &InternalError{Category: cat, Err: errEmptyRender}
	}

	var closer string
	if c.rand.Float64() < closerProbability {
		closer = pick(c.rand, closers)
	}

	return Normalize(opener + body + closer), nil
}

func templatesFor(cat category.Category) []Template {
	if cat.Sensitive() {
		if set, ok := deflections[cat]; ok {
			return set
		}
		return genericDeflections
	}
	if set, ok := informational[cat]; ok {
		return set
	}
	return informational[category.General]
}
