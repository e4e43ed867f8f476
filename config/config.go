package config

// config/config.go

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobuffalo/validate/v3"
	"github.com/gobuffalo/validate/v3/validators"
)

// Page is one navigation entry on the landing page. Shortcut is the
// single key that jumps to Href.
type Page struct {
	Title    string `yaml:"title" json:"title"`
	Href     string `yaml:"href" json:"href"`
	Shortcut string `yaml:"shortcut" json:"shortcut"`
}

// Config is the validated in-memory form of the input file. It is built
// once per run and read-only afterwards.
type Config struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Origin      string `yaml:"origin,omitempty" json:"origin,omitempty"`
	Pages       []Page `yaml:"pages" json:"pages"`
}

// ValidationError carries every constraint violation found in a config.
// Error() prints one message per line, sorted by field.
type ValidationError struct {
	Errors *validate.Errors
}

func (e *ValidationError) Error() string {
	keys := e.Errors.Keys()
	sort.Strings(keys)

	msgs := make([]string, 0, e.Errors.Count())
	for _, key := range keys {
		msgs = append(msgs, e.Errors.Get(key)...)
	}

	return strings.Join(msgs, "\n")
}

// pagesArePresent distinguishes a missing pages key (nil slice) from an
// explicitly empty list, which is valid.
type pagesArePresent struct {
	Name  string
	Field []Page
}

func (v pagesArePresent) IsValid(errors *validate.Errors) {
	if v.Field == nil {
		errors.Add(v.Name, fmt.Sprintf("%s can not be blank.", v.Name))
	}
}

// Validate checks the whole config and reports every violation at once
// rather than stopping at the first.
func (c *Config) Validate() error {
	vs := []validate.Validator{
		&validators.StringIsPresent{Name: "title", Field: c.Title},
		pagesArePresent{Name: "pages", Field: c.Pages},
	}

	for i, page := range c.Pages {
		name := fmt.Sprintf("pages[%d]", i)
		vs = append(vs,
			&validators.StringIsPresent{
				Name:    name + ".title",
				Field:   page.Title,
				Message: fmt.Sprintf("%s.title can not be blank.", name),
			},
			&validators.StringIsPresent{
				Name:    name + ".href",
				Field:   page.Href,
				Message: fmt.Sprintf("%s.href can not be blank.", name),
			},
			&validators.StringLengthInRange{
				Name:    name + ".shortcut",
				Field:   page.Shortcut,
				Min:     1,
				Max:     1,
				Message: fmt.Sprintf("%s.shortcut must be exactly one character.", name),
			},
		)
	}

	verrs := validate.Validate(vs...)
	if verrs.HasAny() {
		return &ValidationError{Errors: verrs}
	}

	return nil
}
