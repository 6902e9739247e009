// Package catalog is the immutable sample data store: webhook sample events,
// lifecycle stages and quiz questions, embedded at build time.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"webhook-lab/internal/config"
)

//go:embed catalog.yaml
var catalogYAML []byte

//go:embed schema.cue
var schemaCUE []byte

// Header is one raw HTTP header line. Order within a SampleEvent is significant.
type Header struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// SampleEvent is a canned webhook delivery shown by the request inspector.
type SampleEvent struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Headers     []Header        `json:"headers"`
	Body        json.RawMessage `json:"body"`
}

// Stage is one step of the webhook lifecycle animation.
type Stage struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Detail      string `yaml:"detail"`
}

// QuizQuestion is a multiple-choice question with exactly one correct option.
type QuizQuestion struct {
	ID           int      `yaml:"id"`
	Prompt       string   `yaml:"prompt"`
	Options      []string `yaml:"options"`
	CorrectIndex int      `yaml:"correct_index"`
	Explanation  string   `yaml:"explanation"`
}

type rawEvent struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Headers     []Header `yaml:"headers"`
	Body        string   `yaml:"body"`
}

type rawCatalog struct {
	Events    []rawEvent     `yaml:"events"`
	Stages    []Stage        `yaml:"stages"`
	Questions []QuizQuestion `yaml:"questions"`
}

// Catalog groups the sample data.
type Catalog struct {
	events    []SampleEvent
	stages    []Stage
	questions []QuizQuestion
}

var (
	loadOnce sync.Once
	builtin  *Catalog
	loadErr  error
)

// Default returns the embedded catalog. It panics if the embedded data is
// invalid, which only a broken build can cause.
func Default() *Catalog {
	loadOnce.Do(func() {
		builtin, loadErr = Parse("catalog.yaml", catalogYAML)
	})
	if loadErr != nil {
		panic(loadErr)
	}
	return builtin
}

// Parse validates catalog YAML against the CUE schema and decodes it.
func Parse(name string, data []byte) (*Catalog, error) {
	if err := config.ValidateWithCue(name, data, schemaCUE, "#Catalog"); err != nil {
		return nil, err
	}
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", name, err)
	}
	c := &Catalog{stages: raw.Stages, questions: raw.Questions}
	seen := make(map[string]struct{}, len(raw.Events))
	for _, re := range raw.Events {
		if _, dup := seen[re.ID]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate event id %s", name, re.ID)
		}
		seen[re.ID] = struct{}{}
		body := bytes.TrimSpace([]byte(re.Body))
		if !json.Valid(body) {
			return nil, fmt.Errorf("catalog %s: event %s body is not valid JSON", name, re.ID)
		}
		c.events = append(c.events, SampleEvent{
			ID:          re.ID,
			Name:        re.Name,
			Description: re.Description,
			Headers:     re.Headers,
			Body:        json.RawMessage(body),
		})
	}
	return c, nil
}

// Events returns copies of the sample events in catalog order.
func (c *Catalog) Events() []SampleEvent {
	out := make([]SampleEvent, len(c.events))
	for i, e := range c.events {
		out[i] = e.clone()
	}
	return out
}

// Event looks up a sample event by id.
func (c *Catalog) Event(id string) (SampleEvent, bool) {
	for _, e := range c.events {
		if e.ID == id {
			return e.clone(), true
		}
	}
	return SampleEvent{}, false
}

// Stages returns the lifecycle stages in order.
func (c *Catalog) Stages() []Stage {
	return append([]Stage(nil), c.stages...)
}

// Questions returns copies of the quiz questions in order.
func (c *Catalog) Questions() []QuizQuestion {
	out := make([]QuizQuestion, len(c.questions))
	for i, q := range c.questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

func (e SampleEvent) clone() SampleEvent {
	e.Headers = append([]Header(nil), e.Headers...)
	e.Body = append(json.RawMessage(nil), e.Body...)
	return e
}

// IndentBody returns the body indented with two spaces, keeping key order.
func (e SampleEvent) IndentBody() (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, e.Body, "", "  "); err != nil {
		return "", fmt.Errorf("indent body of %s: %w", e.ID, err)
	}
	return buf.String(), nil
}
