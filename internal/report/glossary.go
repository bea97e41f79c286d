package report

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed glossary.yaml
var glossaryYAML []byte

// Term is one glossary entry.
type Term struct {
	Term       string `yaml:"term" json:"term"`
	Definition string `yaml:"definition" json:"definition"`
}

var loadGlossary = sync.OnceValues(func() ([]Term, error) {
	var doc struct {
		Terms []Term `yaml:"terms"`
	}
	if err := yaml.Unmarshal(glossaryYAML, &doc); err != nil {
		return nil, fmt.Errorf("parsing glossary: %w", err)
	}
	return doc.Terms, nil
})

// Glossary returns the static definitions shown on the glossary page.
func Glossary() ([]Term, error) {
	return loadGlossary()
}
