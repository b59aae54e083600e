package seed

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"upaya-be/models"
)

// File loads issues from a YAML document of the form:
//
//	issues:
//	  - id: "1"
//	    title: ...
type File struct {
	Path string
}

type fileDocument struct {
	Issues []models.IssueInput `yaml:"issues"`
}

func (f File) Name() string { return "file:" + f.Path }

func (f File) Load(context.Context) ([]models.Issue, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Decode(data)
}

// Decode parses a YAML seed document and validates every entry.
func Decode(data []byte) ([]models.Issue, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc fileDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return build(doc.Issues)
}
