// Package testsupport provides fixture helpers shared by the package tests.
package testsupport

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formview/pkg/message"
)

// LoadMessages reads a YAML fixture file into a message tree. Fixture helpers
// fail the test on error to keep call sites concise.
func LoadMessages(t *testing.T, path string) message.Tree {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load messages fixture: %v", err)
	}
	return ParseMessages(t, string(data))
}

// ParseMessages decodes inline YAML into a message tree.
func ParseMessages(t *testing.T, raw string) message.Tree {
	t.Helper()

	var tree message.Tree
	if err := yaml.Unmarshal([]byte(raw), &tree); err != nil {
		t.Fatalf("parse messages fixture: %v", err)
	}
	return tree
}
