// Package driver loads brio.yml run manifests.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file the CLI discovers in the working directory.
const ManifestName = "brio.yml"

// Manifest represents the parsed contents of brio.yml: which program to
// run and how to feed it.
type Manifest struct {
	Path string
	// Entry is the program source file, relative to the manifest.
	Entry string
	// Trace enables statement trace logging.
	Trace bool
	// Input holds tokens handed to inputi in order, instead of stdin.
	Input []string
	// ExpectOutput, when present, lists the exact output lines the run
	// must produce (used by suites, ignored by plain runs).
	ExpectOutput []string
}

type manifestYAML struct {
	Entry        string   `yaml:"entry"`
	Trace        bool     `yaml:"trace"`
	Input        []string `yaml:"input"`
	ExpectOutput []string `yaml:"expect_output"`
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses brio.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	var raw manifestYAML
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	m := &Manifest{
		Path:         absPath,
		Entry:        raw.Entry,
		Trace:        raw.Trace,
		Input:        raw.Input,
		ExpectOutput: raw.ExpectOutput,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) validate() error {
	var issues []string
	if m.Entry == "" {
		issues = append(issues, "entry is required")
	}
	for i, token := range m.Input {
		if _, err := strconv.ParseInt(token, 10, 64); err != nil {
			issues = append(issues, fmt.Sprintf("input[%d]: %q is not an integer", i, token))
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// EntryPath resolves the entry file relative to the manifest location.
func (m *Manifest) EntryPath() string {
	if filepath.IsAbs(m.Entry) {
		return m.Entry
	}
	return filepath.Join(filepath.Dir(m.Path), m.Entry)
}

// InputFeed renders the input tokens as a whitespace-separated stream for
// the interpreter's token scanner.
func (m *Manifest) InputFeed() string {
	return strings.Join(m.Input, " ")
}

// FindManifest walks from dir toward the filesystem root looking for
// brio.yml.
func FindManifest(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("manifest: resolve %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(current, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", os.ErrNotExist
		}
		current = parent
	}
}
