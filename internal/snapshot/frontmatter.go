package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	errMissingFrontMatter   = errors.New("missing frontmatter")
	errMalformedFrontMatter = errors.New("malformed frontmatter")
)

type envelope struct {
	Yidao header `yaml:"yidao"`
}

type header struct {
	Key   string `yaml:"key"`
	ID    string `yaml:"id"`
	Saved string `yaml:"saved"`
	User  User   `yaml:"user"`
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

// encodeDocument renders the snapshot as YAML front matter followed by the
// report body.
func encodeDocument(s Snapshot) ([]byte, error) {
	env := envelope{Yidao: header{
		Key:   Key,
		ID:    s.ID,
		Saved: s.SavedAt.UTC().Format(timeLayout),
		User:  s.User,
	}}
	data, err := yaml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode frontmatter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(bytes.TrimRight(data, "\n"))
	buf.WriteString("\n---\n\n")
	buf.WriteString(s.Report)
	return buf.Bytes(), nil
}

// decodeDocument is the inverse of encodeDocument.
func decodeDocument(content []byte) (Snapshot, error) {
	normalized := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(normalized, []byte("---\n")) {
		return Snapshot{}, errMissingFrontMatter
	}
	parts := bytes.SplitN(normalized[4:], []byte("\n---\n"), 2)
	if len(parts) < 2 {
		return Snapshot{}, errMalformedFrontMatter
	}
	var env envelope
	if err := yaml.Unmarshal(parts[0], &env); err != nil {
		return Snapshot{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	if env.Yidao.Key != Key {
		return Snapshot{}, fmt.Errorf("key %q does not match %s", env.Yidao.Key, Key)
	}
	saved, err := parseTime(env.Yidao.Saved)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		ID:      env.Yidao.ID,
		SavedAt: saved,
		User:    env.Yidao.User,
		Report:  strings.TrimPrefix(string(parts[1]), "\n"),
	}, nil
}

func parseTime(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, fmt.Errorf("empty saved timestamp")
	}
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse saved timestamp: %w", err)
	}
	return t.UTC(), nil
}
