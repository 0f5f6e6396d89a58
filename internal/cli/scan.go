package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/coregx/condex"
)

// Result is the JSON document printed for one scanned input.
type Result struct {
	File    string                    `json:"file"`
	Matches map[string][][]string     `json:"matches,omitempty"`
	Spans   map[string][]condex.Group `json:"spans,omitempty"`
}

// Scanner runs the configured category table over whole inputs.
type Scanner struct {
	cfg    *Config
	logger *slog.Logger
}

// NewScanner validates the category table once so that a malformed pattern is
// reported before any input is read.
func NewScanner(cfg *Config, logger *slog.Logger) (*Scanner, error) {
	if _, err := condex.NewMatcherWithConfig(cfg.Categories, cfg.MatcherConfig()); err != nil {
		return nil, err
	}
	return &Scanner{cfg: cfg, logger: logger}, nil
}

// Scan matches src with a fresh matcher and returns its results.
func (s *Scanner) Scan(name, src string) (*Result, error) {
	start := time.Now()

	m, err := condex.NewMatcherWithConfig(s.cfg.Categories, s.cfg.MatcherConfig())
	if err != nil {
		return nil, err
	}
	s.logger.Debug("scanning", "file", name, "bytes", len(src), "automata", m.Len())

	if err := m.Scan(src); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	res := &Result{File: name}
	groups := 0
	if s.cfg.Spans {
		res.Spans, err = m.Finalize()
		for _, g := range res.Spans {
			groups += len(g)
		}
	} else {
		res.Matches, err = m.FinalizeWithSource(src)
		for _, g := range res.Matches {
			groups += len(g)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	s.logger.Info("scan complete", "file", name, "groups", groups, "elapsed", time.Since(start))
	return res, nil
}

// readInput reads a named file, or stdin when name is "-".
func readInput(stdin io.Reader, name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}
