package preload

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/borderpath/countrygraph"
)

// Field names read from each record.
const (
	fieldCode    = "cca3"
	fieldBorders = "borders"
)

// Source names used in logs and error messages.
const (
	sourceReader   = "reader"
	sourceEmbedded = "embedded"
)

var (
	// ErrLoad is returned for every failure to produce a graph.
	ErrLoad = errors.New("preload: cannot load country graph")

	// ErrNotArray indicates the root JSON value is not an array.
	ErrNotArray = errors.New("preload: root value is not an array")
)

//go:embed countries.json
var embedded []byte

// Option configures a load.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	source  string
	builder []countrygraph.BuilderOption
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
		source: sourceReader,
	}
}

// WithLogger sets the logger for load progress. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSource names the input in logs and errors.
func WithSource(name string) Option {
	return func(o *options) {
		if name != "" {
			o.source = name
		}
	}
}

// WithBuilderOptions forwards sizing hints to the graph builder.
func WithBuilderOptions(opts ...countrygraph.BuilderOption) Option {
	return func(o *options) {
		o.builder = append(o.builder, opts...)
	}
}

// LoadDefault builds the graph from the embedded world dataset.
func LoadDefault(opts ...Option) (*countrygraph.Graph, error) {
	opts = append([]Option{WithSource(sourceEmbedded)}, opts...)

	return Load(bytes.NewReader(embedded), opts...)
}

// LoadFile builds the graph from the JSON file at path.
func LoadFile(path string, opts ...Option) (*countrygraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	opts = append([]Option{WithSource(path)}, opts...)

	return Load(f, opts...)
}

// Load builds the graph from a JSON array of country records read from r.
func Load(r io.Reader, opts ...Option) (*countrygraph.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	o.logger.Info("loading country graph", "source", o.source)

	b := countrygraph.NewBuilder(o.builder...)
	if err := decode(json.NewDecoder(r), b); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, o.source, err)
	}
	g, err := b.Finalize()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, o.source, err)
	}

	o.logger.Info("loaded country graph",
		"source", o.source,
		"countries", g.NodeCount(),
		"edges", g.EdgeCount(),
		"components", g.ComponentCount(),
		"duration", time.Since(start),
	)

	return g, nil
}

// decode walks the root array and feeds every object record to b.
func decode(dec *json.Decoder, b *countrygraph.Builder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('[') {
		return ErrNotArray
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if tok != json.Delim('{') {
			if err := skip(dec, tok); err != nil {
				return err
			}
			continue
		}

		code, borders, err := readRecord(dec)
		if err != nil {
			return err
		}
		if err := b.AddCountry(code, borders); err != nil {
			return err
		}
	}

	// closing ']'
	_, err = dec.Token()

	return err
}

// readRecord consumes one object after its opening '{'.
func readRecord(dec *json.Decoder) (code string, borders []string, err error) {
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return "", nil, err
		}
		val, err := dec.Token()
		if err != nil {
			return "", nil, err
		}

		switch key {
		case fieldCode:
			if s, ok := val.(string); ok {
				code = s
				continue
			}
		case fieldBorders:
			if val == json.Delim('[') {
				if borders, err = readBorders(dec); err != nil {
					return "", nil, err
				}
				continue
			}
		}
		if err := skip(dec, val); err != nil {
			return "", nil, err
		}
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return "", nil, err
	}

	return code, borders, nil
}

// readBorders consumes a borders array after its opening '['.
func readBorders(dec *json.Decoder) ([]string, error) {
	var out []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if s, ok := tok.(string); ok {
			out = append(out, s)
			continue
		}
		if err := skip(dec, tok); err != nil {
			return nil, err
		}
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return out, nil
}

// skip discards the rest of a value whose first token is tok.
// Scalars are already fully consumed.
func skip(dec *json.Decoder, tok json.Token) error {
	if tok != json.Delim('[') && tok != json.Delim('{') {
		return nil
	}
	for depth := 1; depth > 0; {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		switch t {
		case json.Delim('['), json.Delim('{'):
			depth++
		case json.Delim(']'), json.Delim('}'):
			depth--
		}
	}

	return nil
}
