package tfgov

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cw-tokenfactory/tfgov/types"
)

// Draft is a proposal being composed: free text title and description plus the ordered actions
// the proposal will execute.
type Draft struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Actions     ActionList `json:"actions"`
}

// DraftFormat is the file encoding of a draft.
type DraftFormat string

const (
	FormatJSON DraftFormat = "json"
	FormatYAML DraftFormat = "yaml"
)

// FormatFromPath picks the draft format from a file extension. Anything that is not .yaml or
// .yml is treated as JSON.
func FormatFromPath(path string) DraftFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Validate checks that the draft can be submitted.
func (d *Draft) Validate() error {
	validate := validator.New()
	if err := validate.Struct(d); err != nil {
		return err
	}

	if d.Actions.Len() == 0 {
		return ErrEmptyDraft
	}

	for i, action := range d.Actions.actions {
		if err := types.CheckAction(action); err != nil {
			return NewEncodeActionError(i, err)
		}
	}

	return nil
}

// NewDraft decodes a draft document in the given format. The document is checked against the
// draft schema before decoding, so actions that mix parameters of several kinds or use unknown
// kinds are rejected. The draft itself is not validated for submission.
func NewDraft(reader io.Reader, format DraftFormat) (*Draft, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	if format == FormatYAML {
		if data, err = yamlToJSON(data); err != nil {
			return nil, err
		}
	}

	if err = validateDraftSchema(data); err != nil {
		return nil, err
	}

	var out Draft
	if err = json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// LoadDraft reads a draft from a JSON or YAML file.
func LoadDraft(filePath string) (*Draft, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	draft, err := NewDraft(f, FormatFromPath(filePath))
	if err != nil {
		return nil, fmt.Errorf("unable to load draft %s: %w", filePath, err)
	}

	return draft, nil
}

// WriteDraft writes a draft in the given format.
func WriteDraft(w io.Writer, d *Draft, format DraftFormat) error {
	if format != FormatYAML {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(d)
	}

	data, err := json.Marshal(d)
	if err != nil {
		return err
	}

	// JSON is valid YAML, decoding it into a node keeps the field order.
	var node yaml.Node
	if err = yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	clearStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(&node); err != nil {
		return err
	}

	return enc.Close()
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("empty draft document")
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// clearStyle drops the flow and quoting styles inherited from JSON. Scalars that would not
// read back as strings are still quoted by the encoder.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
