package document

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Makepad-fr/resumeform/internal/model"
)

// StorageKey is the fixed key the document is written under.
const StorageKey = "resumeData"

const schemaJSON = `{
  "type": "object",
  "required": ["personalInfo"],
  "properties": {
    "personalInfo": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "school": {"type": "string"},
          "degree": {"type": "string"},
          "year": {"type": "string"}
        }
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "company": {"type": "string"},
          "position": {"type": "string"},
          "duration": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "skills": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Field is one personalInfo key and its stored value.
type Field struct {
	Key   string
	Value string
}

// Encode serializes the whole document. Empty lists encode as [].
func Encode(doc model.ResumeDocument) (string, error) {
	b, err := json.Marshal(doc.Normalized())
	if err != nil {
		return "", &DecodeError{Message: "failed to marshal document", Cause: err}
	}
	return string(b), nil
}

// Validate checks raw against the document schema.
func Validate(raw string) error {
	if !gjson.Valid(raw) {
		return &DecodeError{Message: "stored value is not valid JSON"}
	}
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return &DecodeError{Message: "schema validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil
	}
	se := &SchemaError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		se.Errors = append(se.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return se
}

// Decode parses a stored blob into a document.
func Decode(raw string) (model.ResumeDocument, error) {
	if err := Validate(raw); err != nil {
		return model.ResumeDocument{}, err
	}
	var doc model.ResumeDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return model.ResumeDocument{}, &DecodeError{Message: "failed to parse document", Cause: err}
	}
	return doc.Normalized(), nil
}

// PersonalFields returns the personalInfo entries in stored order, so a
// caller can repopulate inputs by key without knowing the key set.
func PersonalFields(raw string) ([]Field, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	var out []Field
	gjson.Get(raw, "personalInfo").ForEach(func(k, v gjson.Result) bool {
		out = append(out, Field{Key: k.String(), Value: v.String()})
		return true
	})
	return out, nil
}
