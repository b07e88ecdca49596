package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/resumeform/internal/model"
)

func TestEncode_EmptyListsAsArrays(t *testing.T) {
	doc := model.ResumeDocument{
		PersonalInfo: model.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@x.com",
			Phone:    "555",
			Address:  "1 Main St",
		},
	}

	got, err := Encode(doc)
	require.NoError(t, err)
	assert.Equal(t,
		`{"personalInfo":{"fullName":"Jane Doe","email":"jane@x.com","phone":"555","address":"1 Main St"},"education":[],"experience":[],"skills":[]}`,
		got)
}

func TestDecode_FullDocument(t *testing.T) {
	raw := `{
		"personalInfo": {"fullName": "Ada", "email": "a@b.c", "phone": "1", "address": "here"},
		"education": [{"school": "MIT", "degree": "BSc", "year": "1990"}],
		"experience": [{"company": "ACME", "position": "Eng", "duration": "2y", "description": "built"}],
		"skills": ["Go", "Go"]
	}`

	doc, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "Ada", doc.PersonalInfo.FullName)
	require.Len(t, doc.Education, 1)
	assert.Equal(t, "MIT", doc.Education[0].School)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "built", doc.Experience[0].Description)
	assert.Equal(t, []string{"Go", "Go"}, doc.Skills)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode("{ nope")
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestValidate_SchemaViolations(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{"missing personalInfo", `{"skills":[]}`, "(root)"},
		{"non-string skill", `{"personalInfo":{},"skills":[1]}`, "skills.0"},
		{"non-string personal value", `{"personalInfo":{"fullName":3}}`, "personalInfo.fullName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.raw)
			var se *SchemaError
			require.ErrorAs(t, err, &se)
			require.NotEmpty(t, se.Errors)
			assert.Equal(t, tt.field, se.Errors[0].Field)
		})
	}
}

func TestPersonalFields_StoredOrder(t *testing.T) {
	raw := `{"personalInfo":{"phone":"555","fullName":"Jane","nickname":"J"},"education":[]}`

	fields, err := PersonalFields(raw)
	require.NoError(t, err)
	assert.Equal(t, []Field{
		{Key: "phone", Value: "555"},
		{Key: "fullName", Value: "Jane"},
		{Key: "nickname", Value: "J"},
	}, fields)
}
