package llm

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

const (
	responseMIMEType = "application/json"

	// Every record needs exactly the three fields, nothing else.
	matchResponseSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "seniorId": {"type": "string"},
      "matchScore": {"type": "number"},
      "reason": {"type": "string"}
    },
    "required": ["seniorId", "matchScore", "reason"],
    "additionalProperties": false
  }
}`
)

var compiledMatchSchema = mustCompileSchema(matchResponseSchema)

func mustCompileSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic("llm: invalid match response schema: " + err.Error())
	}
	return schema
}

// MatchResponseSchema returns the declared output contract as raw JSON schema.
func MatchResponseSchema() json.RawMessage {
	return json.RawMessage(matchResponseSchema)
}

// genaiResponseSchema mirrors matchResponseSchema in the form the Gemini API expects.
func genaiResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"seniorId": {
					Type:        genai.TypeString,
					Description: "The id of the senior profile.",
				},
				"matchScore": {
					Type:        genai.TypeNumber,
					Description: "A compatibility score from 0 to 100.",
				},
				"reason": {
					Type:        genai.TypeString,
					Description: "Why this senior suits the student, at most 2 sentences.",
				},
			},
			Required:         []string{"seniorId", "matchScore", "reason"},
			PropertyOrdering: []string{"seniorId", "matchScore", "reason"},
		},
	}
}
