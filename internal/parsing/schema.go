package parsing

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-insight/internal/types"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

var (
	resumeSchema  = mustCompileSchema("schemas/resume_analysis.json")
	profileSchema = mustCompileSchema("schemas/github_analysis.json")
)

func mustCompileSchema(path string) *gojsonschema.Schema {
	data, err := schemaFiles.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("read schema %s: %v", path, err))
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", path, err))
	}
	return schema
}

// ValidateResumeContract checks a resume analysis against the response
// contract. Run it after score normalization so numeric drift cannot
// surface as a contract violation.
func ValidateResumeContract(a *types.ResumeAnalysis) error {
	return validateAgainst(resumeSchema, a)
}

// ValidateProfileContract checks a profile analysis against the response
// contract.
func ValidateProfileContract(a *types.ProfileAnalysis) error {
	return validateAgainst(profileSchema, a)
}

func validateAgainst(schema *gojsonschema.Schema, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document for validation: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return fmt.Errorf("running schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	cerr := &ContractError{}
	for _, re := range result.Errors() {
		field := re.Field()
		if field == "" {
			field = "(root)"
		}
		cerr.Errors = append(cerr.Errors, FieldError{
			Field:   field,
			Message: re.Description(),
		})
	}
	return cerr
}
