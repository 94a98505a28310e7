package schemas

import (
	"fmt"
	"os"
)

// CandidateImportSchemaPath is the repo-relative location of the bulk
// candidate import schema.
const CandidateImportSchemaPath = "schemas/candidate_import.schema.json"

// ValidateCandidateImport validates a bulk candidate import payload against
// the candidate import schema.
func ValidateCandidateImport(jsonContent string) error {
	schemaPath := ResolveSchemaPath(CandidateImportSchemaPath)
	if schemaPath == "" {
		return fmt.Errorf("candidate import schema not found: %s", CandidateImportSchemaPath)
	}

	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read candidate import schema: %w", err)
	}

	return ValidateJSONString(string(schemaContent), jsonContent)
}
