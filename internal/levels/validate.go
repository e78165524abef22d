package levels

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validation error codes.
const (
	CodeSchema        = "SCHEMA"
	CodeInvalidParams = "INVALID_PARAMS"
	CodeInvalidOrtho  = "INVALID_ORTHO"
	CodeInvalidState  = "INVALID_STATE"
	CodeOutOfBounds   = "OUT_OF_BOUNDS"
	CodeDuplicateCell = "DUPLICATE_CELL"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

//go:embed schema/level.schema.json
var levelSchema string

const levelSchemaURL = "https://hextiles.local/schema/level.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString(levelSchemaURL, levelSchema)
	})
	return compiledSchema, schemaErr
}

// ValidateDocument checks a decoded level document against the level
// schema. doc must hold the types encoding/json produces.
func ValidateDocument(doc any) error {
	s, err := schema()
	if err != nil {
		return fmt.Errorf("compiling level schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return ValidationError{Code: CodeSchema, Message: err.Error()}
	}
	return nil
}
