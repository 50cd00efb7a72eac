package mudir

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// snapshotSchemaJSON describes the durable document / backup file shape.
// All three top-level members must be present for a document to be accepted.
const snapshotSchemaJSON = `{
  "type": "object",
  "required": ["meta", "collections", "ledger"],
  "properties": {
    "meta": {
      "type": "object",
      "required": ["appVersion", "userCurrency"],
      "properties": {
        "appVersion": {"type": "string"},
        "organizationName": {"type": "string"},
        "userCurrency": {"type": "string"},
        "exportDate": {"type": "string"},
        "isNewUser": {"type": "boolean"}
      }
    },
    "collections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "schema", "data"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "description": {"type": "string"},
          "schema": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["key", "label", "type"],
              "properties": {
                "key": {"type": "string"},
                "label": {"type": "string"},
                "type": {"enum": ["text", "number", "currency", "date", "boolean", "select"]},
                "required": {"type": "boolean"},
                "options": {"type": "array", "items": {"type": "string"}}
              }
            }
          },
          "data": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "values"],
              "properties": {
                "id": {"type": "string"},
                "createdAt": {"type": "string"},
                "values": {"type": "object"}
              }
            }
          }
        }
      }
    },
    "ledger": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["organization", "transactions"],
        "properties": {
          "organization": {
            "type": "object",
            "required": ["id", "name"],
            "properties": {
              "id": {"type": "string"},
              "name": {"type": "string"},
              "phone": {"type": "string"},
              "email": {"type": "string"}
            }
          },
          "transactions": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "organizationId", "type", "amount"],
              "properties": {
                "id": {"type": "string"},
                "organizationId": {"type": "string"},
                "type": {"enum": ["CREDIT", "DEBIT"]},
                "amount": {"type": "number", "minimum": 0},
                "date": {"type": "string"},
                "remark": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

var (
	snapshotSchemaOnce     sync.Once
	snapshotSchemaResolved *jsonschema.Resolved
	snapshotSchemaErr      error
)

func resolvedSnapshotSchema() (*jsonschema.Resolved, error) {
	snapshotSchemaOnce.Do(func() {
		var schema jsonschema.Schema
		if err := json.Unmarshal([]byte(snapshotSchemaJSON), &schema); err != nil {
			snapshotSchemaErr = fmt.Errorf("failed to unmarshal snapshot schema: %w", err)
			return
		}
		resolved, err := schema.Resolve(&jsonschema.ResolveOptions{})
		if err != nil {
			snapshotSchemaErr = fmt.Errorf("failed to resolve snapshot schema: %w", err)
			return
		}
		snapshotSchemaResolved = resolved
	})
	return snapshotSchemaResolved, snapshotSchemaErr
}

// ValidateSnapshotDocument checks raw document bytes against the backup
// shape. It returns an import error when the payload is not valid JSON or
// does not carry the meta/collections/ledger structure.
func ValidateSnapshotDocument(data []byte) error {
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return NewImportError(ErrCodeImportParseFailed, "document is not valid JSON").WithCause(err)
	}

	resolved, err := resolvedSnapshotSchema()
	if err != nil {
		return NewMudirError(ErrorTypeInternal, ErrCodeImportShapeInvalid, "snapshot schema unavailable").WithCause(err)
	}

	if err := resolved.Validate(instance); err != nil {
		return NewImportError(ErrCodeImportShapeInvalid, "document is not a valid backup").WithCause(err)
	}
	return nil
}
