package helper_util

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// StringValue reads a string field from a record, returning "" for missing
// or null values.
func StringValue(record *neo4j.Record, key string) string {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return ""
	}
	s, _ := value.(string)
	return s
}

// BoolValue reads a boolean field from a record, returning false for missing
// or null values.
func BoolValue(record *neo4j.Record, key string) bool {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return false
	}
	b, _ := value.(bool)
	return b
}

// IntValue reads an integer field from a record.
func IntValue(record *neo4j.Record, key string) int64 {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return 0
	}
	n, _ := value.(int64)
	return n
}

// TimeValue reads an RFC3339 timestamp field from a record.
func TimeValue(record *neo4j.Record, key string) (time.Time, error) {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return time.Time{}, fmt.Errorf("field %s absent", key)
	}
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		return time.Parse(time.RFC3339, v)
	default:
		return time.Time{}, fmt.Errorf("unsupported type for time parsing: %T", value)
	}
}

// ParseStringMap decodes a JSON object of string values, the storage format
// used for tenant config properties.
func ParseStringMap(raw string) (map[string]string, error) {
	m := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	return m, nil
}
