package repository

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"clinic-cms/internal/docstore"
	"clinic-cms/internal/model"

	"github.com/mitchellh/mapstructure"
)

// createdAtField is written as an ISO-8601 string and parsed back on read.
const createdAtField = "created_at"

var timeType = reflect.TypeOf(time.Time{})

// toDocument converts a stored entity into its persisted form. Field names
// follow the entity's json tags; created_at becomes an ISO-8601 string.
func toDocument(v any) (docstore.Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	var doc docstore.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	if ts, ok := createdAt(v); ok {
		doc[createdAtField] = model.FormatTimestamp(ts)
	}

	return doc, nil
}

// fromDocument decodes a persisted document into out. Unknown fields are
// ignored and created_at strings are parsed into time values.
func fromDocument(doc docstore.Document, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     out,
		DecodeHook: timestampHook,
	})
	if err != nil {
		return fmt.Errorf("failed to create document decoder: %w", err)
	}

	if err := decoder.Decode(map[string]any(doc)); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

func timestampHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != timeType {
		return data, nil
	}

	switch v := data.(type) {
	case string:
		return model.ParseTimestamp(v)
	case time.Time:
		return v.UTC(), nil
	case interface{ Time() time.Time }:
		return v.Time().UTC(), nil
	}
	return data, nil
}

// createdAt extracts the CreatedAt field of a stored entity.
func createdAt(v any) (time.Time, bool) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return time.Time{}, false
	}
	f := rv.FieldByName("CreatedAt")
	if !f.IsValid() || f.Type() != timeType {
		return time.Time{}, false
	}
	return f.Interface().(time.Time), true
}
