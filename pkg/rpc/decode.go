package rpc

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Unmarshal decodes a result payload into v.
//
// Unknown fields are ignored. A struct field without omitempty that is not a pointer must be
// present and non-null, otherwise ErrMissingField is returned with the field path. Types that
// implement json.Unmarshaler are trusted to do their own checking.
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
		}
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Pointer {
		return nil
	}
	t = t.Elem()
	if isNull(data) && t.Kind() == reflect.Struct && !customDecoder(t) {
		return fmt.Errorf("%w: result", ErrMissingField)
	}

	return checkRequired(data, t, "")
}

func checkRequired(raw json.RawMessage, t reflect.Type, path string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if isNull(raw) || customDecoder(t) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil
		}
		return checkStruct(fields, t, path)
	case reflect.Slice, reflect.Array:
		if !needsCheck(t.Elem()) {
			return nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		for i, item := range items {
			if err := checkRequired(item, t.Elem(), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		if !needsCheck(t.Elem()) {
			return nil
		}
		var items map[string]json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		for k, item := range items {
			if err := checkRequired(item, t.Elem(), joinPath(path, k)); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkStruct(fields map[string]json.RawMessage, t reflect.Type, path string) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if err := checkStruct(fields, ft, path); err != nil {
					return err
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}

		fieldPath := joinPath(path, name)
		raw, ok := lookupField(fields, name)
		if !ok || isNull(raw) {
			if f.Type.Kind() == reflect.Pointer || hasOption(opts, "omitempty") {
				continue
			}
			return fmt.Errorf("%w: %s", ErrMissingField, fieldPath)
		}
		if err := checkRequired(raw, f.Type, fieldPath); err != nil {
			return err
		}
	}
	return nil
}

// lookupField matches keys the way encoding/json does: exact first, then case-insensitive.
func lookupField(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if raw, ok := fields[name]; ok {
		return raw, true
	}
	for k, raw := range fields {
		if strings.EqualFold(k, name) {
			return raw, true
		}
	}
	return nil, false
}

func needsCheck(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map:
		return !customDecoder(t)
	default:
		return false
	}
}

func customDecoder(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	return t.Implements(jsonUnmarshalerType) || pt.Implements(jsonUnmarshalerType) ||
		t.Implements(textUnmarshalerType) || pt.Implements(textUnmarshalerType)
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
