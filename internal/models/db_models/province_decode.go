package db_models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidProvinces matches every *ValidationError.
var ErrInvalidProvinces = errors.New("invalid provinces data")

// ValidationError reports a schema violation in a provinces document.
// Field is the dotted path of the first offending field, Fields lists every
// offending field of the same record.
type ValidationError struct {
	Field  string
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 1 {
		return fmt.Sprintf("%s: %s", strings.Join(e.Fields, ", "), e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidProvinces
}

// provinceRecord mirrors Province with pointer fields so that an absent
// member can be told apart from a zero value.
type provinceRecord struct {
	ID          *int    `json:"id" validate:"required"`
	Name        *string `json:"name" validate:"required"`
	Type        *string `json:"type" validate:"required"`
	Owner       *string `json:"owner" validate:"required"`
	Development *int    `json:"development" validate:"required"`
	TradeGoods  *string `json:"trade_goods" validate:"required"`
	Terrain     *string `json:"terrain" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

func (r provinceRecord) toProvince() Province {
	return Province{
		ID:          *r.ID,
		Name:        *r.Name,
		Type:        *r.Type,
		Owner:       *r.Owner,
		Development: *r.Development,
		TradeGoods:  *r.TradeGoods,
		Terrain:     *r.Terrain,
		Description: *r.Description,
	}
}

var recordFields = []string{"id", "name", "type", "owner", "development", "trade_goods", "terrain", "description"}

var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeProvincesData parses and validates a provinces document. Either
// every entry is accepted or an error is returned; nothing is defaulted.
// Syntax errors are returned as produced by encoding/json, schema
// violations as *ValidationError.
func DecodeProvincesData(raw []byte) (*ProvincesData, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, &ValidationError{Field: "$", Fields: []string{"$"}, Reason: "expected object, got null"}
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ValidationError{
				Field:  "$",
				Fields: []string{"$"},
				Reason: fmt.Sprintf("expected object, got %s", typeErr.Value),
			}
		}
		return nil, err
	}

	data := NewProvincesData()
	members, ok := root["provinces"]
	if !ok {
		return data, nil
	}

	var entries map[string]json.RawMessage
	if len(members) == 0 || bytes.Equal(bytes.TrimSpace(members), []byte("null")) {
		return nil, &ValidationError{Field: "provinces", Fields: []string{"provinces"}, Reason: "expected object, got null"}
	}
	if err := json.Unmarshal(members, &entries); err != nil {
		return nil, &ValidationError{Field: "provinces", Fields: []string{"provinces"}, Reason: describeDecodeError(err)}
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		p, err := decodeProvince(key, entries[key])
		if err != nil {
			return nil, err
		}
		data.Provinces[key] = p
	}
	return data, nil
}

func decodeProvince(key string, raw json.RawMessage) (Province, error) {
	prefix := "provinces." + key

	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return Province{}, &ValidationError{Field: prefix, Fields: []string{prefix}, Reason: "expected object, got null"}
	}

	// encoding/json matches member names case-insensitively; keep only
	// the exact names before decoding into the record.
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return Province{}, &ValidationError{Field: prefix, Fields: []string{prefix}, Reason: describeDecodeError(err)}
	}
	exact := make(map[string]json.RawMessage, len(recordFields))
	for _, name := range recordFields {
		if v, ok := members[name]; ok {
			exact[name] = v
		}
	}
	filtered, err := json.Marshal(exact)
	if err != nil {
		return Province{}, err
	}

	var rec provinceRecord
	if err := json.Unmarshal(filtered, &rec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			field := prefix + "." + typeErr.Field
			return Province{}, &ValidationError{
				Field:  field,
				Fields: []string{field},
				Reason: fmt.Sprintf("expected %s, got %s", typeName(typeErr.Type), typeErr.Value),
			}
		}
		return Province{}, &ValidationError{Field: prefix, Fields: []string{prefix}, Reason: describeDecodeError(err)}
	}

	if err := recordValidator.Struct(rec); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Province{}, err
		}
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, prefix+"."+fe.Field())
		}
		return Province{}, &ValidationError{Field: fields[0], Fields: fields, Reason: "field required"}
	}

	return rec.toProvince(), nil
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("expected object, got %s", typeErr.Value)
	}
	return err.Error()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int64, reflect.Int32:
		return "integer"
	case reflect.String:
		return "string"
	}
	return t.String()
}
