package models

import (
	"strings"

	"github.com/mohae/deepcopy"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Record is one raw catalog entry as decoded from the vendor JSON, keyed by PascalCase field names.
type Record map[string]any

func (r Record) require(entity string, fields ...string) error {
	for _, f := range fields {
		if _, ok := r[f]; !ok {
			return &MissingFieldError{Entity: entity, Field: f}
		}
	}
	return nil
}

func (r Record) str(key string) string { return cast.ToString(r[key]) }

// boolean accepts the vendor's mix of true/false, "true"/"false", 0/1 and "0"/"1".
func (r Record) boolean(key string) bool {
	switch v := r[key].(type) {
	case float64, float32, int, int32, int64:
		return cast.ToFloat64(v) != 0
	case string:
		return cast.ToBool(strings.TrimSpace(v))
	default:
		return cast.ToBool(v)
	}
}

func (r Record) tags(key string) map[string]any {
	m, err := cast.ToStringMapE(r[key])
	if err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

func (r Record) list(key string) []any {
	if ss, ok := r[key].([]string); ok {
		out := make([]any, len(ss))
		for i, s := range ss {
			out[i] = s
		}
		return out
	}
	l, err := cast.ToSliceE(r[key])
	if err != nil {
		return nil
	}
	return l
}

// lenientDecimal never fails: prices the vendor cannot format come through as zero.
func lenientDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(cast.ToString(v)))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseCodes extracts the codes of a "code=value,code=value" list, dropping the =value part
// and empty entries. Order is preserved.
func ParseCodes(raw string) []string {
	var codes []string
	for _, item := range strings.Split(raw, ",") {
		code, _, _ := strings.Cut(item, "=")
		code = strings.TrimSpace(code)
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	if c, ok := deepcopy.Copy(m).(map[string]any); ok {
		return c
	}
	return map[string]any{}
}

func copyList(l []any) []any {
	if l == nil {
		return nil
	}
	if c, ok := deepcopy.Copy(l).([]any); ok {
		return c
	}
	return []any{}
}

func asMap(v any) map[string]any {
	if r, ok := v.(Record); ok {
		return r
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil
	}
	return m
}
