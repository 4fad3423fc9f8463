// internal/model/types.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The store keeps whole documents per row; set and map fields are serialized
// into TEXT columns as JSON. Integer map keys marshal as strings, which keeps
// the column payload identical to the exported snapshot format.

type IntSlice []int

type StringSlice []string

type IntCountMap map[int]int

type IntStringMap map[int]string

type StringIntMap map[string]int

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(dest any, src any) error {
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(s, dest)
	case string:
		return json.Unmarshal([]byte(s), dest)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

func (s IntSlice) Value() (driver.Value, error) {
	if s == nil {
		s = IntSlice{}
	}
	return jsonValue(s)
}

func (s *IntSlice) Scan(src any) error { return jsonScan(s, src) }

// Contains reports whether id is present in the slice.
func (s IntSlice) Contains(id int) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	return jsonValue(s)
}

func (s *StringSlice) Scan(src any) error { return jsonScan(s, src) }

func (s StringSlice) Contains(v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

func (m IntCountMap) Value() (driver.Value, error) {
	if m == nil {
		m = IntCountMap{}
	}
	return jsonValue(m)
}

func (m *IntCountMap) Scan(src any) error { return jsonScan(m, src) }

func (m IntStringMap) Value() (driver.Value, error) {
	if m == nil {
		m = IntStringMap{}
	}
	return jsonValue(m)
}

func (m *IntStringMap) Scan(src any) error { return jsonScan(m, src) }

func (m StringIntMap) Value() (driver.Value, error) {
	if m == nil {
		m = StringIntMap{}
	}
	return jsonValue(m)
}

func (m *StringIntMap) Scan(src any) error { return jsonScan(m, src) }
