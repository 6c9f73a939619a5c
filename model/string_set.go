package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// StringSet is a []string column with set semantics. Elements are unique and
// unordered; Add and Remove are safe to call repeatedly.

type StringSet []string

func (s StringSet) Has(v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// Add returns the set with v included. Adding an existing element is a no-op.
func (s StringSet) Add(v string) StringSet {
	if s.Has(v) {
		return s
	}
	return append(s, v)
}

// Remove returns the set without v. Removing a missing element is a no-op.
func (s StringSet) Remove(v string) StringSet {
	out := s[:0]
	for _, e := range s {
		if e != v {
			out = append(out, e)
		}
	}
	return out
}

// Value implements the driver.Valuer interface.
// Elements are joined with commas, so no element may contain one.
func (s StringSet) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "", nil
	}

	for _, v := range s {
		if strings.Contains(v, ",") {
			return "", fmt.Errorf("unsafe string, %s", v)
		}
	}

	return strings.Join(s, ","), nil
}

// Scan implements the sql.Scanner interface.
func (s *StringSet) Scan(value interface{}) error {
	if value == nil {
		*s = StringSet{}
		return nil
	}

	str, ok := value.(string)
	if !ok {
		b, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("failed to scan StringSet, %v", value)
		}

		str = string(b)
	}

	if str == "" {
		*s = StringSet{}
	} else {
		*s = StringSet(strings.Split(str, ","))
	}

	return nil
}
