// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import (
	"fmt"
	"strings"
)

// Record is the state threaded through a do block: an ordered mapping
// from field name to an erased value.
//
// Records are immutable — Set returns a new Record and never touches the
// receiver — so continuations inside Do/Loop can hold on to earlier
// states safely. Field order is insertion order; updating an existing
// field keeps its original position.
//
// Records are small (one field per do step); lookup is a linear scan.
type Record struct {
	fields []recordField
}

type recordField struct {
	name  string
	value Erased
}

// EmptyRecord returns the record with no fields, the default initial
// state of [Do] and [Loop].
func EmptyRecord() Record {
	return Record{}
}

// Get returns the value of the named field and whether it is present.
func (r Record) Get(name string) (Erased, bool) {
	for _, f := range r.fields {
		if f.name == name {
			return f.value, true
		}
	}
	return nil, false
}

// MustGet returns the value of the named field.
// Panics if the field is absent — do steps only read fields bound by
// earlier steps, so a miss is a caller bug.
func (r Record) MustGet(name string) Erased {
	v, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("mona: record has no field %q", name))
	}
	return v
}

// Has reports whether the named field is present.
func (r Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Set returns a copy of the record with the named field bound to value.
// A new field is appended; an existing field is updated in place,
// keeping its original position. The receiver is never mutated.
func (r Record) Set(name string, value Erased) Record {
	fields := make([]recordField, len(r.fields), len(r.fields)+1)
	copy(fields, r.fields)
	for i := range fields {
		if fields[i].name == name {
			fields[i].value = value
			return Record{fields: fields}
		}
	}
	return Record{fields: append(fields, recordField{name: name, value: value})}
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Names returns the field names in insertion order.
func (r Record) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.name
	}
	return names
}

// String renders the record as {name: value, ...} in field order.
func (r Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", f.name, f.value)
	}
	b.WriteByte('}')
	return b.String()
}
