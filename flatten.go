// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Flatten collapses self-nesting of one container family: occurrences
// of v's family nested inside expr are repeatedly joined until the first
// non-matching layer, yielding a single flat container.
//
//	Flatten(ManyVariant, NewMany(0, NewMany(1, 2), NewMany(3, 4)))
//	// Many(0, 1, 2, 3, 4)
//
// The join is type-directed — v.Is decides whether an element is another
// layer — which makes it polymorphic over any Bindable family and
// idempotent on already-flat containers. Mechanically it is a [Loop]
// that re-binds a single field while the field still holds a container
// of v's family, then projects the field.
func Flatten(v Variant, expr Bindable) Bindable {
	flat := Loop(v,
		func(s Record) bool { return v.Is(s.MustGet("x")) },
		Do(v, nil, Field("x", func(Record) Bindable { return expr })),
		Field("x", func(s Record) Bindable {
			return s.MustGet("x").(Bindable)
		}),
	)
	return mustBindable(flat.Map(func(s Erased) Erased {
		return s.(Record).MustGet("x")
	}))
}
