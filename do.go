// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Monadic sequencer: do blocks and monadic while-loops over any
// Bindable family.

// Step is one named line of a do block. Body receives the record built
// by the preceding steps and returns a wrapped value; the unwrapped
// value is bound to Name in the record seen by the following steps.
type Step struct {
	Name string
	Body func(Record) Bindable
}

// Field constructs a do step binding name to the value produced by body.
func Field(name string, body func(Record) Bindable) Step {
	return Step{Name: name, Body: body}
}

// checkSteps rejects duplicate field names within one do call.
// Silent shadowing would hide a lost binding; across Loop passes the
// same names legitimately re-bind through Record.Set instead.
func checkSteps(steps []Step) {
	for i := range steps {
		for j := range i {
			if steps[j].Name == steps[i].Name {
				panic(&DuplicateFieldError{Name: steps[i].Name})
			}
		}
	}
}

// Do sequences named steps over v's family into a growing record.
//
// Starting from initial — or v.Wrap(EmptyRecord()) when initial is nil —
// each step in declaration order binds the current wrapped record, runs
// its body against the unwrapped record, and maps the produced wrapped
// value into a record extended with one new field. The result wraps the
// final record; project it with Map.
//
//	zs := Do(ManyVariant, nil,
//	    Field("x", func(Record) Bindable { return NewMany(0, 2) }),
//	    Field("y", func(Record) Bindable { return NewMany(0, 1) }),
//	    Field("z", func(s Record) Bindable {
//	        return ManyVariant.Wrap(g(s.MustGet("x"), s.MustGet("y")))
//	    }),
//	)
//
// A non-nil initial must wrap Record values. Duplicate step names panic
// with [*DuplicateFieldError].
func Do(v Variant, initial Bindable, steps ...Step) Bindable {
	checkSteps(steps)
	state := initial
	if state == nil {
		state = v.Wrap(EmptyRecord())
	}
	for _, step := range steps {
		st := step
		state = state.Bind(func(s Erased) Bindable {
			rec := s.(Record)
			return mustBindable(st.Body(rec).Map(func(x Erased) Erased {
				return rec.Set(st.Name, x)
			}))
		})
	}
	return state
}

// Loop runs do passes over v's family while pred holds.
//
// The predicate is tested against the current record before every pass,
// including before the first; once it reports false the current record
// is returned via v.Wrap. Step names re-bind their fields on every pass.
//
// Iteration count is unbounded and driven entirely by the predicate: a
// predicate that never turns false recurses forever, and for eager
// families like Many each pass can multiply the number of live records.
// Recursion depth through Bind grows with the iteration count; an
// external iterative driver is not possible here because the lazy (Func)
// and concurrent (Async) families run their continuations outside the
// caller's control flow.
func Loop(v Variant, pred func(Record) bool, initial Bindable, steps ...Step) Bindable {
	checkSteps(steps)
	state := initial
	if state == nil {
		state = v.Wrap(EmptyRecord())
	}
	var whileDo func(Erased) Bindable
	whileDo = func(s Erased) Bindable {
		rec := s.(Record)
		if !pred(rec) {
			return v.Wrap(rec)
		}
		return Do(v, v.Wrap(rec), steps...).Bind(whileDo)
	}
	return state.Bind(whileDo)
}
