// Package prop implements the property testing engine: property definitions,
// the trial loop, and the shrink search that minimizes failing inputs.
package prop

import (
	"fmt"
	"time"

	"github.com/propgo/propgo/gen"
	"github.com/propgo/propgo/model"
)

// Predicate evaluates a property against one input tuple. A violated
// property is signaled by returning false; an unexpected fault by returning
// an error or panicking. The two are recorded under distinct outcomes.
type Predicate func(inputs []any) (bool, error)

// Precondition filters input tuples before the predicate runs. Rejected
// tuples are discarded without evaluation.
type Precondition func(inputs []any) bool

// Property binds a name, one generator per predicate argument, a predicate,
// and an optional precondition.
type Property struct {
	Name         string
	Generators   []gen.Generator
	Predicate    Predicate
	Precondition Precondition
}

// Check evaluates the property against inputs. A false precondition returns
// a discard with zero duration and no predicate call, so discarded trials
// stay cheap and never contribute phantom work to duration statistics.
func (p Property) Check(inputs []any) (outcome model.Outcome, actual any, duration time.Duration, errMsg string) {
	if p.Precondition != nil && !p.Precondition(inputs) {
		return model.OutcomeDiscard, nil, 0, "precondition failed"
	}

	start := time.Now()
	ok, err := p.eval(inputs)
	duration = time.Since(start)

	if err != nil {
		return model.OutcomeError, nil, duration, err.Error()
	}
	if ok {
		return model.OutcomePass, true, duration, ""
	}
	return model.OutcomeFail, false, duration, "property violated"
}

// eval runs the predicate, converting panics into errors.
func (p Property) eval(inputs []any) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("predicate panic: %v", r)
		}
	}()
	return p.Predicate(inputs)
}
