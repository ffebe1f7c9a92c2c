// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipe

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// InputError reports an invalid geometry, fluid or flow value
type InputError struct {
	Field string  // name of the field; e.g. "D"
	Value float64 // offending value
	Rule  string  // condition the value must satisfy; e.g. "> 0"
}

// Error implements error
func (o *InputError) Error() string {
	return io.Sf("invalid %s = %g: must be %s", o.Field, o.Value, o.Rule)
}

func positive(field string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return &InputError{Field: field, Value: v, Rule: "finite and > 0"}
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 0) {
		return &InputError{Field: field, Value: v, Rule: "finite and >= 0"}
	}
	return nil
}

func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InputError{Field: field, Value: v, Rule: "finite"}
	}
	return nil
}
