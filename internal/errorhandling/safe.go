// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package errorhandling

import "fmt"

// safe2 runs the specified function and returns its result value or returned error. If a panic occurs, it returns the
// panic as an error.
//
// Note: this is equivalent to a try-catch and you should probably not use it. Only use if you need to handle
// panics from third party libraries or from Golang itself.
func safe2[TValue any](f func() (TValue, error)) (result TValue, err error) {
	defer func() {
		var ok bool
		e := recover()
		if e == nil {
			return
		}
		if err, ok = e.(error); !ok {
			// In case the panic is not an error
			err = fmt.Errorf("%v", e)
		}
	}()
	return f()
}

// Safe runs f and converts any panic it raises into a returned error, such
// as running a single worklist task whose failure should be captured
// rather than crashing the whole process.
func Safe(f func() error) (err error) {
	_, err = safe2(func() (struct{}, error) {
		return struct{}{}, f()
	})
	return err
}
