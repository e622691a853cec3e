/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package outcome

import "dirpx.dev/outcome/errinfo"

// Map applies f to the payload of a successful r, keeping its status and
// messages. A failure is carried over with the same errors, status and
// messages, and f is not called.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.IsSuccess() {
		return Result[U]{o: r.o}
	}
	return Result[U]{o: r.o, value: f(r.value)}
}

// Bind returns f(value) for a successful r. A failure short-circuits: f is
// not called and the errors are repackaged as a Result[U].
func Bind[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.IsSuccess() {
		return Result[U]{o: r.o}
	}
	return f(r.value)
}

// Then is an alias of Bind.
func Then[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	return Bind(r, f)
}

// AndThen returns f() when o is a success and o otherwise.
func AndThen(o Outcome, f func() Outcome) Outcome {
	if !o.IsSuccess() {
		return o
	}
	return f()
}

// AndThenOf returns f() when o is a success; otherwise o is lifted into a
// failed Result[U] and f is not called.
func AndThenOf[U any](o Outcome, f func() Result[U]) Result[U] {
	if !o.IsSuccess() {
		return Lift[U](o)
	}
	return f()
}

// Match reduces r to a single value. Exactly one branch runs.
func Match[T, R any](r Result[T], onSuccess func(T) R, onFailure func(errs []errinfo.ErrorInfo) R) R {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.Errors())
}

// MatchOutcome reduces o to a single value. Exactly one branch runs.
func MatchOutcome[R any](o Outcome, onSuccess func() R, onFailure func(errs []errinfo.ErrorInfo) R) R {
	if o.IsSuccess() {
		return onSuccess()
	}
	return onFailure(o.Errors())
}
