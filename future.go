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

import (
	"context"
	"fmt"

	"dirpx.dev/outcome/errinfo"
)

// Future is a Result that becomes available later. It is created by Go,
// Resolved or BindAsync and read with Await.
type Future[T any] struct {
	done chan struct{}
	res  Result[T]
}

// Go runs f in a new goroutine and returns a Future for its result. A panic
// in f is recovered into an Internal failure.
func Go[T any](ctx context.Context, f func(ctx context.Context) Result[T]) *Future[T] {
	fut := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(fut.done)
		defer func() {
			if p := recover(); p != nil {
				fut.res = InternalOf[T](errinfo.Internal(fmt.Sprintf("panic: %v", p)))
			}
		}()
		fut.res = f(ctx)
	}()
	return fut
}

// Resolved returns a Future that is already complete.
func Resolved[T any](r Result[T]) *Future[T] {
	fut := &Future[T]{done: make(chan struct{}), res: r}
	close(fut.done)
	return fut
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Await blocks until the result is available or ctx ends. A context that
// ends first yields a Timeout or Canceled failure; the pending work is not
// stopped by Await.
func (f *Future[T]) Await(ctx context.Context) Result[T] {
	select {
	case <-f.done:
		return f.res
	default:
	}
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return FromErrorOf[T](ctx.Err())
	}
}

// BindAsync is the asynchronous Bind. A failed r short-circuits into an
// already resolved Future and f is never started.
func BindAsync[T, U any](ctx context.Context, r Result[T], f func(ctx context.Context, v T) *Future[U]) *Future[U] {
	if !r.IsSuccess() {
		return Resolved(Result[U]{o: r.o})
	}
	fut := f(ctx, r.value)
	if fut == nil {
		return Resolved(InternalOf[U](errinfo.Internal("outcome: BindAsync step returned a nil future")))
	}
	return fut
}
