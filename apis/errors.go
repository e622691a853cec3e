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

package apis

// CodedError is implemented by foreign errors that carry a machine-readable
// error code. outcome.FromError keeps that code instead of the generic
// "exception" code.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code. It may be empty.
	ErrorCode() string
}

// CategorizedError is implemented by foreign errors that know their
// category. The returned name is parsed with category.Parse; unparsable
// names fall back to the Exception category.
type CategorizedError interface {
	error

	// ErrorCategory returns the category name.
	ErrorCategory() string
}

// DetailedError is implemented by foreign errors that carry a longer
// explanation next to their message.
type DetailedError interface {
	error

	// ErrorDetail returns the explanation. May be empty.
	ErrorDetail() string
}
