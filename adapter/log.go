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

package adapter

import "dirpx.dev/outcome/apis"

// Log keys emitted by KeyValues.
const (
	KeySuccess       = "success"
	KeyStatus        = "status"
	KeyErrorCount    = "errorCount"
	KeyErrorCategory = "errorCategory"
	KeyErrorCode     = "errorCode"
	KeyErrorMessage  = "errorMessage"
)

// KeyValues returns alternating key/value pairs describing o, ready to be
// passed to a logr.Logger:
//
//	log.Info("request done", adapter.KeyValues(o)...)
//
// Failures add the number of errors and the category, code and message of
// the primary error.
func KeyValues(o apis.Outcome) []any {
	if o == nil {
		return nil
	}
	kv := []any{KeySuccess, o.IsSuccess(), KeyStatus, o.Status().Code}
	if o.IsSuccess() {
		return kv
	}
	errs := o.Errors()
	kv = append(kv, KeyErrorCount, len(errs))
	if len(errs) > 0 {
		kv = append(kv,
			KeyErrorCategory, errs[0].Category().String(),
			KeyErrorCode, errs[0].Code(),
			KeyErrorMessage, errs[0].Message(),
		)
	}
	return kv
}
