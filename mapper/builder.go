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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/status"
)

type prefixRule[V any] struct {
	// prefix is the raw dotted code prefix (may contain "*"). It is
	// normalized and validated when the trie is built.
	prefix string
	val    V
}

// builder collects options before New freezes them.
type builder struct {
	statusDefaults map[category.Category]int
	grpcDefaults   map[category.Category]codes.Code

	statusOverride map[category.Category]int
	grpcOverride   map[category.Category]codes.Code

	statusPrefixes map[category.Category][]prefixRule[int]
	grpcPrefixes   map[category.Category][]prefixRule[codes.Code]

	fallbackStatus int
	fallbackGRPC   codes.Code

	// registry, when set, supplies descriptions for custom status codes.
	registry *status.Registry
}

func newBuilder() *builder {
	return &builder{
		statusDefaults: make(map[category.Category]int, len(defaultStatus)),
		grpcDefaults:   make(map[category.Category]codes.Code, len(defaultGRPC)),

		statusOverride: make(map[category.Category]int),
		grpcOverride:   make(map[category.Category]codes.Code),
		statusPrefixes: make(map[category.Category][]prefixRule[int]),
		grpcPrefixes:   make(map[category.Category][]prefixRule[codes.Code]),

		fallbackStatus: http.StatusInternalServerError,
		fallbackGRPC:   codes.Internal,
	}
}
