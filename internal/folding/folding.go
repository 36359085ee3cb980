// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package folding implements normalization of surface forms used as search
// keys.
package folding

import (
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Surface returns a new transformer that folds a surface form into a search
// key. Full-width and half-width variants are folded to their canonical
// width (e.g. "ＡＢＣ" to "ABC" and "ｶﾀｶﾅ" to "カタカナ") and whitespace is trimmed
// and collapsed.
func Surface() transform.Transformer {
	return transform.Chain(width.Fold, &Whitespace{})
}

// String folds s using t. Input that fails to transform is returned
// unchanged.
func String(t transform.Transformer, s string) string {
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
