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

// Package sudachi implements a library for reading the lexicon of Sudachi
// morphological analysis dictionaries in pure Go.
//
// A dictionary is a single binary file. The lexicon's word info table is
// located by the offset of its offset table and its number of entries, which
// callers supply through [Options]. Dictionary files may be compressed using
// the dictzip format.
//
// Word info records are decoded by the [lexicon] package.
package sudachi
