/*
   Copyright 2026 The Zeturn Authors

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

// Package extract pulls a code and a message out of caught values of unknown
// shape without ever panicking.
//
// Values that cross recovery or interop boundaries rarely have a reliable
// type: they may be a zerr.Failure, a foreign error type, a decoded JSON
// map, or something else entirely. This package inspects them defensively —
// interfaces first, then map keys, then exported struct fields — and falls
// back to a configured default when nothing usable is found.
//
// Two equivalent surfaces exist: the package-level CodeFromError /
// MsgFromError always use the library sentinels, while an Extractor built
// with New carries its own defaults. Both delegate to the same
// implementation.
package extract
