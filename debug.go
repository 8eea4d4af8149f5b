// Copyright 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ieee80211

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"
)

// debugEnabled controls whether debug logging is active
var debugEnabled atomic.Bool

// debugOutput is where debug lines go; nil means stderr
var debugOutput atomic.Pointer[io.Writer]

func init() {
	// Enable debug logging if DEBUG environment variable is set
	if os.Getenv("IEEE80211_DEBUG") != "" || os.Getenv("DEBUG") != "" {
		debugEnabled.Store(true)
	}
}

// DebugEnabled reports whether debug logging is on.
// Callers can check it to skip building expensive arguments.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// Debugf prints debug information when debug mode is enabled.
// Nothing is formatted otherwise, so it is safe on decode paths.
func Debugf(format string, args ...any) {
	if !debugEnabled.Load() {
		return
	}
	writeDebug(fmt.Sprintf(format, args...))
}

// Debugln prints debug information when debug mode is enabled.
func Debugln(args ...any) {
	if !debugEnabled.Load() {
		return
	}
	writeDebug(fmt.Sprint(args...))
}

func writeDebug(message string) {
	var w io.Writer = os.Stderr
	if p := debugOutput.Load(); p != nil {
		w = *p
	}
	timestamp := time.Now().Format("15:04:05.000")
	_, _ = fmt.Fprintf(w, "%s DEBUG: %s\n", timestamp, message)
}

// SetDebugEnabled allows programmatic control of debug logging
// Useful for testing or application-controlled debug modes
func SetDebugEnabled(enabled bool) {
	debugEnabled.Store(enabled)
}

// SetDebugOutput redirects debug lines to w. A nil writer restores stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		debugOutput.Store(nil)
		return
	}
	debugOutput.Store(&w)
}
