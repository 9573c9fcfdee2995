// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

//go:build !exp_debug

package expruntime

// DebugBuild reports whether this is a debug build. Debug-only experiments
// default to on exactly when it is true.
const DebugBuild = false
