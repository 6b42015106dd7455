// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

// Package xsettings provides layered, in-memory settings for an application.
// It offers a deep merge of nested key-value trees, a strict-access [Map]
// which normalizes keys and fails on missing ones, and a [Container] which
// holds per-type default settings and a lazily built settings singleton.
package xsettings
