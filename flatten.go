// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

// Flatten returns the leaves of a settings tree under flat keys, made of
// the nested keys joined with given separator.
//
// Example, given the settings:
//
//	{
//	  "mysql": {
//	    "host": "127.0.0.1",
//	    "port": 3306
//	  },
//	  "debug": true
//	}
//
// Flatten(settings, ".") returns {"mysql.host": "127.0.0.1", "mysql.port": 3306, "debug": true}.
// Empty nested maps have no leaves, so they do not appear in the result.
func Flatten(tree map[string]any, separator string) map[string]any {
	flatTree := make(map[string]any, len(tree))
	flattenInto(0, "", separator, tree, flatTree)

	return flatTree
}

// flattenInto appends the flat keys of currTree to flatTree.
func flattenInto(lvl uint, prevKey, separator string, currTree, flatTree map[string]any) {
	for key, value := range currTree {
		flatKey := key
		if lvl > 0 {
			flatKey = prevKey + separator + key
		}

		if nested, isMap := asPlainMap(value); isMap {
			flattenInto(lvl+1, flatKey, separator, nested, flatTree)
		} else {
			flatTree[flatKey] = value
		}
	}
}
