// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"github.com/mitchellh/mapstructure"
)

// DecodeTagName is the struct field tag [Decode] looks at.
// Untagged fields are matched by name, case insensitively.
const DecodeTagName = "settings"

// Decode decodes a settings tree into out, which must be a pointer
// to a struct or to a map.
// Input is weakly typed ("8080" can fill an int field), comma separated
// strings can fill slices and strings like "3s" can fill [time.Duration]s.
//
// Usage example:
//
//	type DBConfig struct {
//		Host    string        `settings:"host"`
//		Port    int           `settings:"port"`
//		Timeout time.Duration `settings:"timeout"`
//	}
//	var dbCfg DBConfig
//	err := xsettings.Decode(tree, &dbCfg)
func Decode(tree map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           out,
		TagName:          DecodeTagName,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(tree)
}

// Decode decodes the Map into out. See [Decode].
func (m *Map) Decode(out any) error {
	return Decode(m.ToPlain(), out)
}

// Decode decodes the settings into out. See [Decode].
func (s *Settings) Decode(out any) error {
	return s.store.Decode(out)
}
