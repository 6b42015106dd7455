// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

const (
	// FormatJSON indicates JSON (indented) output.
	FormatJSON = "json"
	// FormatYAML indicates YAML output.
	FormatYAML = "yaml"
	// FormatTOML indicates TOML output.
	FormatTOML = "toml"
	// FormatProperties indicates (java) properties output, with "." separated flat keys.
	FormatProperties = "properties"
	// FormatIni indicates INI output. First level maps become sections,
	// deeper levels are flattened with "." inside their section.
	FormatIni = "ini"
	// FormatEnv indicates .env output, with "_" separated, upper case flat keys.
	FormatEnv = "env"
)

// listSeparator joins list values for flat formats.
const listSeparator = ","

// ErrUnknownFormat is an error returned by [Encode] if the format
// does not match any supported one.
var ErrUnknownFormat = errors.New("unknown settings format")

// Encode writes a settings tree into w, in given format.
// Supported formats are: json, yaml, toml, properties, ini, env.
// For flat formats (properties, ini, env), list values are joined with ",".
func Encode(w io.Writer, tree map[string]any, format string) error {
	plain := NewMap(tree).ToPlain() // every nested map becomes a map[string]any.

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(plain)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plain); err != nil {
			return err
		}

		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(plain)
	case FormatProperties:
		return encodeProperties(w, plain)
	case FormatIni:
		return encodeIni(w, plain)
	case FormatEnv:
		return encodeEnv(w, plain)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Encode writes the Map's plain form into w, in given format. See [Encode].
func (m *Map) Encode(w io.Writer, format string) error {
	return Encode(w, m.ToPlain(), format)
}

// encodeProperties writes the flat tree as properties.
func encodeProperties(w io.Writer, tree map[string]any) error {
	flatTree := Flatten(tree, ".")
	props := properties.NewProperties()
	props.DisableExpansion = true
	for _, key := range sortedKeys(flatTree) {
		if _, _, err := props.Set(key, flatValue(flatTree[key])); err != nil {
			return err
		}
	}
	_, err := props.Write(w, properties.UTF8)

	return err
}

// encodeIni writes the tree as ini, with first level maps as sections.
func encodeIni(w io.Writer, tree map[string]any) error {
	cfg := ini.Empty()
	for _, key := range sortedKeys(tree) {
		value := tree[key]
		nested, isMap := asPlainMap(value)
		if !isMap {
			if _, err := cfg.Section(ini.DefaultSection).NewKey(key, flatValue(value)); err != nil {
				return err
			}

			continue
		}

		section, err := cfg.NewSection(key)
		if err != nil {
			return err
		}
		flatNested := Flatten(nested, ".")
		for _, nestedKey := range sortedKeys(flatNested) {
			if _, err := section.NewKey(nestedKey, flatValue(flatNested[nestedKey])); err != nil {
				return err
			}
		}
	}
	_, err := cfg.WriteTo(w)

	return err
}

// encodeEnv writes the flat tree as .env content.
func encodeEnv(w io.Writer, tree map[string]any) error {
	flatTree := Flatten(tree, "_")
	envs := make(map[string]string, len(flatTree))
	for key, value := range flatTree {
		envs[strings.ToUpper(key)] = flatValue(value)
	}
	content, err := godotenv.Marshal(envs)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, content+"\n")

	return err
}

// flatValue returns the string form of a leaf value.
func flatValue(value any) string {
	switch val := value.(type) {
	case []string:
		return strings.Join(val, listSeparator)
	case []int:
		items := make([]string, len(val))
		for idx, item := range val {
			items[idx] = strconv.Itoa(item)
		}

		return strings.Join(items, listSeparator)
	case []any:
		items := make([]string, len(val))
		for idx, item := range val {
			items[idx] = flatValue(item)
		}

		return strings.Join(items, listSeparator)
	}

	if str, err := cast.ToStringE(value); err == nil {
		return str
	}

	return fmt.Sprint(value)
}

// sortedKeys returns the sorted keys of a map.
func sortedKeys(tree map[string]any) []string {
	keys := make([]string, 0, len(tree))
	for key := range tree {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
