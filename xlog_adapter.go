// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"github.com/actforgood/xlog"
	"github.com/spf13/cast"
)

// LogLevelProvider provides a level read from settings.
// It can be used to configure log level for a xlog.Logger.
// If the level key is not found, the default provided level is returned.
// As the level is read at each call, changing the setting during application
// run changes the logger's level in place.
func LogLevelProvider(
	settings Fetcher,
	lvlKey any,
	defaultLvl string,
	levelLabels map[xlog.Level]string,
) xlog.LevelProvider {
	labeledLevels := flipLevelLabels(levelLabels)

	return func() xlog.Level {
		value, _ := settings.Fetch(lvlKey, FetchWithDefault(defaultLvl))
		if lvl, found := labeledLevels[cast.ToString(value)]; found {
			return lvl
		}

		return labeledLevels[defaultLvl]
	}
}

// flipLevelLabels flips level labels map.
func flipLevelLabels(levelLabels map[xlog.Level]string) map[string]xlog.Level {
	flippedLevelLabels := make(map[string]xlog.Level, len(levelLabels))
	for lvl, label := range levelLabels {
		flippedLevelLabels[label] = lvl
	}

	return flippedLevelLabels
}

// LogConflictResolver decorates a [ConflictResolver] to log, at warning level,
// every key found in both merged trees with non map values.
// If next is nil, [SourceWins] is used.
// Passed loggerGetter is a function that returns the logger (the logger may
// itself be configured from the merged settings, this way they can be
// instantiated separately).
func LogConflictResolver(loggerGetter func() xlog.Logger, next ConflictResolver) ConflictResolver {
	if next == nil {
		next = SourceWins
	}

	return func(key string, dstValue, srcValue any) any {
		value := next(key, dstValue, srcValue)
		loggerGetter().Warn(
			xlog.MessageKey, "[xsettings] settings key conflict",
			"key", key,
			"dst", dstValue,
			"src", srcValue,
			"result", value,
		)

		return value
	}
}
