// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/decred/slog"

	"github.com/katalvlaran/gf2/solve"
	"github.com/katalvlaran/gf2/wordhash"
)

// backendLog is the logging backend used to create all subsystem loggers.
// Logs go to stderr so that results on stdout stay pipeable.
var backendLog = slog.NewBackend(os.Stderr)

var (
	log     = backendLog.Logger("MAIN")
	solvLog = backendLog.Logger("SOLV")
	wordLog = backendLog.Logger("WORD")
)

func init() {
	solve.UseLogger(solvLog)
	wordhash.UseLogger(wordLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"MAIN": log,
	"SOLV": solvLog,
	"WORD": wordLog,
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.
func setLogLevels(logLevel string) {
	level, _ := slog.LevelFromString(logLevel)
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}

// parseAndSetDebugLevels accepts either a single level ("debug") or a list of
// subsystem=level pairs ("SOLV=trace,WORD=info").
func parseAndSetDebugLevels(debugLevel string) error {
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if _, ok := slog.LevelFromString(debugLevel); !ok {
			return fmt.Errorf("the specified debug level [%v] is invalid", debugLevel)
		}
		setLogLevels(debugLevel)
		return nil
	}

	for _, pair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(pair, "=")
		if len(fields) != 2 {
			return fmt.Errorf("the specified debug level contains an invalid "+
				"subsystem/level pair [%v]", pair)
		}
		subsysID, logLevel := fields[0], fields[1]
		logger, ok := subsystemLoggers[subsysID]
		if !ok {
			return fmt.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsystems %v", subsysID, supportedSubsystems())
		}
		level, ok := slog.LevelFromString(logLevel)
		if !ok {
			return fmt.Errorf("the specified debug level [%v] is invalid", logLevel)
		}
		logger.SetLevel(level)
	}
	return nil
}
