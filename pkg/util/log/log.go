package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	azlog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"
	"github.com/sirupsen/logrus"
)

var (
	_, thisfile, _, _ = runtime.Caller(0)
	repopath          = strings.Replace(thisfile, "pkg/util/log/log.go", "", -1)
)

// RelativeFilePathPrettier changes absolute paths with relative paths
func RelativeFilePathPrettier(f *runtime.Frame) (string, string) {
	file := strings.TrimPrefix(f.File, repopath)
	function := f.Function[strings.LastIndexByte(f.Function, '/')+1:]
	return fmt.Sprintf("%s()", function), fmt.Sprintf(" %s:%d", file, f.Line)
}

// GetLogger returns a consistently configured log entry. An empty or
// unparseable level means info.
func GetLogger(level string) *logrus.Entry {
	logrus.SetReportCaller(true)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	log := &logrus.Logger{
		Out:          os.Stderr,
		Formatter:    &logrus.TextFormatter{FullTimestamp: true, CallerPrettyfier: RelativeFilePathPrettier},
		Hooks:        make(logrus.LevelHooks),
		Level:        lvl,
		ExitFunc:     os.Exit,
		ReportCaller: true,
	}

	return logrus.NewEntry(log)
}

// ForwardSDKEvents sends the azcore SDK's own diagnostic events to log at
// debug level. It is a no-op unless log is at debug level or lower.
func ForwardSDKEvents(log *logrus.Entry) {
	if !log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		azlog.SetListener(nil)
		return
	}

	azlog.SetEvents(azlog.EventRequest, azlog.EventResponse, azlog.EventRetryPolicy, azlog.EventLRO)
	azlog.SetListener(func(event azlog.Event, msg string) {
		log.WithField("sdk_event", string(event)).Debug(msg)
	})
}
