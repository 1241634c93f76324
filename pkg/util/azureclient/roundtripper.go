package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// outboundRequests tags log entries for requests sent to ARM.
	outboundRequests = "outboundRequests"

	responseCode         = "response_status_code"
	contentLength        = "content_length"
	durationMilliseconds = "duration_milliseconds"
	correlationIdHeader  = "X-Ms-Correlation-Request-Id"
)

type PolicyFunc func(req *policy.Request) (*http.Response, error)

func (p PolicyFunc) Do(req *policy.Request) (*http.Response, error) {
	return p(req)
}

var _ policy.Policy = PolicyFunc(nil)

// NewLoggingPolicy returns a per-call policy logging the start and end of
// every request. A correlation id is generated when the caller did not set one.
func NewLoggingPolicy(log *logrus.Entry) policy.Policy {
	return PolicyFunc(func(req *policy.Request) (*http.Response, error) {
		return loggingRoundTripper(log, req.Raw(), req.Next)
	})
}

func loggingRoundTripper(log *logrus.Entry, req *http.Request, next func() (*http.Response, error)) (*http.Response, error) {
	correlationID := req.Header.Get(correlationIdHeader)
	if correlationID == "" {
		correlationID = uuid.Must(uuid.NewV4()).String()
		req.Header.Set(correlationIdHeader, correlationID)
	}

	requestTime := time.Now()
	l := log.WithFields(logrus.Fields{
		"request_method": req.Method,
		"request_URL":    req.URL.Host,
		"request_path":   req.URL.Path,
		"correlation_id": correlationID,
		"LOGKIND":        outboundRequests,
	})

	l.Info("HttpRequestStart")

	res, err := next()

	l = enrichLogWithResponse(l, res, requestTime)
	if err != nil {
		l = l.WithError(err)
	}
	l.Info("HttpRequestEnd")

	return res, err
}

func enrichLogWithResponse(l *logrus.Entry, res *http.Response, requestTime time.Time) *logrus.Entry {
	if res == nil {
		return l.WithFields(logrus.Fields{
			responseCode:         "0",
			durationMilliseconds: time.Since(requestTime).Milliseconds(),
		})
	}

	return l.WithFields(logrus.Fields{
		responseCode:         res.StatusCode,
		contentLength:        res.ContentLength,
		durationMilliseconds: time.Since(requestTime).Milliseconds(),
	})
}
