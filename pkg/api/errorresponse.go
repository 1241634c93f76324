package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// ErrorResponse is the common ARM error envelope:
// {"error": {"code": "...", "message": "..."}}.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a single ARM error and any nested details.
type ErrorDetail struct {
	Code           *string               `json:"code,omitempty"`
	Message        *string               `json:"message,omitempty"`
	Target         *string               `json:"target,omitempty"`
	Details        []*ErrorDetail        `json:"details,omitempty"`
	AdditionalInfo []*ErrorAdditionalInfo `json:"additionalInfo,omitempty"`
}

// ErrorAdditionalInfo carries service specific error information.
type ErrorAdditionalInfo struct {
	Type *string `json:"type,omitempty"`
	Info any     `json:"info,omitempty"`
}
