// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package errors

import (
	"fmt"
	"strings"

	"github.com/samber/oops"
	"google.golang.org/grpc/codes"
)

// Code is the machine-readable identifier for an error.
type Code string

const (
	CodeStoreSnapshotWriteFailure Code = "store.snapshot.write.failure"
	CodeStoreSnapshotReadFailure  Code = "store.snapshot.read.failure"
	CodeStoreSnapshotCorrupt      Code = "store.snapshot.load.data_corruption"
	CodeStoreSnapshotPathInvalid  Code = "store.snapshot.path.invalid_input"
	CodeStoreSnapshotCodecInvalid Code = "store.snapshot.codec.invalid_input"
	CodeStoreStreamCancelled      Code = "store.stream.cancelled"
	CodeStoreEntryNotFound        Code = "store.entry.get.not_found"

	CodeConfigLoadReadFailure      Code = "config.load.read.failure"
	CodeConfigParseInvalidFormat   Code = "config.parse.invalid_format"
	CodeConfigValidateInvalidValue Code = "config.validate.invalid_value"

	CodeServerInternalFailure Code = "server.internal.failure"
	CodeServerConfigInvalid   Code = "server.config.invalid"
	CodeServerStartFailure    Code = "server.start.failure"
	CodeServerRateLimited     Code = "server.rate.exceeded"
	CodeServerNotImplemented  Code = "server.method.not_implemented"

	CodeCLIServerNotRunning Code = "cli.server.not_running"
	CodeCLIRequestFailure   Code = "cli.request.failure"
	CodeCLIResponseInvalid  Code = "cli.response.invalid"
	CodeCLISetupFailure     Code = "cli.setup.failure"
	CodeCLIInputInvalid     Code = "cli.input.invalid"
)

// Attr is a structured key/value context attached to an error.
type Attr struct {
	Key   string
	Value any
}

// FieldValue creates a structured error field.
func FieldValue(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Field is kept as the primary helper for terse callsites.
func Field(key string, value any) Attr {
	return FieldValue(key, value)
}

func FieldKey(value string) Attr {
	return Field("key", value)
}

func FieldPath(value string) Attr {
	return Field("path", value)
}

func FieldMethod(value string) Attr {
	return Field("method", value)
}

func New(code Code, msg string, fields ...Attr) error {
	return oops.Code(code).With(flatten(fields)...).New(msg)
}

func Errorf(code Code, format string, args ...any) error {
	return oops.Code(code).Errorf(format, args...)
}

func Wrap(err error, code Code, msg string, fields ...Attr) error {
	if err == nil {
		return nil
	}

	return oops.Code(code).With(flatten(fields)...).Wrapf(err, "%s", msg)
}

func Wrapf(err error, code Code, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return oops.Code(code).Wrapf(err, format, args...)
}

// With adds structured fields to an existing error chain.
func With(err error, fields ...Attr) error {
	if err == nil {
		return nil
	}

	code := CodeOf(err)
	if code == "" {
		code = CodeServerInternalFailure
	}

	return oops.Code(code).With(flatten(fields)...).Wrap(err)
}

func CodeOf(err error) Code {
	if err == nil {
		return ""
	}

	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}

	if code, ok := oopsErr.Code().(Code); ok {
		return code
	}

	if code, ok := oopsErr.Code().(string); ok {
		return Code(code)
	}

	return Code(fmt.Sprintf("%v", oopsErr.Code()))
}

func FieldsOf(err error) map[string]any {
	if err == nil {
		return nil
	}

	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return nil
	}

	return oopsErr.Context()
}

func HasCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}

func IsNotFound(err error) bool {
	return reason(CodeOf(err)) == "not_found"
}

func IsInvalidInput(err error) bool {
	r := reason(CodeOf(err))
	return r == "invalid" || r == "invalid_input" || r == "invalid_value" || r == "invalid_format"
}

// IsDataCorruption reports whether err describes unreadable persisted state.
func IsDataCorruption(err error) bool {
	return reason(CodeOf(err)) == "data_corruption"
}

// IsIOFailure reports whether err is a snapshot read or write failure.
func IsIOFailure(err error) bool {
	code := CodeOf(err)
	return strings.HasPrefix(string(code), "store.snapshot.") && reason(code) == "failure"
}

func IsCancelled(err error) bool {
	return reason(CodeOf(err)) == "cancelled"
}

func IsRateLimited(err error) bool {
	return reason(CodeOf(err)) == "exceeded"
}

// GRPCStatus maps an error to the gRPC status code reported to callers.
func GRPCStatus(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case HasCode(err, CodeServerNotImplemented):
		return codes.Unimplemented
	case IsNotFound(err):
		return codes.NotFound
	case IsInvalidInput(err):
		return codes.InvalidArgument
	case IsCancelled(err):
		return codes.Canceled
	case IsRateLimited(err):
		return codes.ResourceExhausted
	case IsDataCorruption(err):
		return codes.DataLoss
	case IsIOFailure(err):
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

func flatten(fields []Attr) []any {
	pairs := make([]any, 0, len(fields)*2)
	for _, field := range fields {
		if field.Key == "" {
			continue
		}
		pairs = append(pairs, field.Key, field.Value)
	}
	return pairs
}

func reason(code Code) string {
	if code == "" {
		return ""
	}

	raw := string(code)
	idx := strings.LastIndex(raw, ".")
	if idx == -1 || idx == len(raw)-1 {
		return raw
	}
	return raw[idx+1:]
}
