package core

// error_messages.go maps technical errors to user-friendly messages with
// codes for support reference. When a run fails, the CLI logs the mapped
// message alongside the technical error; users can quote the code.
//
// Codes by category:
//
//	ARG001  - Invalid parameter (sample fraction, column list, delimiter)
//	FILE001 - Input file missing
//	FILE002 - Input file empty
//	COL001  - Target column not found in input
//	LOAD001 - Input could not be parsed as CSV
//	LOAD002 - Unsupported or undetectable encoding
//	LOAD003 - Any other failure while reading the input
//	ANON001 - Failure during sampling or substitution
//	SAVE001 - Failure while writing the output
//	ERR000  - Fallback for anything unanticipated
//
// Patterns are matched case-insensitively with strings.Contains; the first
// match wins, so specific patterns come before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // what happened (user-friendly)
	Action  string // what to do about it
	Code    string // error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "invalid parameter",
		msg: UserMessage{
			Message: "A run option has an invalid value",
			Action:  "Check the flag values; sample_size must be between 0.0 and 1.0",
			Code:    "ARG001",
		},
	},
	{
		pattern: "input file not found",
		msg: UserMessage{
			Message: "The input file does not exist",
			Action:  "Check the path given to --input_file",
			Code:    "FILE001",
		},
	},
	{
		pattern: "no such file",
		msg: UserMessage{
			Message: "The input file does not exist",
			Action:  "Check the path given to --input_file",
			Code:    "FILE001",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The input file is empty",
			Action:  "Provide a CSV file with at least a header row",
			Code:    "FILE002",
		},
	},
	{
		pattern: "not found in input",
		msg: UserMessage{
			Message: "A column selected for anonymization is not in the input",
			Action:  "Check --columns against the file's header (or column_N names with --no_header)",
			Code:    "COL001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "The input could not be parsed as CSV",
			Action:  "Check the delimiter and that every row has the same number of fields",
			Code:    "LOAD001",
		},
	},
	{
		pattern: "unsupported encoding",
		msg: UserMessage{
			Message: "The input encoding is not supported",
			Action:  "Pass a known charset with --encoding, e.g. utf-8 or latin1",
			Code:    "LOAD002",
		},
	},
	{
		pattern: "detecting encoding",
		msg: UserMessage{
			Message: "The input encoding could not be detected",
			Action:  "Pass the charset explicitly with --encoding",
			Code:    "LOAD002",
		},
	},
	{
		pattern: "loading",
		msg: UserMessage{
			Message: "The input file could not be read",
			Action:  "Check file permissions and that the file is valid CSV",
			Code:    "LOAD003",
		},
	},
	{
		pattern: "anonymizing",
		msg: UserMessage{
			Message: "Sampling or substitution failed",
			Action:  "Re-run; if it persists, report the logged error",
			Code:    "ANON001",
		},
	},
	{
		pattern: "saving",
		msg: UserMessage{
			Message: "The output file could not be written",
			Action:  "Check disk space and permissions on the output path",
			Code:    "SAVE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the logged error for details",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, the ERR000 fallback is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
