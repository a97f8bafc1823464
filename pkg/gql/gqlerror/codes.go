// Copyright 2025 The Sylva Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package gqlerror

// Code classifies an error produced while translating or checking a
// query. The values follow the SQLSTATE convention so that clients can
// branch on the class prefix without parsing messages.
type Code string

const (
	// CodeSyntax reports a statement the language accepts structurally
	// but rejects semantically, for example a call to an unknown
	// administrative procedure.
	CodeSyntax Code = "42601"

	// CodeInvalidName reports a user or role name that fails validation.
	CodeInvalidName Code = "42602"

	// CodeInvalidParameterValue reports a well-formed argument with an
	// unacceptable value, for example a malformed database name.
	CodeInvalidParameterValue Code = "22023"

	// CodeUndefined is returned by GetCode when no code was attached
	// anywhere in the error chain.
	CodeUndefined Code = "XXUUU"
)
