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

package security

import (
	"regexp"
	"strings"

	"github.com/sylvadb/sylva/pkg/gql/gqlerror"
)

const (
	// RootUser is the user created during bootstrap. It cannot be dropped.
	RootUser = "root"

	// AdminRole is the role all administrative actions are checked
	// against. It cannot be dropped.
	AdminRole = "admin"

	// SystemDatabaseName names the database holding users, roles and
	// privileges. It cannot be dropped or stopped.
	SystemDatabaseName = "system"

	// DefaultDatabaseName is the database sessions land on when they do
	// not name one.
	DefaultDatabaseName = "sylva"
)

// Usernames and role names are 1-63 characters, start with a lowercase
// letter, digit or underscore, and contain only lowercase letters,
// digits, underscores, periods or hyphens.
var nameRE = regexp.MustCompile(`^[\p{Ll}0-9_][\p{Ll}0-9_.-]*$`)

const maxNameLength = 63

// NormalizeAndValidateUsername lowercases the given username and
// verifies it is acceptable. Invalid names are reported with a specific
// "invalid username" error rather than a generic one.
func NormalizeAndValidateUsername(username string) (string, error) {
	username = strings.ToLower(username)
	if !nameRE.MatchString(username) {
		return "", gqlerror.Newf(gqlerror.CodeInvalidName, "username %q invalid; usernames are case insensitive, must start with a letter, digit or underscore, may contain letters, digits, dashes, periods or underscores", username)
	}
	if len(username) > maxNameLength {
		return "", gqlerror.Newf(gqlerror.CodeInvalidName, "username %q invalid; usernames are at most %d characters", username, maxNameLength)
	}
	return username, nil
}

// ValidateRoleName verifies the given role name is acceptable. Role
// names are case sensitive and follow the username charset.
func ValidateRoleName(role string) error {
	if !nameRE.MatchString(strings.ToLower(role)) || role != strings.ToLower(role) {
		return gqlerror.Newf(gqlerror.CodeInvalidName, "role name %q invalid; role names must start with a letter, digit or underscore, may contain letters, digits, dashes, periods or underscores", role)
	}
	if len(role) > maxNameLength {
		return gqlerror.Newf(gqlerror.CodeInvalidName, "role name %q invalid; role names are at most %d characters", role, maxNameLength)
	}
	return nil
}

// Database names are 3-63 characters, start with a letter, and contain
// only lowercase letters, digits, periods or hyphens.
var databaseNameRE = regexp.MustCompile(`^[a-z][a-z0-9.-]*$`)

const (
	minDatabaseNameLength = 3
	maxDatabaseNameLength = 63
)

// ValidateDatabaseName verifies the given database name is acceptable.
// The returned error carries the reason; callers are expected to wrap
// it into their own error surface.
func ValidateDatabaseName(name string) error {
	if len(name) < minDatabaseNameLength || len(name) > maxDatabaseNameLength {
		return gqlerror.Newf(gqlerror.CodeInvalidParameterValue,
			"the provided database name must have a length between %d and %d characters",
			minDatabaseNameLength, maxDatabaseNameLength)
	}
	if !databaseNameRE.MatchString(name) {
		return gqlerror.Newf(gqlerror.CodeInvalidParameterValue,
			"the provided database name %q contains illegal characters; database names may contain lowercase letters, digits, dots and dashes, and must begin with a letter", name)
	}
	if name != SystemDatabaseName && strings.HasPrefix(name, SystemDatabaseName) {
		return gqlerror.Newf(gqlerror.CodeInvalidParameterValue,
			"the provided database name %q begins with the reserved prefix %q", name, SystemDatabaseName)
	}
	return nil
}
