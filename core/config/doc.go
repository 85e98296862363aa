// Package config resolves provider credentials from layered sources: a
// structured secrets file first, then the process environment. Absence of a
// key is not an error; callers decide whether a missing credential is fatal.
// Values are resolved fresh on every call and are never cached, so rotated
// keys take effect immediately. Credentials are never logged.
package config
