// Package dberr defines the engine's error taxonomy.
//
// Every failure the engine returns is one of the typed errors below rather
// than a bare fmt.Errorf string, so callers (the executor, the shell, the
// demo web app) can branch on the kind with errors.As instead of matching
// message text. The pattern follows the tagged-error style used for a
// similarly small relational layer in the retrieved examples (table/column
// resolution errors as distinct exported types, each carrying the offending
// name).
package dberr
