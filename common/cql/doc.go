// Package cql implements a thin execution template in front of a CQL
// session. The template normalizes the different ways a caller can express a
// statement (raw text, text plus positional values, an explicit statement
// value, or a prepared-statement creator with a binder), applies the
// template-wide execution settings to whichever form was used, runs exactly
// one execute call against the session, and maps the resulting rows into
// caller-supplied types with strict cardinality rules.
//
// Driver specifics stay behind the Session, PreparedStatement, ResultSet and
// Row interfaces; see the store/cassandra package for the gocql-backed
// implementation. Driver failures are rewritten into the package error
// taxonomy (ConnectionError, InvalidQueryError, UncategorizedError) by an
// ErrorTranslator supplied together with the session, so callers can
// distinguish connectivity problems from query problems regardless of which
// statement form they used.
package cql
