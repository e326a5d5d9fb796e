package cql

// SimpleStatement is a caller-built statement: query text, positional values
// and optional per-statement execution settings. It implements Statement and
// is the concrete form the template produces when normalizing raw text.
//
// The template never mutates a caller-owned SimpleStatement; option
// application always happens on a derived copy.
type SimpleStatement struct {
	stmt   string
	values []interface{}
	opts   QueryOptions
}

var _ Statement = (*SimpleStatement)(nil)

func NewStatement(stmt string, values ...interface{}) *SimpleStatement {
	return &SimpleStatement{stmt: stmt, values: values}
}

func (s *SimpleStatement) CQL() string           { return s.stmt }
func (s *SimpleStatement) Values() []interface{} { return s.values }
func (s *SimpleStatement) Options() QueryOptions { return s.opts }

// SetPageSize sets the fetch page size for this statement.
func (s *SimpleStatement) SetPageSize(n int) *SimpleStatement {
	s.opts.PageSize = n
	return s
}

func (s *SimpleStatement) SetConsistency(c Consistency) *SimpleStatement {
	s.opts.Consistency = ConsistencyLevel(c)
	return s
}

func (s *SimpleStatement) SetSerialConsistency(sc SerialConsistency) *SimpleStatement {
	s.opts.SerialConsistency = SerialConsistencyLevel(sc)
	return s
}

func (s *SimpleStatement) SetExecutionProfile(name string) *SimpleStatement {
	s.opts.ExecutionProfile = name
	return s
}

// derived wraps any Statement with a replacement option set. It is the
// executable unit handed to the session after the template options have been
// merged in; the wrapped statement stays untouched.
type derived struct {
	Statement
	opts QueryOptions
}

func (d derived) Options() QueryOptions { return d.opts }

// withOptions returns stmt with opts merged over its own options. Options set
// on the template win over per-statement settings, matching the behavior of
// applying each template setter to the statement about to execute.
func withOptions(stmt Statement, opts QueryOptions) Statement {
	return derived{Statement: stmt, opts: opts.applyTo(stmt.Options())}
}
