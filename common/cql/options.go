package cql

// QueryOptions bundles the execution settings a template applies to every
// statement it issues: page size, consistency level, serial consistency
// level and execution-profile name. The zero value means "nothing set".
//
// An unset field never touches the corresponding statement attribute, so the
// driver default stays in effect. Options are read-only after template
// construction; per-call application works on derived statements only.
type QueryOptions struct {
	PageSize          int
	Consistency       *Consistency
	SerialConsistency *SerialConsistency
	ExecutionProfile  string
}

// ConsistencyLevel returns a pointer suitable for QueryOptions fields.
func ConsistencyLevel(c Consistency) *Consistency { return &c }

// SerialConsistencyLevel returns a pointer suitable for QueryOptions fields.
func SerialConsistencyLevel(s SerialConsistency) *SerialConsistency { return &s }

// applyTo merges the set fields of o into base and returns the result. Fields
// unset in o keep whatever base carries. Application is idempotent: no field
// depends on another's outcome.
func (o QueryOptions) applyTo(base QueryOptions) QueryOptions {
	if o.PageSize > 0 {
		base.PageSize = o.PageSize
	}
	if o.Consistency != nil {
		c := *o.Consistency
		base.Consistency = &c
	}
	if o.SerialConsistency != nil {
		s := *o.SerialConsistency
		base.SerialConsistency = &s
	}
	if o.ExecutionProfile != "" {
		base.ExecutionProfile = o.ExecutionProfile
	}
	return base
}
