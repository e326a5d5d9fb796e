package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/omnibuildplatform/omni-cql/common/cql"
)

type (
	// QueryRequest carries one CQL statement with optional positional values
	// and per-request execution settings. Omitted settings fall back to the
	// template defaults and, below those, the driver defaults.
	QueryRequest struct {
		CQL               string        `json:"cql" binding:"required"`
		Values            []interface{} `json:"values"`
		PageSize          int           `json:"pageSize"`
		Consistency       string        `json:"consistency"`
		SerialConsistency string        `json:"serialConsistency"`
		ExecutionProfile  string        `json:"executionProfile"`
	}

	QueryResponse struct {
		Rows []map[string]interface{} `json:"rows"`
	}

	SingleRowResponse struct {
		Row map[string]interface{} `json:"row"`
	}

	ExecuteResponse struct {
		Applied bool `json:"applied"`
	}

	// QueryController serves the gateway endpoints on top of an execution
	// template. The provider indirection lets the gateway swap the template
	// on configuration reload without restarting handlers.
	QueryController struct {
		template func() *cql.Template
		logger   *zap.Logger
	}
)

func NewQueryController(template func() *cql.Template, logger *zap.Logger) *QueryController {
	return &QueryController{
		template: template,
		logger:   logger,
	}
}

func (q *QueryController) statement(request QueryRequest) (*cql.SimpleStatement, error) {
	stmt := cql.NewStatement(request.CQL, request.Values...)
	if request.PageSize > 0 {
		stmt.SetPageSize(request.PageSize)
	}
	if request.Consistency != "" {
		level, err := cql.ParseConsistency(request.Consistency)
		if err != nil {
			return nil, err
		}
		stmt.SetConsistency(level)
	}
	if request.SerialConsistency != "" {
		level, err := cql.ParseSerialConsistency(request.SerialConsistency)
		if err != nil {
			return nil, err
		}
		stmt.SetSerialConsistency(level)
	}
	if request.ExecutionProfile != "" {
		stmt.SetExecutionProfile(request.ExecutionProfile)
	}
	return stmt, nil
}

// Query runs a statement and returns every row as a column-name map, in
// source order.
func (q *QueryController) Query(c *gin.Context) {
	var request QueryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stmt, err := q.statement(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	results, err := q.template().QueryForListStatement(c.Request.Context(), stmt, cql.ColumnMapRowMapper())
	if err != nil {
		q.fail(c, err)
		return
	}
	rows := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		rows = append(rows, r.(map[string]interface{}))
	}
	c.JSON(http.StatusOK, QueryResponse{Rows: rows})
}

// QueryOne runs a statement expected to produce exactly one row.
func (q *QueryController) QueryOne(c *gin.Context) {
	var request QueryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stmt, err := q.statement(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := q.template().QueryForObjectStatement(c.Request.Context(), stmt, cql.ColumnMapRowMapper())
	if err != nil {
		q.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, SingleRowResponse{Row: result.(map[string]interface{})})
}

// Execute runs a statement and reports the conditional-update outcome.
func (q *QueryController) Execute(c *gin.Context) {
	var request QueryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stmt, err := q.statement(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	applied, err := q.template().ExecuteStatement(c.Request.Context(), stmt)
	if err != nil {
		q.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ExecuteResponse{Applied: applied})
}

// StoreHealth pings the backing store through the template.
func (q *QueryController) StoreHealth(c *gin.Context) {
	var version string
	err := q.template().QueryForScalar(c.Request.Context(), "SELECT release_version FROM system.local", &version)
	if err != nil {
		q.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "up", "releaseVersion": version})
}

// fail maps the template error taxonomy onto HTTP statuses: query problems
// are the client's fault, connectivity problems are retryable, cardinality
// violations signal a contract mismatch.
func (q *QueryController) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case cql.IsInvalidQueryError(err):
		status = http.StatusBadRequest
	case cql.IsConnectionError(err):
		status = http.StatusServiceUnavailable
	case cql.IsEmptyResultError(err):
		status = http.StatusNotFound
	case cql.IsIncorrectResultSizeError(err):
		status = http.StatusConflict
	}
	q.logger.Warn("request failed", zap.Int("status", status), zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}
