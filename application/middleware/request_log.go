package middleware

import (
	"io/ioutil"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gookit/goutil/mathutil"
	"go.uber.org/zap"

	"github.com/omnibuildplatform/omni-cql/app"
)

func RequestLog() gin.HandlerFunc {
	//skip success healthiness and readiness check endpoints
	skip := map[string]int{
		"/v1/health": 200,
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		reqId := uuid.NewString()

		c.Set("req_id", reqId)

		c.Next()

		// log post/put data
		postData := ""
		if c.Request.Method != "GET" {
			buf, _ := ioutil.ReadAll(c.Request.Body)
			postData = string(buf)
		}
		if statusCode, ok := skip[path]; ok {
			if statusCode == c.Writer.Status() {
				return
			}
		}

		app.Logger.Info(
			"completed",
			zap.String("req_id", reqId),
			zap.Namespace("context"),
			zap.String("req_date", start.Format("2006-01-02 15:04:05")),
			zap.String("method", c.Request.Method),
			zap.String("uri", c.Request.URL.String()),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("http_status", c.Writer.Status()),
			zap.String("elapsed_time", mathutil.ElapsedTime(start)),
			zap.String("post_data", postData),
		)
	}
}
