package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/trace"
	"portfolio/cmd/internal/logger"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
)

// RequestTrace는 모든 inbound HTTP 요청에 대해 Request ID와 Span ID를 보장하고,
// 이를 컨텍스트/헤더에 저장한 뒤 요청 완료 로그에 포함시킨다.
//
// 문의 폼 바디에는 개인정보가 들어 있으므로 바디 내용은 남기지 않고 크기만 기록한다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		// span 시퀀스를 0으로 초기화한다. (inbound 로그는 span_id=0,
		// CMS/폼 릴레이 호출은 1,2,3,... 로 증가)
		ctx := trace.WithRequestAndSpan(req.Context(), requestID, 0)
		c.Request = req.WithContext(ctx)

		currentSpan := trace.CurrentSpanID(ctx)
		c.Request.Header.Set(headerRequestID, requestID)
		c.Request.Header.Set(headerSpanID, currentSpan)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, currentSpan)

		c.Next()

		status := c.Writer.Status()
		fields := logger.Fields{
			"method":       c.Request.Method,
			"path":         c.Request.URL.Path,
			"route":        c.FullPath(),
			"query_params": queryParams(c.Request),
			"status":       status,
			"duration":     time.Since(start).String(),
			"client_ip":    c.ClientIP(),
			"request_id":   requestID,
			"span_id":      trace.CurrentSpanID(c.Request.Context()),
		}
		if c.Request.ContentLength > 0 {
			fields["body_bytes"] = c.Request.ContentLength
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.ErrorWithFields("completed request", fields)
		case status >= http.StatusBadRequest:
			logger.WarnWithFields("completed request", fields)
		default:
			logger.InfoWithFields("completed request", fields)
		}
	}
}

// queryParams 는 멀티 값 쿼리도 모두 보존하기 위해 map[string][]string 으로 돌려준다.
func queryParams(req *http.Request) map[string][]string {
	out := map[string][]string{}
	for key, values := range req.URL.Query() {
		if len(values) > 0 {
			out[key] = values
		}
	}
	return out
}
