package api

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestURL := c.Request.URL.String()

		c.Next()

		duration := time.Since(start)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("url", requestURL),
			zap.String("remote", c.ClientIP()),
			zap.Int("size", c.Writer.Size()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
		}

		fn := zap.L().Debug
		if c.Writer.Status() >= http.StatusInternalServerError {
			fn = zap.L().Error
		}

		fn(fmt.Sprintf("%s %s (%d) in %s", c.Request.Method, requestURL, c.Writer.Status(), duration), fields...)
	}
}

// recovery recover from any panics and write a 500 if the connection is still alive
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			zap.L().Error("[Recovery] panic recovered",
				zap.Any("panic", r),
				zap.Stack("stack"),
				zap.String("method", c.Request.Method),
				zap.String("url", c.Request.URL.String()))

			err, ok := r.(error)
			if ok && brokenPipe(err) {
				c.Error(err) // nolint: errcheck
				c.Abort()
				return
			}

			c.AbortWithStatus(http.StatusInternalServerError)
		}()

		c.Next()
	}
}

func brokenPipe(err error) bool {
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}

	var sysErr *os.SyscallError
	if !errors.As(opErr.Err, &sysErr) {
		return false
	}

	message := strings.ToLower(sysErr.Error())
	return strings.Contains(message, "broken pipe") || strings.Contains(message, "connection reset by peer")
}
