package logger

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// lineWriter is an io.Writer that hands each written line to emit.
type lineWriter func(line string)

func (w lineWriter) Write(p []byte) (int, error) {
	if line := string(bytes.TrimRight(p, "\r\n")); line != "" {
		w(line)
	}

	return len(p), nil
}

// SetupStdLog sends the standard library logger, used by net/http and a few
// drivers, to l at warn level.
func SetupStdLog(l Interface) {
	log.SetFlags(0)
	log.SetOutput(lineWriter(func(line string) { l.Warn("%s", line) }))
}

// SetupGin sends Gin's debug and error output to l. Route registration is
// logged at debug level.
func SetupGin(l Interface) {
	gin.DefaultWriter = lineWriter(func(line string) { l.Info("%s", line) })
	gin.DefaultErrorWriter = lineWriter(func(line string) { l.Error(line) })
	gin.DebugPrintRouteFunc = func(method, path, handler string, handlers int) {
		l.Debug("gin - route %s %s -> %s (%d handlers)", method, path, handler, handlers)
	}
}

// GinRequestLogger logs one line per request in place of gin.Logger. The
// request id is read from the idHeader response header once the chain has
// run. Requests for skipPaths are not logged.
func GinRequestLogger(l Interface, idHeader string, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, ok := skip[path]; ok {
			c.Next()

			return
		}

		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		line := fmt.Sprintf("http - %s %s %d %s id=%s",
			c.Request.Method, path, status, time.Since(start).Round(time.Microsecond), c.Writer.Header().Get(idHeader))

		if errs := c.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
			line += " errors=" + errs
		}

		switch {
		case status >= http.StatusInternalServerError:
			l.Error(line)
		case status >= http.StatusBadRequest:
			l.Warn("%s", line)
		default:
			l.Info("%s", line)
		}
	}
}
