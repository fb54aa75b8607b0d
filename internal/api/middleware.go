package api

import (
	"log/slog"
	"net/http"
	"time"

	"arena45/backend/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const (
	HeaderRequestID     = "X-Request-ID"
	contextRequestIDKey = "requestID"
)

// RequestID reuses an incoming X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(contextRequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(contextRequestIDKey)
}

// RequestLogger logs one line per request, at warn for 4xx and error for 5xx.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}
		logger.LogAttrs(c.Request.Context(), level, "request", attrs...)
	}
}

// Recovery turns a panic into a 500 envelope.
func Recovery(logger *slog.Logger, exposeDetail bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "recovered from panic",
			slog.String("request_id", requestID(c)),
			slog.String("path", c.Request.URL.Path),
			slog.Any("panic", recovered),
		)
		resp := Response{Success: false, Message: "Internal server error"}
		if exposeDetail {
			if err, ok := recovered.(error); ok {
				resp.Error = err.Error()
			}
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}

func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

// RateLimit allows limit requests per client IP in each fixed period.
// Every call gets its own in-memory store, so groups never share a budget.
func RateLimit(name string, limit int64, period time.Duration, message string) gin.HandlerFunc {
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          "ratelimit:" + name,
		CleanUpInterval: period,
	})
	instance := limiter.New(store, limiter.Rate{Period: period, Limit: limit})

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			abortWithError(c, http.StatusTooManyRequests, message)
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			_ = c.Error(err)
			abortWithError(c, http.StatusInternalServerError, "Internal server error")
		}),
	)
}
