package api

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"bourse/internal/domain"
	"bourse/internal/logger"
	l2_service "bourse/internal/service/l2"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                      *sql.DB
	PortfolioHistoryService l2_service.PortfolioHistoryService
	JwtDecodeToken          string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsConfig))

	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to bourse"})
	})

	portfolio := router.Group("/portfolio", m.authMiddleware)
	portfolio.GET("/history", m.getPortfolioHistory)
	portfolio.GET("/history/summary", m.getPortfolioHistorySummary)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, http.StatusInternalServerError)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= http.StatusInternalServerError {
		log.Error(err.Error())
	} else {
		log.Info(err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware attaches a request-scoped logger and performance
// profile to the request context and logs the outcome.
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	start := time.Now().UTC()
	requestID := uuid.New()

	log := logger.FromContext(c.Request.Context()).With(
		"requestID", requestID.String(),
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	profile, endProfile := domain.NewProfile()

	ctx := logger.WithLogger(c.Request.Context(), log)
	ctx = domain.WithProfile(ctx, profile)
	c.Request = c.Request.WithContext(ctx)

	c.Next()

	endProfile()
	fields := []interface{}{
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	}
	if len(profile.Spans) > 0 {
		if spans, err := profile.ToJsonBytes(); err == nil {
			fields = append(fields, "profile", string(spans))
		}
	}
	log.Infow("request completed", fields...)
}
