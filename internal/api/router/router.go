package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LuiSauter/data-mart/config"
	"github.com/LuiSauter/data-mart/internal/api/handler"
	"github.com/LuiSauter/data-mart/internal/api/middleware"
)

// Setup builds the gin engine with every route registered.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Logger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		faculties := v1.Group("/faculties")
		{
			faculties.GET("", h.Faculty.Report)
			faculties.GET("/all", h.Faculty.List)
			faculties.POST("", h.Faculty.Create)
			faculties.GET("/:id", h.Faculty.Get)
			faculties.PATCH("/:id", h.Faculty.Update)
			faculties.DELETE("/:id", h.Faculty.Delete)
		}

		careers := v1.Group("/careers")
		{
			careers.GET("", h.Career.Report)
			careers.GET("/all", h.Career.List)
			careers.POST("", h.Career.Create)
			careers.GET("/:id", h.Career.Get)
			careers.PATCH("/:id", h.Career.Update)
			careers.DELETE("/:id", h.Career.Delete)
		}

		localities := v1.Group("/localities")
		{
			localities.GET("", h.Locality.Report)
			localities.GET("/all", h.Locality.List)
			localities.POST("", h.Locality.Create)
			localities.GET("/:id", h.Locality.Get)
			localities.PATCH("/:id", h.Locality.Update)
			localities.DELETE("/:id", h.Locality.Delete)
		}

		modes := v1.Group("/modes")
		{
			modes.GET("", h.Mode.Report)
			modes.GET("/all", h.Mode.List)
			modes.POST("", h.Mode.Create)
			modes.GET("/:id", h.Mode.Get)
			modes.PATCH("/:id", h.Mode.Update)
			modes.DELETE("/:id", h.Mode.Delete)
		}

		semesters := v1.Group("/semesters")
		{
			semesters.GET("", h.Semester.Report)
			semesters.GET("/all", h.Semester.List)
			semesters.POST("", h.Semester.Create)
			semesters.GET("/:id", h.Semester.Get)
			semesters.PATCH("/:id", h.Semester.Update)
			semesters.DELETE("/:id", h.Semester.Delete)
		}

		indicators := v1.Group("/indicators")
		{
			indicators.GET("", h.Indicator.List)
			indicators.POST("", h.Indicator.Create)
			indicators.GET("/:id", h.Indicator.Get)
			indicators.PATCH("/:id", h.Indicator.Update)
			indicators.DELETE("/:id", h.Indicator.Delete)
		}

		// Filter endpoints reuse the report handlers so the frontend
		// can populate selectors with aggregated values.
		filters := v1.Group("/filters")
		{
			filters.GET("/faculties", h.Faculty.Report)
			filters.GET("/localities", h.Locality.Report)
		}

		v1.POST("/excel/upload", h.Excel.Upload)
	}

	return r
}
