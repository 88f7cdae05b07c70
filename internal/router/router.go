package router

import (
	"github.com/gin-gonic/gin"

	"github.com/frotadocs/frotadocs-backend/config"
	"github.com/frotadocs/frotadocs-backend/internal/app/controller"
	"github.com/frotadocs/frotadocs-backend/internal/middleware"
)

type Router struct {
	companyController *controller.CompanyController
	driverController  *controller.DriverController
	vehicleController *controller.VehicleController
	uploadController  *controller.UploadController
	alertController   *controller.AlertController
	configController  *controller.ConfigController
	config            *config.Config
}

func NewRouter(
	companyController *controller.CompanyController,
	driverController *controller.DriverController,
	vehicleController *controller.VehicleController,
	uploadController *controller.UploadController,
	alertController *controller.AlertController,
	configController *controller.ConfigController,
	cfg *config.Config,
) *Router {
	return &Router{
		companyController: companyController,
		driverController:  driverController,
		vehicleController: vehicleController,
		uploadController:  uploadController,
		alertController:   alertController,
		configController:  configController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "FROTADOCS API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		companies := v1.Group("/companies")
		{
			companies.GET("", r.companyController.ListCompanies)
			companies.POST("", r.companyController.CreateCompany)
			companies.PUT("/:id/status", r.companyController.UpdateCompanyStatus)
		}

		drivers := v1.Group("/drivers")
		{
			drivers.GET("", r.driverController.ListDrivers)
			drivers.POST("", r.driverController.CreateDriver)
		}

		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("", r.vehicleController.ListVehicles)
			vehicles.POST("", r.vehicleController.CreateVehicle)
		}

		uploads := v1.Group("/uploads")
		{
			uploads.POST("/companies", r.uploadController.UploadCompanies)
			uploads.POST("/drivers", r.uploadController.UploadDrivers)
			uploads.POST("/vehicles", r.uploadController.UploadVehicles)
			uploads.POST("/company-documents", r.uploadController.UploadCompanyDocuments)
			uploads.POST("/driver-documents", r.uploadController.UploadDriverDocuments)
			uploads.POST("/vehicle-documents", r.uploadController.UploadVehicleDocuments)
		}

		v1.GET("/alerts", r.alertController.GetAlerts)

		v1.GET("/alert-configs", r.configController.ListThresholds)
		v1.PUT("/alert-configs", r.configController.SaveThresholds)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, X-Request-ID, accept, origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
