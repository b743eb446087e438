package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/medialoc/crm-go/handlers"
	"github.com/medialoc/crm-go/middleware"
	"github.com/medialoc/crm-go/repositories"
	"github.com/medialoc/crm-go/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos_instance := repositories.New()
	services_instance := services.New(repos_instance)
	handlers_instance := handlers.New(services_instance)

	// setup
	r.POST("/api/auth/login", handlers_instance.Auth.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/notifications", handlers_instance.WS.Notifications)

		accounts := auth.Group("/api/accounts")
		{
			accounts.GET("", handlers_instance.Account.ListAccounts)
			accounts.GET("/:id", handlers_instance.Account.GetAccountByID)
			accounts.POST("", handlers_instance.Account.CreateAccount)
			accounts.PUT("/:id", handlers_instance.Account.UpdateAccount)
			accounts.DELETE("/:id", middleware.Admin(), handlers_instance.Account.DeleteAccount)
		}
		projects := auth.Group("/api/projects")
		{
			projects.GET("", handlers_instance.Project.ListProjects)
			projects.GET("/:id", handlers_instance.Project.GetProjectByID)
			projects.POST("", handlers_instance.Project.CreateProject)
			projects.PUT("/:id", handlers_instance.Project.UpdateProject)
			projects.DELETE("/:id", middleware.Admin(), handlers_instance.Project.DeleteProject)
		}
		tasks := auth.Group("/api/tasks")
		{
			tasks.GET("", handlers_instance.Task.ListTasks)
			tasks.GET("/by-project/:id", handlers_instance.Task.ListTasksByProject)
			tasks.GET("/:id", handlers_instance.Task.GetTaskByID)
			tasks.POST("", handlers_instance.Task.CreateTask)
			tasks.PUT("/:id", handlers_instance.Task.UpdateTask)
		}
		updates := auth.Group("/api/updates")
		{
			updates.GET("", handlers_instance.Update.ListUpdates)
			updates.GET("/:id", handlers_instance.Update.GetUpdateByID)
			updates.POST("", handlers_instance.Update.CreateUpdate)
			updates.POST("/:id/attachments", handlers_instance.Attachment.UploadAttachment)
		}
		attachments := auth.Group("/api/attachments")
		{
			attachments.GET("/:id", handlers_instance.Attachment.DownloadAttachment)
			attachments.DELETE("/:id", handlers_instance.Attachment.DeleteAttachment)
		}
		deliveryStatus := auth.Group("/api/delivery-status")
		{
			deliveryStatus.GET("/my", handlers_instance.DeliveryStatus.ListMyDeliveryStatuses)
			deliveryStatus.POST("", handlers_instance.DeliveryStatus.CreateDeliveryStatus)
			deliveryStatus.PUT("/:id", handlers_instance.DeliveryStatus.UpdateDeliveryStatus)
		}
		deliveryHead := auth.Group("/api/delivery-head", middleware.DeliveryHead())
		{
			deliveryHead.GET("/delivery-status", handlers_instance.DeliveryStatus.ListAllDeliveryStatuses)
			deliveryHead.GET("/delivery-status/:id", handlers_instance.DeliveryStatus.GetDeliveryStatusByID)
		}
		admin := auth.Group("/api/admin", middleware.Admin())
		{
			admin.GET("/users", handlers_instance.User.ListUsers)
			admin.GET("/users/:id", handlers_instance.User.GetUserByID)
			admin.POST("/users", handlers_instance.User.CreateUser)
			admin.PUT("/users/:id", handlers_instance.User.UpdateUser)
			admin.DELETE("/users/:id", handlers_instance.User.DeleteUser)
			admin.GET("/accounts", handlers_instance.Account.ListAllAccounts)
			admin.GET("/projects", handlers_instance.Project.ListAllProjects)
			admin.GET("/audit-logs", handlers_instance.Audit.GetAuditLogs)
		}
	}
}
