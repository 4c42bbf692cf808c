package router

import (
	"log"

	"actas/config"
	"actas/controllers"
	"actas/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize cablea rutas y middlewares: rutas públicas, rutas autenticadas
// (token) y rutas validadas (token + cuenta verificada y activa), con el
// grupo admin al final.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")

	// Public (sin auth)
	api.POST("/auth/register", Logger(), controllers.Register)
	api.POST("/auth/login", Logger(), controllers.Login)
	api.POST("/auth/confirm/:code", Logger(), controllers.ConfirmEmail)
	api.POST("/auth/refresh", Logger(), controllers.Refresh)
	api.POST("/auth/password/forgot", Logger(), controllers.ForgotPassword)
	api.POST("/auth/password/reset", Logger(), controllers.ResetPassword)

	// Authenticated (token requerido)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())

	// Validated (token + cuenta verificada y activa)
	validated := auth.Group("")
	validated.Use(Authorizer())

	validated.GET("/me", Logger(), controllers.Me)

	// Compliance records
	validated.POST("/records", Logger(), controllers.CreateComplianceRecord)
	validated.GET("/records/mine", Logger(), controllers.GetMyComplianceRecords)
	validated.GET("/records/:id", Logger(), controllers.GetComplianceRecordByID)
	validated.PUT("/records/:id", Logger(), controllers.UpdateComplianceRecord)
	validated.DELETE("/records/:id", Logger(), controllers.DeleteComplianceRecord)

	// Actas de entrega
	validated.POST("/actas", Logger(), controllers.CreateActa)
	validated.GET("/actas/mine", Logger(), controllers.GetMyActas)
	validated.GET("/actas/:id", Logger(), controllers.GetActaByID)
	validated.PUT("/actas/:id", Logger(), controllers.UpdateActa)
	validated.DELETE("/actas/:id", Logger(), controllers.DeleteActa)

	// Documentos y análisis
	validated.GET("/actas/:id/document", Logger(), controllers.DownloadActaDocument)
	validated.POST("/actas/:id/send", Logger(), controllers.SendActaDocument)
	validated.POST("/actas/:id/analysis", Logger(), controllers.AnalyzeActa)

	// Asistente
	validated.POST("/chat", Logger(), controllers.ChatMessage)

	// Admin
	admin := validated.Group("")
	admin.Use(Adminizer())

	admin.GET("/users", Logger(), controllers.GetUsers)
	admin.PUT("/users/:id/role", Logger(), controllers.UpdateUserRole)
	admin.POST("/users/deactivate", Logger(), controllers.DeactivateUsers)
	admin.GET("/records", Logger(), controllers.GetComplianceRecords)
	admin.GET("/actas", Logger(), controllers.GetActas)

	log.Printf("Routes initialized")
}
