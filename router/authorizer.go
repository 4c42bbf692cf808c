package router

import (
	"net/http"

	"actas/controllers"

	"github.com/gin-gonic/gin"
)

// Authorizer bloquea las rutas protegidas cuando la cuenta no está verificada
// o fue desactivada.
func Authorizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := controllers.GetUserLogged(c)
		if !ok {
			controllers.RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}

		if !user.Verified {
			controllers.RespondError(c, "necesario confirmar la cuenta", http.StatusForbidden)
			c.Abort()
			return
		}
		if !user.Active {
			controllers.RespondError(c, "sin acceso al sistema", http.StatusForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
