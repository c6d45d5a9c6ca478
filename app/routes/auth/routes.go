package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/signup", SignupAPI)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/me", MeAPI)
}

// AuthMiddleware validates the JWT and sets the caller identity on the
// request context. The token is read from the Authorization header or,
// failing that, the jwt_token cookie.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		tokenString = strings.TrimPrefix(auth, "Bearer ")
	}
	if tokenString == "" {
		tokenString = c.Cookies("jwt_token")
	}

	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	user := &models.User{
		ID:       claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	}

	c.Locals("user_id", user.ID)
	c.Locals("user", user)

	return c.Next()
}
