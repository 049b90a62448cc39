package main

import (
	"os"

	_ "lifecover/docs" // Swagger docs
)

// @title lifecover API
// @version 1.0
// @description Term life insurance recommendations with email/password accounts.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@lifecover.app

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
