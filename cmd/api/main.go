package main

import (
	_ "payment_method_gateway/docs"
	"payment_method_gateway/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Method Gateway API
// @version         1.0
// @description     Payment-method lifecycle (create, find, update, grant, revoke, delete) against the card processor, with a DynamoDB audit trail.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
