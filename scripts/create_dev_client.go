package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
)

// devCredentials are the fixed client credentials per role
var devCredentials = map[string][2]string{
	models.RoleAdmin: {"dev-client", "dev-secret-123"},
	models.RoleUser:  {"user-client", "user-secret-123"},
}

func main() {
	role := flag.String("role", models.RoleAdmin, "User role (admin or user)")
	flag.Parse()

	credentials, ok := devCredentials[*role]
	if !ok {
		log.Fatalf("Unsupported role %q, expected admin or user", *role)
	}
	clientID, clientSecret := credentials[0], credentials[1]

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.InitDatabase(conf.Database())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()
	clientService := services.NewClientService(db)
	if _, err := clientService.GetClientByID(ctx, clientID); err == nil {
		fmt.Printf("Development client already exists for role '%s'!\n", *role)
		printCredentials(conf, clientID, clientSecret)
		return
	} else if !errors.Is(err, services.ErrClientNotFound) {
		log.Fatalf("Failed to look up client: %v", err)
	}

	email := fmt.Sprintf("%s@pizza.com", *role)
	user, created, err := services.NewUserService(db).GetOrCreateUser(ctx, email, fmt.Sprintf("%s User", *role), *role)
	if err != nil {
		log.Fatalf("Failed to get user for role %s: %v", *role, err)
	}
	if created {
		fmt.Printf("Created new user: %s (ID: %d, Role: %s)\n", user.Email, user.ID, user.Role)
	} else {
		fmt.Printf("Found existing user: %s (ID: %d, Role: %s)\n", user.Email, user.ID, user.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(clientSecret), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash secret: %v", err)
	}

	client := &models.OAuthClient{
		ID:         clientID,
		Secret:     string(hash),
		Name:       fmt.Sprintf("Development %s Client", *role),
		Domain:     "http://localhost",
		UserID:     user.ID,
		Scopes:     "read write",
		GrantTypes: "client_credentials",
	}
	if err := clientService.CreateClient(ctx, client); err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	fmt.Printf("Development OAuth client created for role '%s'!\n", *role)
	printCredentials(conf, clientID, clientSecret)
}

func printCredentials(conf *config.Config, clientID, clientSecret string) {
	fmt.Printf("Client ID: %s\n", clientID)
	fmt.Printf("Client Secret: %s\n", clientSecret)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://%s/oauth/token \\\n", conf.Address())
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", clientID)
	fmt.Printf("  -d 'client_secret=%s'\n", clientSecret)
}
