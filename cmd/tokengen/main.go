// Command tokengen mints an access token for an existing employee. The
// identity provider owns login in production; this is for local development
// and operational tooling.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/workline-hq/attendance-backend-go/internal/config"
	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/database"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/workline-hq/attendance-backend-go/internal/repository/postgresql"
)

func main() {
	email := flag.String("email", "", "employee email to mint a token for")
	flag.Parse()

	if *email == "" {
		log.Fatal("usage: tokengen -email <employee email>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	emp, err := postgresql.NewEmployeeRepository(db).GetByEmail(ctx, *email)
	if err != nil {
		log.Fatal("Error loading employee:", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	token, expiresAt, err := JWTService.GenerateAccessToken(emp.ID, emp.Email, emp.Role == employee.RoleDirector)
	if err != nil {
		log.Fatal("Error generating token:", err)
	}

	fmt.Println(token)
	fmt.Printf("expires at %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
}
