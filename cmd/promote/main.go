// Command promote grants a role to a user by email address.
// It is used to bootstrap the first admin and to appoint editors.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin|editor|member]
//
// Requires the same configuration as the server (DATABASE_DSN etc).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/interviewprep-backend/internal/app"
	"github.com/heartmarshall/interviewprep-backend/internal/config"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to promote")
	role := flag.String("role", string(domain.UserRoleAdmin), "role to grant: admin, editor or member")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin|editor|member]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	user, err := app.NewServices(logger, pool, cfg).Auth.Promote(ctx, *email, domain.UserRole(*role))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	case err != nil:
		log.Fatalf("promote: %v", err)
	}

	fmt.Printf("User %q (%s) now has role %s.\n", user.Email, user.ID, *role)
}
