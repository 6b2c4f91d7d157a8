// seeduser crea o actualiza la empresa y el usuario admin de demo.
// Uso: go run ./cmd/seeduser
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/davidrt/ventastock-api/internal/infrastructure/postgres"
	"github.com/davidrt/ventastock-api/pkg/config"
)

const (
	demoCompanyID = "00000000-0000-0000-0000-000000000001"
	demoUserID    = "00000000-0000-0000-0000-000000000010"
	demoEmail     = "admin@ventastock.local"
	demoPassword  = "admin1234"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bcrypt: %v\n", err)
		os.Exit(1)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO companies (id, name, tax_id, status, created_at, updated_at)
		VALUES ($1, 'Empresa Demo', '', 'active', now(), now())
		ON CONFLICT (id) DO NOTHING`, demoCompanyID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "insertar empresa: %v\n", err)
		os.Exit(1)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, company_id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'Admin Demo', 'admin', 'active', now(), now())
		ON CONFLICT (id) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    role = EXCLUDED.role,
		    status = 'active',
		    updated_at = now()`,
		demoUserID, demoCompanyID, demoEmail, string(hash))
	if err != nil {
		fmt.Fprintf(os.Stderr, "insertar usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Usuario '%s' creado/actualizado con password '%s'\n", demoEmail, demoPassword)
}
