// token emite un JWT firmado con JWT_SECRET para llamar las rutas protegidas.
//
// Uso: go run ./cmd/token -user ana@planta -role planner [-exp 120]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/stock-health-api/pkg/config"
	"github.com/jhoicas/stock-health-api/pkg/jwt"
)

func main() {
	userID := flag.String("user", "", "identificador del usuario (claim user_id)")
	role := flag.String("role", jwt.RoleViewer, "rol: admin, planner, viewer")
	exp := flag.Int("exp", 0, "expiración en minutos (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "Uso: token -user <id> [-role viewer] [-exp minutos]")
		os.Exit(2)
	}
	if !jwt.ValidRole(*role) {
		fmt.Fprintf(os.Stderr, "Rol no reconocido: %q (admin, planner, viewer)\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido: la API corre sin autenticación")
		os.Exit(1)
	}

	minutes := cfg.JWT.Expiration
	if *exp > 0 {
		minutes = *exp
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *userID, *role, cfg.JWT.Issuer, minutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
