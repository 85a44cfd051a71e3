// sessionctl gestiona la sesión de cliente contra la API del haras:
//
//	sessionctl login  -email vet@haras.com -password secreto
//	sessionctl status
//	sessionctl logout
//
// La sesión (token + usuario) se persiste en Redis bajo una única clave,
// de modo que login/status/logout comparten estado entre invocaciones.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/harasdev/haras-api/internal/application/session"
	"github.com/harasdev/haras-api/internal/infrastructure/redisstore"
	"github.com/harasdev/haras-api/pkg/apiclient"
	"github.com/harasdev/haras-api/pkg/config"
	"github.com/harasdev/haras-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := redisstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		fmt.Fprintln(os.Stderr, "conexión a Redis:", err)
		os.Exit(1)
	}
	defer client.Close()

	ttl := time.Duration(cfg.JWT.Expiration) * time.Minute
	store := redisstore.NewSessionStore(client, ttl)
	api := apiclient.New(fmt.Sprintf("http://%s", cfg.HTTP.Addr()))
	gate := session.NewGate(store, api, log)

	switch os.Args[1] {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email del usuario")
		password := fs.String("password", "", "password del usuario")
		_ = fs.Parse(os.Args[2:])
		if *email == "" || *password == "" {
			fmt.Fprintln(os.Stderr, "login requiere -email y -password")
			os.Exit(2)
		}
		snap, err := gate.SignIn(ctx, *email, *password)
		if err != nil {
			fmt.Fprintln(os.Stderr, "login fallido:", err)
			os.Exit(1)
		}
		fmt.Printf("sesión iniciada: %s (%s)\n", snap.User.Email, snap.User.Role)

	case "status":
		snap := gate.Restore(ctx)
		if snap.State != session.StateAuthenticated {
			fmt.Println("sin sesión activa")
			return
		}
		fmt.Printf("sesión activa: %s (%s) haras=%s\n", snap.User.Email, snap.User.Role, snap.User.HarasID)

	case "logout":
		// Restaurar primero para recuperar el token persistido.
		snap := gate.Restore(ctx)
		if snap.State != session.StateAuthenticated {
			fmt.Println("sin sesión activa")
			return
		}
		gate.SignOut(ctx)
		fmt.Println("sesión cerrada")

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: sessionctl <login|status|logout> [flags]")
}
