// Command submit sends a single insurance application to a running intake
// server. Useful for smoke-testing a deployment without the browser form.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/insuredesk/insure-backend/pkg/client"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	server := flag.String("server", envOr("INSURE_SERVER", "http://localhost:5000"), "base URL of the intake server")
	name := flag.String("name", "", "applicant name")
	phone := flag.String("phone", "", "applicant phone")
	email := flag.String("email", "", "applicant email")
	vehicleType := flag.String("vehicle-type", "", "vehicle type (car, bike, ...)")
	make_ := flag.String("make", "", "vehicle make")
	model := flag.String("model", "", "vehicle model")
	year := flag.String("year", "", "vehicle year")
	registration := flag.String("registration", "", "registration number (optional)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(*server)
	id, err := c.Submit(ctx, client.Application{
		Name:         *name,
		Phone:        *phone,
		Email:        *email,
		VehicleType:  *vehicleType,
		Make:         *make_,
		Model:        *model,
		Year:         *year,
		Registration: *registration,
	})
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			log.Fatalf("Application rejected: %s", apiErr.Message)
		}
		log.Fatalf("Submission failed: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Application submitted (id %d)\n", id)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
