// Command cinema runs the in-memory ticket booking system behind a
// line-oriented REPL on stdin/stdout. All state lives in the process;
// exiting discards shows, bookings, revenue and pending auto-start
// timers.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/cli"
	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/config"
	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/service"
)

func main() {
	envFile := pflag.String("env-file", "", "path to a .env file to load before reading the environment")
	pflag.Parse()

	cfg := config.Load(*envFile)
	svc := service.NewCinemaService(service.WithAutoStart(cfg.AutoStart))
	log.Printf("cinema ticket system ready (env=%s, auto-start=%t)", cfg.Env, cfg.AutoStart)

	fmt.Println("Cinema Ticket System (in-memory). Type EXIT to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(cfg.Prompt)
		if !scanner.Scan() {
			break // EOF
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if upper := strings.ToUpper(line); upper == "EXIT" || upper == "QUIT" {
			fmt.Println("Bye.")
			return
		}
		fmt.Println(cli.RunLine(svc, line))
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin: %v", err)
	}
}
