// Command client is an interactive terminal front end for the shoplocal
// API: register or log in, search stores near a location, and place demo
// orders against the configured catalog references.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/example/shoplocal/client"
)

type app struct {
	api    *client.Client
	reader *bufio.Reader
}

func main() {
	_ = godotenv.Load()

	tokenPath := os.Getenv("TOKEN_FILE")
	if tokenPath == "" {
		defaultPath, err := client.DefaultTokenPath()
		if err != nil {
			log.Fatalf("cannot determine token path: %v", err)
		}
		tokenPath = defaultPath
	}

	session, err := client.NewSession(&client.FileTokenStore{Path: tokenPath})
	if err != nil {
		log.Fatalf("cannot restore session: %v", err)
	}
	session.OnChange = func(authenticated bool) {
		if authenticated {
			fmt.Println("-- session: active (ready for operations)")
		} else {
			fmt.Println("-- session: no token")
		}
	}

	api := client.New(client.Config{
		BaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api/v1"),
		Session: session,
		Catalog: &client.StaticCatalog{
			ProductID: os.Getenv("CATALOG_PRODUCT_ID"),
			StoreID:   os.Getenv("CATALOG_STORE_ID"),
			UnitPrice: getEnvFloat("CATALOG_UNIT_PRICE", 99.99),
		},
	})

	a := &app{api: api, reader: bufio.NewReader(os.Stdin)}
	a.run()
}

func (a *app) run() {
	ctx := context.Background()

	for {
		if a.api.Session().Authenticated() {
			fmt.Println("\n[1] search stores  [2] place order  [3] logout  [q] quit")
		} else {
			fmt.Println("\n[1] login  [2] register  [q] quit")
		}

		choice := a.prompt("> ")
		authenticated := a.api.Session().Authenticated()

		switch {
		case choice == "q":
			return
		case !authenticated && choice == "1":
			a.login(ctx)
		case !authenticated && choice == "2":
			a.register(ctx)
		case authenticated && choice == "1":
			a.searchStores(ctx)
		case authenticated && choice == "2":
			a.placeOrder(ctx)
		case authenticated && choice == "3":
			if err := a.api.Session().Logout(); err != nil {
				fmt.Printf("logout failed: %v\n", err)
				continue
			}
			fmt.Println("Logged out successfully.")
		default:
			fmt.Println("unknown choice")
		}
	}
}

func (a *app) register(ctx context.Context) {
	name := a.prompt("name: ")
	email := a.prompt("email: ")
	password := a.prompt("password: ")

	if _, err := a.api.Register(ctx, name, email, password); err != nil {
		fmt.Printf("Registration failed: %v\n", err)
		return
	}
	fmt.Println("Registration successful! Logged in.")
}

func (a *app) login(ctx context.Context) {
	email := a.prompt("email: ")
	password := a.prompt("password: ")

	result, err := a.api.Login(ctx, email, password)
	if err != nil {
		fmt.Printf("Login failed: %v\n", err)
		return
	}

	if result.NeedsRegistration {
		// Account does not exist; offer to create it with the same
		// credentials. An empty name aborts without side effects.
		name := a.prompt("User not found. Enter your full name to register (empty to abort): ")
		if name == "" {
			fmt.Println("Login aborted.")
			return
		}
		if _, err := a.api.Register(ctx, name, email, password); err != nil {
			fmt.Printf("Registration failed: %v\n", err)
			return
		}
		fmt.Println("Registration successful! You are now logged in.")
		return
	}

	fmt.Println("Login successful!")
}

func (a *app) searchStores(ctx context.Context) {
	lat, ok := a.promptFloat("latitude: ")
	if !ok {
		return
	}
	lon, ok := a.promptFloat("longitude: ")
	if !ok {
		return
	}

	stores, err := a.api.SearchStores(ctx, lat, lon, 10)
	if err != nil {
		fmt.Printf("Store search failed: %v\n", err)
		return
	}

	if len(stores) == 0 {
		fmt.Println("No stores nearby.")
		return
	}
	for _, store := range stores {
		fmt.Printf("  %s — %s, %s (%.1f km)\n", store.Name, store.Address, store.City, store.DistanceKm)
	}
}

func (a *app) placeOrder(ctx context.Context) {
	name := a.prompt("product name: ")
	category := a.prompt("category: ")
	brand := a.prompt("brand: ")

	qty, err := strconv.Atoi(a.prompt("quantity: "))
	if err != nil {
		fmt.Println("quantity must be a whole number")
		return
	}

	result, err := a.api.PlaceOrder(ctx, name, category, brand, qty)
	if result != nil {
		fmt.Println(prettyJSON(result.RawBody))
	}
	if err != nil {
		fmt.Printf("Order failed: %v\n", err)
		return
	}
	fmt.Println("Order placed successfully! Check your email for confirmation.")
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, err := a.reader.ReadString('\n')
	if err != nil && !errors.Is(err, os.ErrClosed) {
		return ""
	}
	return strings.TrimSpace(line)
}

func (a *app) promptFloat(label string) (float64, bool) {
	value, err := strconv.ParseFloat(a.prompt(label), 64)
	if err != nil {
		fmt.Println("must be a number")
		return 0, false
	}
	return value, true
}

func prettyJSON(raw []byte) string {
	var buf map[string]interface{}
	if err := json.Unmarshal(raw, &buf); err != nil {
		return string(raw)
	}
	pretty, err := json.MarshalIndent(buf, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(pretty)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
