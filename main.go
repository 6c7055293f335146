package main

import (
	"context"
	"fmt"
	"os"

	"auction-client/internal/config"
	"auction-client/internal/currency"
	"auction-client/internal/httpclient"
	"auction-client/internal/itemstore"
	"auction-client/internal/models"
	"auction-client/internal/userstore"
	"auction-client/services/auth"
	"auction-client/services/items"
	"auction-client/utils"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	client, err := httpclient.New(cfg.BaseURL, cfg.RequestTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create API client: %v\n", err)
		os.Exit(1)
	}

	users := userstore.NewStore(auth.NewService(client), nil)
	catalog := itemstore.NewStore(items.NewService(client), users)

	ctx := context.Background()

	if cfg.Username != "" {
		if !users.Login(ctx, models.LoginCredentials{Username: cfg.Username, Password: cfg.Password}) {
			fmt.Fprintf(os.Stderr, "Login failed: %s\n", users.Err())
			os.Exit(1)
		}
	} else {
		// Without credentials, check whether the server already knows a
		// session for our cookie jar (it will not on a fresh start).
		users.FetchCurrentUser(ctx)
	}

	if !users.IsAuthenticated() {
		fmt.Println("Not authenticated; set AUCTION_USERNAME and AUCTION_PASSWORD to sign in.")
		return
	}

	catalog.FetchItems(ctx, "")
	if message := catalog.Err(); message != "" {
		fmt.Fprintf(os.Stderr, "Failed to fetch items: %s\n", message)
		os.Exit(1)
	}

	user := users.User()
	preferred := currency.Code(user.CurrencyPreference)
	if !currency.Supported(preferred) {
		preferred = currency.USD
	}

	fmt.Printf("Signed in as %s (%s)\n", user.Username, preferred)
	for _, item := range catalog.Items() {
		status := "active"
		if item.IsEnded {
			status = "ended"
		}
		fmt.Printf("#%d %-30s %s  %d bids  [%s]\n",
			item.ID, item.Title, currency.FormatPrice(item.CurrentPrice, preferred), item.BidCount, status)
	}
}
