package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/webstore/internal/adapter/client"
	"github.com/rl1809/webstore/internal/adapter/storage"
	"github.com/rl1809/webstore/internal/config"
	"github.com/rl1809/webstore/internal/core/cart"
	"github.com/rl1809/webstore/internal/core/storefront"
	"github.com/rl1809/webstore/internal/port"
)

const usage = `usage: storefront <command> [product-id]

commands:
  list          show the product catalog
  cart          show the cart
  add ID        put one more unit of a product in the cart
  dec ID        take one unit of a product out of the cart
  remove ID     drop a product from the cart
`

func main() {
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	sf := cfg.Storefront

	ctx := context.Background()

	store, closeStore, err := newCartStore(ctx, sf)
	if err != nil {
		log.Fatalf("failed to open cart store: %v", err)
	}
	defer closeStore()

	catalog, err := client.NewProductClient(sf.APIURL, &http.Client{Timeout: sf.FetchTimeout})
	if err != nil {
		log.Fatalf("failed to create product client: %v", err)
	}

	shop := storefront.New(catalog, cart.New(ctx, store))
	shop.Mount(ctx)

	c := shop.Cart()
	switch cmd := args[0]; cmd {
	case "list":
		printProducts(shop, sf)
		return
	case "cart":
	case "add", "dec", "remove":
		id, err := productIDArg(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			flag.Usage()
			os.Exit(2)
		}
		switch cmd {
		case "add":
			c.IncreaseCartQuantity(id)
		case "dec":
			c.DecreaseCartQuantity(id)
		case "remove":
			c.RemoveFromCart(id)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		flag.Usage()
		os.Exit(2)
	}

	c.OpenCart()
	printCart(shop, sf)
	c.CloseCart()
}

func newCartStore(ctx context.Context, cfg config.Storefront) (port.KeyValueStore, func(), error) {
	switch cfg.CartStore {
	case config.CartStoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return storage.NewRedisStore(rdb), func() { rdb.Close() }, nil
	case config.CartStoreMemory:
		return storage.NewMemoryStore(), func() {}, nil
	default:
		fs, err := storage.NewFileStore(cfg.CartDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}

func productIDArg(args []string) (int64, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s needs a product id", args[0])
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", args[1])
	}
	return id, nil
}

func printProducts(shop *storefront.Storefront, cfg config.Storefront) {
	c := shop.Cart()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tIN CART")
	for _, p := range shop.StoreItems() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", p.ID, p.Name, storefront.FormatCurrency(cfg.Currency, p.Price), c.ItemQuantity(p.ID))
	}
	w.Flush()
}

func printCart(shop *storefront.Storefront, cfg config.Storefront) {
	c := shop.Cart()
	if !c.IsOpen() {
		return
	}

	items := c.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tSUBTOTAL")
	for _, item := range items {
		name := "(unknown product)"
		if p, ok := shop.Product(item.ProductID); ok {
			name = p.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", item.ProductID, name, item.Quantity, storefront.FormatCurrency(cfg.Currency, shop.LineTotal(item)))
	}
	fmt.Fprintf(w, "\t\t%d\t%s\n", c.CartQuantity(), storefront.FormatCurrency(cfg.Currency, shop.Total()))
	w.Flush()
}
