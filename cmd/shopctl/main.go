package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"sportshop-client/internal/api"
	"sportshop-client/internal/cart"
	"sportshop-client/internal/catalog"
	"sportshop-client/internal/checkout"
	"sportshop-client/internal/config"
	"sportshop-client/internal/localstore"
	"sportshop-client/internal/logger"
	"sportshop-client/internal/session"
)

type app struct {
	sessions *session.Manager
	cart     *cart.Synchronizer
	catalog  catalog.Service
	checkout *checkout.Service
}

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	tokens := session.NewTokenStore(store)
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, tokens)

	cartSync := cart.NewSynchronizer(client, store)
	a := &app{
		sessions: session.NewManager(client, tokens),
		cart:     cartSync,
		catalog:  catalog.NewService(client),
		checkout: checkout.NewService(client, cartSync),
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newStore(cfg *config.Config) (localstore.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		return localstore.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "file":
		return localstore.NewFileStore(cfg.StatePath)
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "cart":
		return a.showCart(ctx)
	case "add":
		return a.add(ctx, args)
	case "inc":
		return a.bump(ctx, args, +1)
	case "dec":
		return a.bump(ctx, args, -1)
	case "rm":
		return a.remove(ctx, args)
	case "clear":
		a.cart.Clear(ctx)
		fmt.Println("cart cleared")
		return nil
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "products":
		return a.products(ctx)
	case "search":
		return a.search(ctx, args)
	case "checkout":
		return a.placeOrder(ctx)
	case "orders":
		return a.orders(ctx)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) showCart(ctx context.Context) error {
	user := a.sessions.Current(ctx)
	if err := a.cart.Fetch(ctx, user); err != nil {
		return err
	}
	lines := a.cart.Items()
	if len(lines) == 0 {
		fmt.Println("cart is empty")
		return nil
	}
	for _, l := range lines {
		price, _ := l.UnitPrice()
		fmt.Printf("%6d  %-40s  x%-3d  %s\n", l.ProductID, l.DisplayTitle(), l.Quantity, price.StringFixed(2))
	}
	fmt.Printf("total: %s\n", a.cart.TotalPrice().StringFixed(2))
	return nil
}

func (a *app) add(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	qty := fs.Int("qty", 1, "quantity to add")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: shopctl add [-qty N] <product-id>")
	}
	productID, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	user := a.sessions.Current(ctx)
	if err := a.cart.Fetch(ctx, user); err != nil {
		return err
	}
	product, err := a.catalog.ByID(ctx, productID)
	if err != nil {
		return err
	}
	if err := a.cart.AddToCart(ctx, product, *qty, user); err != nil {
		return err
	}
	fmt.Printf("added %q x%d\n", product.Title, *qty)
	return nil
}

func (a *app) bump(ctx context.Context, args []string, delta int) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: shopctl inc|dec <product-id>")
	}
	productID, err := parseID(args[0])
	if err != nil {
		return err
	}
	user := a.sessions.Current(ctx)
	if err := a.cart.Fetch(ctx, user); err != nil {
		return err
	}
	if delta > 0 {
		a.cart.AddOne(ctx, productID, user)
	} else {
		a.cart.RemoveOne(ctx, productID, user)
	}
	return a.printCartLine(productID)
}

func (a *app) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: shopctl rm <product-id>")
	}
	productID, err := parseID(args[0])
	if err != nil {
		return err
	}
	user := a.sessions.Current(ctx)
	if err := a.cart.Fetch(ctx, user); err != nil {
		return err
	}
	a.cart.RemoveFromCart(ctx, productID, user)
	fmt.Printf("removed product %d\n", productID)
	return nil
}

func (a *app) printCartLine(productID uint) error {
	for _, l := range a.cart.Items() {
		if l.ProductID == productID {
			fmt.Printf("%q x%d\n", l.DisplayTitle(), l.Quantity)
			return nil
		}
	}
	fmt.Printf("product %d is not in the cart\n", productID)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("usage: shopctl login -email <email> -password <password>")
	}

	user, err := a.sessions.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", user.Email)

	// First authenticated fetch merges any guest cart into the server cart.
	if err := a.cart.Fetch(ctx, user); err != nil {
		return fmt.Errorf("cart merge incomplete, will retry on next fetch: %w", err)
	}
	return nil
}

func (a *app) logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	a.cart.Reset()
	fmt.Println("logged out")
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	if user := a.sessions.Current(ctx); user != nil {
		fmt.Printf("%s <%s> (id %d)\n", user.Name, user.Email, user.ID)
	} else {
		fmt.Println("guest")
	}
	return nil
}

func (a *app) products(ctx context.Context) error {
	products, err := a.catalog.All(ctx)
	if err != nil {
		return err
	}
	printProducts(products)
	return nil
}

func (a *app) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	limit := fs.Int("limit", catalog.DefaultSearchLimit, "maximum results")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: shopctl search [-limit N] <query>")
	}
	products, err := a.catalog.Search(ctx, fs.Arg(0), *limit)
	if err != nil {
		return err
	}
	printProducts(products)
	return nil
}

func (a *app) placeOrder(ctx context.Context) error {
	user := a.sessions.Current(ctx)
	if err := a.cart.Fetch(ctx, user); err != nil {
		return err
	}
	url, err := a.checkout.PlaceOrder(ctx, user)
	if err != nil {
		return err
	}
	fmt.Println("complete payment at:", url)
	return nil
}

func (a *app) orders(ctx context.Context) error {
	orders, err := a.checkout.Orders(ctx, a.sessions.Current(ctx))
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("no orders yet")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("%6d  %-12s  %s  %s\n", o.ID, o.Status, o.Total, o.CreatedAt)
	}
	return nil
}

func printProducts(products []catalog.Product) {
	if len(products) == 0 {
		fmt.Println("no products found")
		return
	}
	for _, p := range products {
		fmt.Printf("%6d  %-40s  %s\n", p.ID, p.Title, p.Price)
	}
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return uint(id), nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: shopctl <command> [args]

cart commands:
  cart                       show the current cart
  add [-qty N] <product-id>  add a product
  inc <product-id>           increase quantity by one
  dec <product-id>           decrease quantity by one
  rm <product-id>            remove a product
  clear                      empty the cart

session commands:
  login -email E -password P
  logout
  whoami

catalog commands:
  products
  search [-limit N] <query>

order commands:
  checkout
  orders`)
}
