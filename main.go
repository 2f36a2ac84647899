// Command pizza-delivery-app is the storefront console for the pizza
// backend: build a pizza, place and pay for an order, follow it to the
// door, and manage inventory as an admin.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
	"github.com/Rahulkholi70/Pizza-delivery-app/cart"
	"github.com/Rahulkholi70/Pizza-delivery-app/catalog"
	"github.com/Rahulkholi70/Pizza-delivery-app/config"
	"github.com/Rahulkholi70/Pizza-delivery-app/models"
	"github.com/Rahulkholi70/Pizza-delivery-app/order"
	"github.com/Rahulkholi70/Pizza-delivery-app/payment"
	"github.com/Rahulkholi70/Pizza-delivery-app/session"
)

// app bundles the wired components every command works against.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  *api.Client
	store   *session.Store
	catalog *catalog.Service
	history *order.History
}

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := buildLogger(cfg.LogLevel)
	defer logger.Sync()

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	storage := session.NewFileTokenStorage(cfg.TokenFile)
	store := session.NewStore(client, storage, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Resolve any stored token before a command touches protected state.
	if err := store.Initialize(ctx); err != nil {
		logger.Warn("session restore failed", zap.Error(err))
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		store:   store,
		catalog: catalog.NewService(client),
		history: order.NewHistory(client),
	}

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var cmdErr error
	switch args[0] {
	case "login":
		cmdErr = a.cmdLogin(ctx, args[1:])
	case "register":
		cmdErr = a.cmdRegister(ctx, args[1:])
	case "logout":
		a.store.Logout()
		fmt.Println("Logged out.")
	case "whoami":
		cmdErr = a.cmdWhoami()
	case "profile":
		cmdErr = a.cmdProfile(ctx, args[1:])
	case "change-password":
		cmdErr = a.cmdChangePassword(ctx, args[1:])
	case "forgot-password":
		cmdErr = a.cmdForgotPassword(ctx, args[1:])
	case "reset-password":
		cmdErr = a.cmdResetPassword(ctx, args[1:])
	case "verify-email":
		cmdErr = a.cmdVerifyEmail(ctx, args[1:])
	case "menu":
		cmdErr = a.cmdMenu(ctx)
	case "order":
		cmdErr = a.cmdOrder(ctx, args[1:])
	case "orders":
		cmdErr = a.cmdOrders(ctx)
	case "status":
		cmdErr = a.cmdStatus(ctx, args[1:])
	case "track":
		cmdErr = a.cmdTrack(ctx, args[1:])
	case "cancel":
		cmdErr = a.cmdCancel(ctx, args[1:])
	case "watch":
		cmdErr = a.cmdWatch(ctx)
	case "admin":
		cmdErr = a.cmdAdmin(ctx, args[1:])
	default:
		usage()
		os.Exit(2)
	}

	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", api.UserMessage(cmdErr, cmdErr.Error()))
		os.Exit(1)
	}
}

func buildLogger(level string) *zap.Logger {
	if strings.EqualFold(level, "debug") {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: pizza-delivery-app <command>

Commands:
  login            -email -password
  register         -name -email -password [-phone] [-address]
  logout
  whoami
  profile          [-name] [-phone] [-address]
  change-password  -current -new
  forgot-password  -email
  reset-password   -token -password
  verify-email     -token
  menu
  order       -base -sauce -cheese a,b -veggies a,b -meats a,b plus shipping flags
  orders
  status      <order-id>
  track       <order-id>
  cancel      <order-id>
  watch
  admin       inventory|orders|set-status ...`)
}

func (a *app) requireAuth() error {
	if !a.store.IsAuthenticated() {
		return session.ErrNotAuthenticated
	}
	return nil
}

func (a *app) requireAdmin() error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if !a.store.IsAdmin() {
		return fmt.Errorf("admin access required")
	}
	return nil
}

// -------- Account commands --------

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("email and password are required")
	}
	if err := a.store.Login(ctx, *email, *password); err != nil {
		return err
	}
	user, _ := a.store.CurrentUser()
	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	phone := fs.String("phone", "", "phone number")
	address := fs.String("address", "", "delivery address")
	fs.Parse(args)

	msg, err := a.store.Register(ctx, api.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Phone:    *phone,
		Address:  *address,
	})
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func (a *app) cmdWhoami() error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	user, _ := a.store.CurrentUser()
	fmt.Printf("%s <%s> (%s)\n", user.Name, user.Email, user.Role)
	if exp, ok := a.store.TokenExpiry(); ok {
		fmt.Printf("Session valid until %s\n", exp.Format("2006-01-02 15:04"))
	}
	return nil
}

// -------- Storefront commands --------

func (a *app) cmdMenu(ctx context.Context) error {
	opts, err := a.catalog.Available(ctx)
	if err != nil {
		return err
	}
	for _, category := range models.Categories() {
		items := opts.ByCategory(category)
		fmt.Printf("\n%s:\n", titled(string(category)))
		if len(items) == 0 {
			fmt.Println("  (nothing available)")
			continue
		}
		for _, item := range items {
			fmt.Printf("  %-26s ₹%-8.2f %s\n", item.Name+" ("+item.ID+")", item.Price, item.Description)
		}
	}
	return nil
}

func (a *app) cmdOrder(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("order", flag.ExitOnError)
	baseID := fs.String("base", "", "base ingredient id")
	sauceID := fs.String("sauce", "", "sauce ingredient id")
	cheeseIDs := fs.String("cheese", "", "comma-separated cheese ids")
	veggieIDs := fs.String("veggies", "", "comma-separated veggie ids")
	meatIDs := fs.String("meats", "", "comma-separated meat ids")
	address := fs.String("address", "", "street address")
	city := fs.String("city", "", "city")
	state := fs.String("state", "", "state")
	country := fs.String("country", "India", "country")
	pinCode := fs.String("pin", "", "pin code")
	phoneNo := fs.String("phone", "", "contact phone")
	fs.Parse(args)

	c := cart.New()
	if err := a.fillCart(ctx, c, *baseID, *sauceID, *cheeseIDs, *veggieIDs, *meatIDs); err != nil {
		return err
	}

	summary := c.Summary()
	fmt.Printf("Pizza total: ₹%.2f\n", summary.TotalPrice)

	shipping := models.ShippingInfo{
		Address: *address,
		City:    *city,
		State:   *state,
		Country: *country,
		PinCode: *pinCode,
		PhoneNo: *phoneNo,
	}

	wf := order.NewWorkflow(a.client, c, a.logger)
	orderState, err := wf.Place(ctx, shipping)
	if err != nil {
		return err
	}

	if orderState == order.StateCompleted {
		fmt.Printf("Order %s placed. No payment due.\n", wf.Order().ID)
		return nil
	}

	// External payment round trip.
	handle := wf.Handle()
	user, _ := a.store.CurrentUser()
	checkout := payment.NewCheckout(a.cfg.CheckoutAddr, a.logger)
	proof, err := checkout.Collect(ctx, *handle, payment.Prefill{
		Name:    user.Name,
		Email:   user.Email,
		Contact: shipping.PhoneNo,
	}, func(url string) {
		fmt.Printf("Complete the payment at %s (press Ctrl-C to abandon)\n", url)
	})
	if err != nil {
		return err
	}

	if _, err := wf.ConfirmPayment(ctx, proof); err != nil {
		return err
	}
	fmt.Printf("Payment verified. Order %s is on its way to the kitchen!\n", wf.Order().ID)
	return nil
}

func (a *app) fillCart(ctx context.Context, c *cart.Cart, baseID, sauceID, cheeseIDs, veggieIDs, meatIDs string) error {
	pick := func(id string, want models.IngredientCategory) (models.Ingredient, error) {
		item, category, ok := a.catalog.Find(ctx, id)
		if !ok {
			return models.Ingredient{}, fmt.Errorf("unknown ingredient %q", id)
		}
		if category != want {
			return models.Ingredient{}, fmt.Errorf("%q is a %s, not a %s", id, category, want)
		}
		return item, nil
	}

	if baseID != "" {
		item, err := pick(baseID, models.CategoryBase)
		if err != nil {
			return err
		}
		c.SetBase(item)
	}
	if sauceID != "" {
		item, err := pick(sauceID, models.CategorySauce)
		if err != nil {
			return err
		}
		c.SetSauce(item)
	}
	for _, id := range splitIDs(cheeseIDs) {
		item, err := pick(id, models.CategoryCheese)
		if err != nil {
			return err
		}
		c.ToggleCheese(item)
	}
	for _, id := range splitIDs(veggieIDs) {
		item, err := pick(id, models.CategoryVeggie)
		if err != nil {
			return err
		}
		c.ToggleVeggie(item)
	}
	for _, id := range splitIDs(meatIDs) {
		item, err := pick(id, models.CategoryMeat)
		if err != nil {
			return err
		}
		c.ToggleMeat(item)
	}
	return nil
}

func titled(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (a *app) cmdOrders(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	orders, err := a.history.Refresh(ctx)
	if err != nil {
		return err
	}
	printOrders(orders)
	stats := a.history.Stats()
	fmt.Printf("\n%d orders: %d pending, %d delivered, %d cancelled\n",
		stats.Total, stats.Pending, stats.Delivered, stats.Cancelled)
	return nil
}

func (a *app) cmdStatus(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("order id is required")
	}
	ord, err := a.history.Get(ctx, args[0])
	if err != nil {
		return err
	}
	printOrder(ord)
	return nil
}

func (a *app) cmdTrack(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("order id is required")
	}
	tracker := order.NewTracker(a.client, a.store, args[0], a.cfg.PollInterval, a.logger)
	fmt.Println("Tracking order... (Ctrl-C to stop)")
	return tracker.Run(ctx, func(ord models.Order) {
		fmt.Printf("Order %s: %s\n", ord.ID, ord.OrderStatus)
	})
}

func (a *app) cmdCancel(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("order id is required")
	}
	ord, err := a.history.Get(ctx, args[0])
	if err != nil {
		return err
	}
	if !ord.OrderStatus.CanCancel() {
		return fmt.Errorf("order is already %s", strings.ToLower(string(ord.OrderStatus)))
	}
	cancelled, err := a.history.Cancel(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Order %s is now %s.\n", cancelled.ID, cancelled.OrderStatus)
	return nil
}

func (a *app) cmdWatch(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if _, err := a.history.Refresh(ctx); err != nil {
		return err
	}
	fmt.Println("Watching your orders... (Ctrl-C to stop)")
	watcher := order.NewWatcher(a.history, a.cfg.PollInterval, a.logger, func(ord models.Order) {
		fmt.Printf("Order %s moved to %s\n", ord.ID, ord.OrderStatus)
	})
	watcher.Run(ctx)
	return nil
}

func printOrders(orders []models.Order) {
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return
	}
	for _, ord := range orders {
		fmt.Printf("%-26s %-18s ₹%-9.2f %s\n",
			ord.ID, ord.OrderStatus, ord.TotalPrice, ord.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printOrder(ord models.Order) {
	fmt.Printf("Order %s: %s (payment: %s)\n", ord.ID, ord.OrderStatus, ord.PaymentInfo.Status)
	for _, item := range ord.Items {
		fmt.Printf("  %-8s %-22s ₹%.2f\n", item.Category, item.Name, item.Price)
	}
	fmt.Printf("  Total: ₹%.2f\n", ord.TotalPrice)
	fmt.Printf("  Ship to: %s, %s, %s %s\n",
		ord.ShippingInfo.Address, ord.ShippingInfo.City, ord.ShippingInfo.State, ord.ShippingInfo.PinCode)
}
