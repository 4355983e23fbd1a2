package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/nikolayk812/jewelry-storefront/internal/api"
	"github.com/nikolayk812/jewelry-storefront/internal/config"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/logging"
	"github.com/nikolayk812/jewelry-storefront/internal/pricing"
	"github.com/nikolayk812/jewelry-storefront/internal/storefront"
)

const usage = `usage: storefront <command> [flags]

commands:
  products   list the catalog (-category, -search)
  quote      price a custom piece (-metal, -weight)
  checkout   add products to a fresh cart and buy them (-metal, -weight, -custom, product ids...)
  contact    send the contact form (-name, -email, -subject, -message)
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return fmt.Errorf("logging.New: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cmd, cmdArgs := args[0], args[1:]

	if cmd == "quote" {
		return quote(cmdArgs, out)
	}

	client, err := api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithCurrency(cfg.Currency),
		api.WithLogger(logger.Named("api")),
	)
	if err != nil {
		return fmt.Errorf("api.NewClient: %w", err)
	}

	c := storefront.New(client,
		storefront.WithLogger(logger),
		storefront.WithCurrency(cfg.Currency),
		storefront.WithNotifier(printNotifier{out: out}),
	)
	defer c.Wait()

	switch cmd {
	case "products":
		return products(ctx, c, cmdArgs, out)
	case "checkout":
		return checkoutCmd(ctx, c, cmdArgs, out)
	case "contact":
		return contact(ctx, c, cmdArgs)
	default:
		return errUsage
	}
}

func products(ctx context.Context, c *storefront.Controller, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	category := fs.String("category", domain.CategoryAll, "category to show")
	search := fs.String("search", "", "search term on name and description")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if err := c.Start(ctx); err != nil {
		return fmt.Errorf("c.Start: %w", err)
	}

	if *search != "" {
		c.SetSearch(*search)
	}
	c.SetCategory(*category)

	state := c.State()
	if state.Listing.Empty() {
		fmt.Fprintln(out, "No products found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tMATERIAL\tPRICE")
	for _, p := range state.Listing.Products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, p.Material, p.Price)
	}
	fmt.Fprintf(w, "\ncategories: %s\n", strings.Join(state.Categories, ", "))

	return w.Flush()
}

func quote(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	metalFlag := fs.String("metal", string(pricing.MetalGold), "gold or silver")
	weight := fs.String("weight", "", "weight in grams")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	metal, err := pricing.ParseMetal(*metalFlag)
	if err != nil {
		return err
	}

	if _, ok := pricing.ParseWeight(*weight); !ok {
		return pricing.ErrInvalidWeight
	}

	fmt.Fprintf(out, "%s %sg: %s\n", metal, *weight, pricing.Quote(metal, *weight))
	return nil
}

// checkoutCmd fills a fresh session cart with the listed products, optionally
// adding one custom-priced piece, prints the summary and buys it.
func checkoutCmd(ctx context.Context, c *storefront.Controller, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	custom := fs.String("custom", "", "product id to price by weight")
	metalFlag := fs.String("metal", string(pricing.MetalGold), "metal of the custom piece")
	weight := fs.String("weight", "", "weight of the custom piece in grams")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if err := c.Start(ctx); err != nil {
		return fmt.Errorf("c.Start: %w", err)
	}

	for _, id := range fs.Args() {
		if err := c.AddToCart(ctx, id); err != nil {
			return fmt.Errorf("c.AddToCart: %w", err)
		}
	}

	if *custom != "" {
		if err := priceCustom(ctx, c, *custom, *metalFlag, *weight); err != nil {
			return err
		}
	}

	c.Wait()

	state := c.State()
	if !state.CheckoutAvailable {
		return fmt.Errorf("cart is empty")
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, item := range state.Cart.Items {
		fmt.Fprintf(w, "%s\tx%d\t%s\n", item.Product.Name, item.Quantity, item.LineTotal())
	}
	fmt.Fprintf(w, "subtotal\t\t%s\n", state.Summary.Subtotal)
	fmt.Fprintf(w, "shipping\t\t%s\n", state.Summary.Shipping)
	fmt.Fprintf(w, "total\t\t%s\n", state.Summary.Total)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("w.Flush: %w", err)
	}

	if _, err := c.Checkout(ctx); err != nil {
		return err
	}

	c.Navigate(ctx, storefront.ViewOrders)
	for _, o := range c.State().Orders {
		fmt.Fprintf(out, "order %s: %s, %d line(s), total %s\n", o.OrderID, o.Status, len(o.Items), o.TotalAmount)
	}

	return nil
}

func priceCustom(ctx context.Context, c *storefront.Controller, productID, metalFlag, weight string) error {
	metal, err := pricing.ParseMetal(metalFlag)
	if err != nil {
		return err
	}

	if err := c.OpenPricing(productID); err != nil {
		return fmt.Errorf("c.OpenPricing: %w", err)
	}
	if err := c.SetPricingMetal(metal); err != nil {
		return fmt.Errorf("c.SetPricingMetal: %w", err)
	}
	if err := c.SetPricingWeight(weight); err != nil {
		return fmt.Errorf("c.SetPricingWeight: %w", err)
	}

	if err := c.ConfirmPricing(ctx); err != nil {
		c.CancelPricing()
		return fmt.Errorf("c.ConfirmPricing: %w", err)
	}

	return nil
}

func contact(ctx context.Context, c *storefront.Controller, args []string) error {
	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	name := fs.String("name", "", "your name")
	email := fs.String("email", "", "your email")
	subject := fs.String("subject", "", "subject")
	message := fs.String("message", "", "message")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	return c.SubmitContact(ctx, domain.ContactMessage{
		Name:    *name,
		Email:   *email,
		Subject: *subject,
		Message: *message,
	})
}

type printNotifier struct {
	out io.Writer
}

func (n printNotifier) Notify(notice domain.Notice) {
	if notice.Kind == domain.NoticeError {
		fmt.Fprintln(n.out, "error:", notice.Message)
		return
	}
	fmt.Fprintln(n.out, notice.Message)
}
