package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/kaykidoutai/pizzapi2/client"
	"github.com/kaykidoutai/pizzapi2/config"
	"github.com/kaykidoutai/pizzapi2/logging"
	"github.com/kaykidoutai/pizzapi2/menusource"
	"github.com/kaykidoutai/pizzapi2/models"
	"github.com/kaykidoutai/pizzapi2/order"
)

func main() {
	cfg := config.Load()

	logger, err := logging.Init(cfg.LogMode, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		zap.L().Error("order failed", zap.Error(err))
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if cfg.StoreID == "" {
		return errors.New("PIZZAPI_STORE_ID is required")
	}

	urls, err := client.URLsFor(cfg.Country)
	if err != nil {
		return err
	}
	httpClient := client.New(client.WithTimeout(cfg.HTTPTimeout), client.WithReferer(urls.Referer))

	var cache menusource.Cache
	if cfg.RedisAddr != "" {
		rc := menusource.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}
	loader, err := menusource.NewLoader(httpClient, cfg.Country, cache, cfg.MenuCacheTTL)
	if err != nil {
		return err
	}
	menu, err := loader.Load(ctx, cfg.StoreID, cfg.Language)
	if err != nil {
		return err
	}

	toppings, err := parseToppings(cfg.Order.Toppings)
	if err != nil {
		return err
	}

	o := order.New(
		cfg.StoreID,
		order.Customer{
			FirstName: cfg.Customer.FirstName,
			LastName:  cfg.Customer.LastName,
			Email:     cfg.Customer.Email,
			Phone:     cfg.Customer.Phone,
		},
		order.Address{
			Street:     cfg.Customer.Street,
			City:       cfg.Customer.City,
			Region:     cfg.Customer.Region,
			PostalCode: cfg.Customer.PostalCode,
		},
		menu,
		httpClient,
		urls,
	)
	o.Document["LanguageCode"] = cfg.Language

	item, err := menu.OrderProduct(cfg.Order.ProductCode, cfg.Order.VariantCode, toppings, 1)
	if err != nil {
		return err
	}
	if err := o.AddItem(item); err != nil {
		return err
	}
	if cfg.Order.CouponCode != "" {
		coupon, err := menu.Coupon(cfg.Order.CouponCode)
		if err != nil {
			return err
		}
		if err := o.AddCoupon(coupon); err != nil {
			return err
		}
	}

	var card *order.Card
	if cfg.Card.Number != "" {
		c := order.NewCard(cfg.Card.Number, cfg.Card.Expiration, cfg.Card.SecurityCode, cfg.Card.PostalCode)
		card = &c
	}

	fmt.Println(item.Summary())

	if !cfg.Order.Place {
		if _, err := o.PriceAndAttachPayment(ctx, card); err != nil {
			return err
		}
		return report(o)
	}

	if _, err := o.Place(ctx, card); err != nil {
		return err
	}
	if err := report(o); err != nil {
		return err
	}
	return persist(ctx, cfg, o)
}

func report(o *order.Order) error {
	amounts, err := o.Document.Amounts()
	if err != nil {
		return err
	}
	fmt.Printf("Order %s for store %s\n", o.State(), o.StoreID)
	fmt.Printf("  Menu:     $%.2f\n", amounts.Menu)
	fmt.Printf("  Discount: $%.2f\n", amounts.Discount)
	fmt.Printf("  Tax:      $%.2f\n", amounts.Tax)
	fmt.Printf("  Total:    $%.2f\n", amounts.Customer)
	return nil
}

func persist(ctx context.Context, cfg *config.Config, o *order.Order) error {
	if cfg.DatabaseURL == "" {
		return nil
	}
	db, err := models.OpenDatabase(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	repo := models.NewOrdersRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	rec, err := o.Record()
	if err != nil {
		return err
	}
	if err := repo.CreateOrder(ctx, rec); err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	zap.L().Info("order saved", zap.String("reference", rec.Reference))
	return nil
}
