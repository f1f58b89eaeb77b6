package main

import (
	"net/http"
	"time"

	httpapi "platter-guest/internal/api/http"
	"platter-guest/internal/cart"
	"platter-guest/internal/config"
	"platter-guest/internal/platter"
	"platter-guest/internal/service"
	"platter-guest/internal/storage"
	"platter-guest/internal/tenant"
)

func main() {
	cfg := config.Load()

	var cache service.RestaurantCache
	if cfg.RedisAddr != "" {
		cache = storage.NewRedisCache(config.MustInitRedis(cfg.RedisAddr), cfg.CacheTTL)
	}

	var publisher service.OrderPublisher
	if cfg.KafkaBroker != "" {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaTopic))
	}

	api := platter.NewClient(cfg.APIBaseURL, &http.Client{Timeout: 15 * time.Second})
	carts := cart.NewStore()

	restaurants := service.NewRestaurantService(api, cache)
	orders := service.NewOrderService(api, carts, publisher)
	qr := service.TableQRGenerator{BaseDomain: cfg.BaseDomain}

	handler := httpapi.NewHandler(restaurants, orders, carts, qr)
	rewrite := httpapi.NewTenantRewrite(httpapi.RewriteOptions{
		Tenant: tenant.Config{
			Env:           cfg.Env,
			BaseDomain:    cfg.BaseDomain,
			PreviewDomain: cfg.PreviewDomain,
		},
		MarketingURL:  cfg.MarketingURL,
		SecureCookies: cfg.Production(),
	})

	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler, rewrite))
}
