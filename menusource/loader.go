// Package menusource loads a store's catalog document from the vendor, caches it, and builds a Menu.
package menusource

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/kaykidoutai/pizzapi2/client"
	"github.com/kaykidoutai/pizzapi2/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Getter performs one JSON GET. *client.Client implements it.
type Getter interface {
	GetJSON(ctx context.Context, url string, out any) error
}

// Loader builds Menus for stores of one country site.
type Loader struct {
	getter  Getter
	urls    client.URLs
	country string
	cache   Cache
	ttl     time.Duration
}

// NewLoader creates a Loader. A nil cache disables caching.
func NewLoader(getter Getter, country string, cache Cache, ttl time.Duration) (*Loader, error) {
	urls, err := client.URLsFor(country)
	if err != nil {
		return nil, err
	}
	return &Loader{getter: getter, urls: urls, country: country, cache: cache, ttl: ttl}, nil
}

func (l *Loader) cacheKey(storeID, lang string) string {
	return fmt.Sprintf("pizzapi:menu:%s:%s:%s", l.country, storeID, lang)
}

// FetchDocument returns the store's raw catalog document, from the cache when it holds one.
// Cache failures are logged and fall through to the vendor.
func (l *Loader) FetchDocument(ctx context.Context, storeID, lang string) (map[string]any, error) {
	key := l.cacheKey(storeID, lang)

	if l.cache != nil {
		b, err := l.cache.Get(ctx, key)
		switch {
		case err == nil:
			var doc map[string]any
			if err := json.Unmarshal(b, &doc); err == nil {
				zap.L().Debug("menu cache hit", zap.String("key", key))
				return doc, nil
			}
			zap.L().Warn("discarding unreadable cached menu", zap.String("key", key))
		case errors.Is(err, ErrCacheMiss):
			zap.L().Debug("menu cache miss", zap.String("key", key))
		default:
			zap.L().Warn("menu cache unavailable", zap.String("key", key), zap.Error(err))
		}
	}

	var doc map[string]any
	if err := l.getter.GetJSON(ctx, l.urls.MenuURL(storeID, lang), &doc); err != nil {
		return nil, fmt.Errorf("fetch menu for store %s: %w", storeID, err)
	}

	if l.cache != nil {
		if b, err := json.Marshal(doc); err == nil {
			if err := l.cache.Set(ctx, key, b, l.ttl); err != nil {
				zap.L().Warn("failed to cache menu", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return doc, nil
}

// Load fetches the store's catalog document and builds a Menu from it.
func (l *Loader) Load(ctx context.Context, storeID, lang string) (*models.Menu, error) {
	doc, err := l.FetchDocument(ctx, storeID, lang)
	if err != nil {
		return nil, err
	}
	menu, err := models.MenuFromDocument(doc, l.country)
	if err != nil {
		return nil, fmt.Errorf("build menu for store %s: %w", storeID, err)
	}
	zap.L().Info("menu loaded",
		zap.String("store_id", storeID),
		zap.Int("products", len(menu.Products())),
		zap.Int("coupons", len(menu.Coupons())),
	)
	return menu, nil
}
