package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"platter-guest/internal/domain"
)

// RestaurantService provides tenant profile and menu data with a cache-aside
// stale window in front of the upstream API.
type RestaurantService struct {
	api   PlatterAPI
	cache RestaurantCache
}

func NewRestaurantService(api PlatterAPI, cache RestaurantCache) *RestaurantService {
	return &RestaurantService{api: api, cache: cache}
}

func (s *RestaurantService) GetRestaurant(ctx context.Context, subdomain string) (*domain.Restaurant, error) {
	if s.cache != nil {
		var cached domain.Restaurant
		key := s.cache.RestaurantKey(subdomain)
		if ok, err := s.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return &cached, nil
		} else if err != nil {
			log.Printf("[guest-svc] restaurant cache read failed for %s: %v", subdomain, err)
		}
	}

	restaurant, err := s.api.GetBusiness(ctx, subdomain)
	if err != nil {
		return nil, fmt.Errorf("fetch restaurant %q: %w", subdomain, err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, s.cache.RestaurantKey(subdomain), restaurant); err != nil {
			log.Printf("[guest-svc] restaurant cache write failed for %s: %v", subdomain, err)
		}
	}
	return restaurant, nil
}

func (s *RestaurantService) GetMenu(ctx context.Context, subdomain string) (*domain.MenuPage, error) {
	if s.cache != nil {
		var cached domain.MenuPage
		key := s.cache.MenuKey(subdomain)
		if ok, err := s.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return &cached, nil
		} else if err != nil {
			log.Printf("[guest-svc] menu cache read failed for %s: %v", subdomain, err)
		}
	}

	menu, err := s.api.GetMenuItems(ctx, subdomain)
	if err != nil {
		return nil, fmt.Errorf("fetch menu %q: %w", subdomain, err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, s.cache.MenuKey(subdomain), menu); err != nil {
			log.Printf("[guest-svc] menu cache write failed for %s: %v", subdomain, err)
		}
	}
	return menu, nil
}

// GroupMenuByCategory buckets menu items by category, preserving the order
// in which categories first appear. Items without a category land in "Other".
func GroupMenuByCategory(menu *domain.MenuPage) []domain.MenuSection {
	sections := []domain.MenuSection{}
	index := map[string]int{}

	for _, item := range menu.Docs {
		id := item.Category.ID
		name := item.Category.Name
		if id == "" {
			id = name
		}
		if id == "" {
			id = "other"
		}
		if name == "" {
			name = "Other"
		}

		pos, ok := index[id]
		if !ok {
			pos = len(sections)
			index[id] = pos
			sections = append(sections, domain.MenuSection{ID: id, Name: name})
		}
		sections[pos].Items = append(sections[pos].Items, item)
	}
	return sections
}

var weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// TodayHours formats the opening hours for now's weekday, "Closed today"
// when the day is missing from the table.
func TodayHours(hours []domain.OpeningHours, now time.Time) string {
	today := weekdays[now.Weekday()]
	for _, h := range hours {
		if strings.ToLower(h.Day) == today {
			return h.Opening + " - " + h.Closing
		}
	}
	return "Closed today"
}
