package models

import (
	"bytes"
	"encoding/json"
)

type Restaurant struct {
	ID          int64    `db:"id" json:"id"`
	Name        string   `db:"name" json:"name"`
	Cuisine     *string  `db:"cuisine" json:"cuisine"`
	Rating      *float64 `db:"rating" json:"rating"`
	AvgTime     *string  `db:"avg_time" json:"avg_time"`
	Description *string  `db:"description" json:"description"`
	Address     *string  `db:"address" json:"address"`
	Image       *string  `db:"image" json:"image"`
}

type MenuItem struct {
	ID           int64   `db:"id" json:"id"`
	RestaurantID int64   `db:"restaurant_id" json:"restaurant_id"`
	Category     *string `db:"category" json:"category"`
	Name         string  `db:"name" json:"name"`
	Description  *string `db:"description" json:"description"`
	Price        float64 `db:"price" json:"price"`
	Image        *string `db:"image" json:"image"`
	Available    bool    `db:"available" json:"available"`
}

// MenuEntry is the per-item projection exposed inside a category group.
type MenuEntry struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Image       *string `json:"image"`
}

type MenuCategory struct {
	Name  string
	Items []MenuEntry
}

// MenuCategories serializes as a JSON object whose keys keep first-occurrence
// order. A plain map would lose the ordering the menu query established.
type MenuCategories []MenuCategory

const defaultCategory = "Menu"

func (c MenuCategories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		items, err := json.Marshal(cat.Items)
		if err != nil {
			return nil, err
		}
		buf.Write(items)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// GroupMenu groups menu items by category label, preserving row order within a
// category and first-occurrence order across categories. Items without a
// category land under "Menu".
func GroupMenu(items []MenuItem) MenuCategories {
	var categories MenuCategories
	index := make(map[string]int)

	for _, item := range items {
		cat := defaultCategory
		if item.Category != nil && *item.Category != "" {
			cat = *item.Category
		}

		i, ok := index[cat]
		if !ok {
			i = len(categories)
			index[cat] = i
			categories = append(categories, MenuCategory{Name: cat})
		}

		categories[i].Items = append(categories[i].Items, MenuEntry{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Image:       item.Image,
		})
	}

	return categories
}

// RestaurantDetail is the GET /restaurants/:id payload.
type RestaurantDetail struct {
	Restaurant
	Categories MenuCategories `json:"categories"`
}
