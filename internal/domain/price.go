package domain

import "time"

// ItemPrice is a live marketplace quote for a tradeable item.
// High is the latest instant-buy price, Low the latest instant-sell price.
type ItemPrice struct {
	ItemName  string    `json:"item_name"`
	ItemID    int       `json:"item_id"`
	High      int       `json:"high"`
	Low       int       `json:"low"`
	FetchedAt time.Time `json:"fetched_at"`
}
