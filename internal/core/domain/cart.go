package domain

// CartItem is one line of the shopping cart. The JSON shape is what gets
// persisted under the cart storage key.
type CartItem struct {
	ProductID int64 `json:"id"`
	Quantity  int   `json:"quantity"`
}
