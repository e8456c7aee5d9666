package sale

// Item is a catalog entry. Catalog data is read-only once provisioned.
type Item struct {
	ID          int64
	Name        string
	Price       Money
	Description string
}
