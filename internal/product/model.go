package product

type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BrandName string `json:"brandName"`
	// Price is kept as a string to avoid rounding errors (NUMERIC in Postgres)
	Price    string `json:"price"`
	Category string `json:"category"`
	Size     string `json:"size,omitempty"`
	Image    string `json:"image,omitempty"`
	Featured bool   `json:"featured"`
	Slug     string `json:"slug,omitempty"`
	Desc     string `json:"desc,omitempty"`
	Gift     bool   `json:"gift,omitempty"`
}

// StockedProduct is a catalog row joined with its inventory record,
// as listed on the admin dashboard.
type StockedProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Sales    int    `json:"sales"`
}
